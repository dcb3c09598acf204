// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	root := newRootCmd(os.Stdout, newShipmentsClient)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
