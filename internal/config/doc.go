// Package config provides configuration loading, merging, and validation
// facilities for the envios server and its CLI client.
//
// Server configuration is assembled from several layers; for every field the
// first layer with a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables (optionally seeded from a .env file)
//  3. JSON config file
//  4. Built-in defaults
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
