// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/MKhiriev/go-envios/internal/adapter"
	"github.com/MKhiriev/go-envios/internal/config"
	"github.com/MKhiriev/go-envios/internal/logger"
	"github.com/MKhiriev/go-envios/models"
)

type clientFactory func(cfg config.ClientConfig, log *logger.Logger) (adapter.ShipmentsClient, error)

func newShipmentsClient(cfg config.ClientConfig, log *logger.Logger) (adapter.ShipmentsClient, error) {
	return adapter.NewHTTPShipmentsClient(cfg, log)
}

type cli struct {
	out       io.Writer
	newClient clientFactory

	flags config.ClientConfig
}

func newRootCmd(out io.Writer, newClient clientFactory) *cobra.Command {
	c := &cli{out: out, newClient: newClient}

	root := &cobra.Command{
		Use:          "envios",
		Short:        "Command-line client for the envios shipments API",
		Version:      buildInfo(),
		SilenceUsage: true,
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.ServerAddress, "server", "", "server base URL (env ENVIOS_SERVER)")
	pf.DurationVar(&c.flags.RequestTimeout, "timeout", 0, "request timeout, e.g. 5s (env ENVIOS_TIMEOUT)")
	pf.StringVar(&c.flags.LogLevel, "log-level", "", "diagnostics level written to stderr (env ENVIOS_LOG_LEVEL)")

	root.AddCommand(
		c.listCmd(),
		c.getCmd(),
		c.createCmd(),
		c.updateCmd(),
		c.deleteCmd(),
		c.versionCmd(),
	)

	return root
}

// client resolves the final config from flags, ENVIOS_* env and defaults.
func (c *cli) client() (adapter.ShipmentsClient, *config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return nil, nil, err
	}

	log := logger.NewConsoleLogger("envios-client", cfg.LogLevel)

	client, err := c.newClient(*cfg, log)
	if err != nil {
		return nil, nil, err
	}

	return client, cfg, nil
}

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all shipments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := c.client()
			if err != nil {
				return err
			}

			shipments, err := client.List(cmd.Context())
			if err != nil {
				return err
			}

			return c.printJSON(shipments)
		},
	}
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := c.client()
			if err != nil {
				return err
			}

			shipment, err := client.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return c.printJSON(shipment)
		},
	}
}

func (c *cli) createCmd() *cobra.Command {
	var shipment models.Shipment

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create a shipment",
		Example: `  envios create --id A1 --recipient "Ana" --address "Calle 1" --status pendiente`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := c.client()
			if err != nil {
				return err
			}

			created, err := client.Create(cmd.Context(), shipment)
			if err != nil {
				return err
			}

			return c.printJSON(created)
		},
	}

	f := cmd.Flags()
	f.StringVar(&shipment.ID, "id", "", "shipment id")
	f.StringVar(&shipment.Recipient, "recipient", "", "recipient name")
	f.StringVar(&shipment.Address, "address", "", "delivery address")
	f.StringVar(&shipment.Status, "status", "", "delivery status")
	for _, name := range []string{"id", "recipient", "address", "status"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func (c *cli) updateCmd() *cobra.Command {
	var recipient, address, status string

	cmd := &cobra.Command{
		Use:     "update <id>",
		Short:   "Update the given fields of a shipment",
		Long:    "Only the flags passed on the command line are sent; other fields keep their stored values.",
		Example: `  envios update A1 --status entregado`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := models.ShipmentUpdate{ID: args[0]}

			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "recipient":
					update.Recipient = models.Some(recipient)
				case "address":
					update.Address = models.Some(address)
				case "status":
					update.Status = models.Some(status)
				}
			})

			client, _, err := c.client()
			if err != nil {
				return err
			}

			updated, err := client.Update(cmd.Context(), update)
			if err != nil {
				return err
			}

			return c.printJSON(updated)
		},
	}

	f := cmd.Flags()
	f.StringVar(&recipient, "recipient", "", "new recipient name")
	f.StringVar(&address, "address", "", "new delivery address")
	f.StringVar(&status, "status", "", "new delivery status")

	return cmd
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a shipment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := c.client()
			if err != nil {
				return err
			}

			msg, err := client.Delete(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.out, msg)
			return err
		},
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client build info and the server version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintf(c.out, "Client: %s\n", buildInfo()); err != nil {
				return err
			}

			client, cfg, err := c.client()
			if err != nil {
				return err
			}

			serverVersion, err := client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("server %s: %w", cfg.ServerAddress, err)
			}

			_, err = fmt.Fprintf(c.out, "Server: %s\n", serverVersion)
			return err
		},
	}
}

func buildInfo() string {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	return fmt.Sprintf("%s (date %s, commit %s)", info.BuildVersion(), info.BuildDate(), info.BuildCommit())
}
