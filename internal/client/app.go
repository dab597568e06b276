// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"io"

	"github.com/MKhiriev/go-sse-keeper/internal/adapter"
	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/spf13/cobra"
)

// AdapterFactory builds the server adapter once flags have been parsed.
type AdapterFactory func(cfg config.StructuredConfig, logger *logger.Logger) (adapter.ServerAdapter, error)

type App struct {
	cfg        config.StructuredConfig
	newAdapter AdapterFactory
	adapter    adapter.ServerAdapter

	// secrets given on the command line; applied only when the flag is set
	// so that --help never prints environment values
	passphrase string
	hashKey    string
	verbose    bool

	root   *cobra.Command
	out    io.Writer
	logger *logger.Logger
}

// NewApp builds the client with cfg (defaults and environment) as the base
// that command-line flags override. Command output goes to out.
func NewApp(cfg config.StructuredConfig, out io.Writer, newAdapter AdapterFactory) *App {
	a := &App{
		cfg:        cfg,
		newAdapter: newAdapter,
		out:        out,
		logger:     logger.Nop(),
	}
	a.root = a.newRootCommand()

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// setup runs before every sub-command: it applies secret flags, creates the
// logger and connects the adapter.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("passphrase") {
		a.cfg.Client.Passphrase = a.passphrase
	}
	if cmd.Flags().Changed("hash-key") {
		a.cfg.App.HashKey = a.hashKey
	}

	a.logger = logger.NewClientLogger("sse-client", a.verbose)

	serverAdapter, err := a.newAdapter(a.cfg, a.logger)
	if err != nil {
		return err
	}
	a.adapter = serverAdapter

	a.logger.Debug().
		Str("address", a.cfg.Client.ServerAddress).
		Str("user_agent", a.cfg.Client.UserAgent).
		Bool("passphrase", a.cfg.Client.Passphrase != "").
		Msg("client configured")

	return nil
}
