// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/spf13/cobra"
)

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               "sse-client",
		Short:             "Upload and search encrypted text files on a go-sse-keeper server",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfg.Client.ServerAddress, "address", a.cfg.Client.ServerAddress, "server base URL")
	flags.DurationVar(&a.cfg.Client.RequestTimeout, "timeout", a.cfg.Client.RequestTimeout, "timeout of a single request")
	flags.StringVar(&a.cfg.Client.UserAgent, "user-agent", a.cfg.Client.UserAgent, "User-Agent sent to the server; keep it stable, it is part of the identity key")
	flags.StringVar(&a.passphrase, "passphrase", "", "vault passphrase for servers using the passphrase key scheme (env CLIENT_PASSPHRASE)")
	flags.StringVar(&a.hashKey, "hash-key", "", "HMAC key for request integrity checks (env APP_HASH_KEY)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose logging to stderr")

	root.AddCommand(
		a.newUploadCommand(),
		a.newSearchCommand(),
		a.newGetCommand(),
		a.newClearCommand(),
		a.newCountCommand(),
		a.newVersionCommand(),
	)

	return root
}

func (a *App) newUploadCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "upload FILE...",
		Short: "Encrypt and store text files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				if err := a.upload(cmd, path); err != nil {
					a.logger.Debug().Err(err).Str("path", path).Msg("upload failed")
					fmt.Fprintf(a.out, "%s %s: %v\n", errorText.Sprint("failed"), path, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", ErrUploadFailed, failed, len(args))
			}
			return nil
		},
	}
}

func (a *App) upload(cmd *cobra.Command, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	result, err := a.adapter.Upload(cmd.Context(), filepath.Base(path), content)
	if err != nil {
		return err
	}

	status := successText.Sprint("stored")
	if result.Outcome == models.AlreadyPresent {
		status = warningText.Sprint("already present")
	}
	fmt.Fprintf(a.out, "%s %s %s\n", status, result.DisplayName, mutedText.Sprint(result.ContentHash))

	return nil
}

func (a *App) newSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search QUERY...",
		Short: "List your files containing QUERY (case-insensitive)",
		Long: "List your files containing QUERY (case-insensitive). Several " +
			"arguments are joined with single spaces into one query.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.adapter.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}

			if len(results) == 0 {
				fmt.Fprintln(a.out, warningText.Sprint("word not found"))
				return nil
			}

			for _, name := range results {
				fmt.Fprintln(a.out, name)
			}
			return nil
		},
	}
}

func (a *App) newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get HASH",
		Short: "Print the decrypted content of one of your files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := a.adapter.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			_, err = a.out.Write(content)
			return err
		},
	}
}

func (a *App) newClearCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every record on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return ErrConfirmationRequired
			}

			deleted, err := a.adapter.Clear(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s %d records\n", successText.Sprint("deleted"), deleted)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&confirmed, "yes", "y", false, "confirm deletion of all records")

	return cmd
}

func (a *App) newCountCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "count",
		Short: "Print the number of records on the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := a.adapter.Count(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(a.out, n)
			return nil
		},
	}
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(a.out, "client: %s\n", a.cfg.App.Version)

			serverVersion, err := a.adapter.Version(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "server: %s\n", serverVersion)
			return nil
		},
	}
}
