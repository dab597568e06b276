// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sse-keeper/internal/adapter"
	"github.com/MKhiriev/go-sse-keeper/internal/client"
	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, client.FormatError(fmt.Errorf("error getting configs: %w", err)))
		os.Exit(1)
	}
	cfg.App.Version = buildInfo.BuildVersion()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(*cfg, os.Stdout, adapter.NewHTTPServerAdapter)
	if err = app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, client.FormatError(err))
		stop()
		os.Exit(1)
	}
}
