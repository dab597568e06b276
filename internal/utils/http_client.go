// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty client preconfigured from cfg: base URL,
// request timeout and User-Agent. The User-Agent is part of the server-side
// key derivation, so it must stay stable between uploads and searches.
//
// Example usage:
//
//	client := utils.NewHTTPClient(cfg.Client)
//	resp, err := client.R().Get("/api/version/")
func NewHTTPClient(cfg config.Client) *HTTPClient {
	client := resty.New().
		SetBaseURL(cfg.ServerAddress).
		SetHeader("User-Agent", cfg.UserAgent)

	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &HTTPClient{Client: client}
}
