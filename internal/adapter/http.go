// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/internal/logger"
	"github.com/MKhiriev/go-sse-keeper/internal/utils"
	"github.com/MKhiriev/go-sse-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	passphraseHeader     = "X-Vault-Passphrase"
	recordsDeletedHeader = "X-Records-Deleted"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	// hasher is nil when no integrity key is configured.
	hasher     *utils.Hasher
	passphrase string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates cfg.Client.ServerAddress,
// configures the resty client with the resolved base URL, timeout and
// User-Agent, and prepares the HMAC hasher when cfg.App.HashKey is set.
//
// Returns an error if the server address is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.StructuredConfig, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Client.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	clientCfg := cfg.Client
	clientCfg.ServerAddress = baseURL

	var hasher *utils.Hasher
	if cfg.App.HashKey != "" {
		hasher = utils.NewHasher(cfg.App.HashKey)
	}

	return &httpServerAdapter{
		client:     utils.NewHTTPClient(clientCfg),
		hasher:     hasher,
		passphrase: cfg.Client.Passphrase,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [ServerAdapter]. The multipart body is built in memory
// so that its exact bytes can be signed.
func (h *httpServerAdapter) Upload(ctx context.Context, filename string, content []byte) (models.IngestResult, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("build upload body: %w", err)
	}
	if _, err = part.Write(content); err != nil {
		return models.IngestResult{}, fmt.Errorf("build upload body: %w", err)
	}
	if err = mw.Close(); err != nil {
		return models.IngestResult{}, fmt.Errorf("build upload body: %w", err)
	}

	var result models.IngestResult
	resp, err := h.signedRequest(ctx, body.Bytes()).
		SetHeader("Content-Type", mw.FormDataContentType()).
		SetResult(&result).
		Post("/api/records")
	if err != nil {
		return models.IngestResult{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IngestResult{}, err
	}

	h.logger.Debug().
		Str("content_hash", result.ContentHash).
		Str("outcome", string(result.Outcome)).
		Msg("file uploaded")

	return result, nil
}

// Search implements [ServerAdapter]. The server answers 404 "word not found"
// for an empty result, which is reported as an empty slice.
func (h *httpServerAdapter) Search(ctx context.Context, query string) ([]string, error) {
	payload, err := json.Marshal(models.SearchRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("encode search request: %w", err)
	}

	var sr models.SearchResponse
	resp, err := h.signedRequest(ctx, payload).
		SetHeader("Content-Type", "application/json").
		SetResult(&sr).
		SetError(&sr).
		Post("/api/records/search")
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}

	if resp.StatusCode() == http.StatusNotFound && sr.Results != nil {
		return []string{}, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if sr.Results == nil {
		return []string{}, nil
	}
	return sr.Results, nil
}

// Get implements [ServerAdapter]. It returns [ErrForbidden] (wrapped) when
// the record exists but belongs to another key.
func (h *httpServerAdapter) Get(ctx context.Context, contentHash string) ([]byte, error) {
	resp, err := h.request(ctx).
		SetPathParam("hash", contentHash).
		Get("/api/records/{hash}")
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Clear implements [ServerAdapter].
func (h *httpServerAdapter) Clear(ctx context.Context) (int64, error) {
	resp, err := h.request(ctx).Delete("/api/records")
	if err != nil {
		return 0, fmt.Errorf("clear request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	deleted, err := strconv.ParseInt(resp.Header().Get(recordsDeletedHeader), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s header: %w", ErrUnexpectedResponse, recordsDeletedHeader, err)
	}

	return deleted, nil
}

// Count implements [ServerAdapter].
func (h *httpServerAdapter) Count(ctx context.Context) (int64, error) {
	var cr models.CountResponse
	resp, err := h.request(ctx).
		SetResult(&cr).
		Get("/api/records/count")
	if err != nil {
		return 0, fmt.Errorf("count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return cr.Count, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.request(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.passphrase != "" {
		req.SetHeader(passphraseHeader, h.passphrase)
	}
	return req
}

// signedRequest returns a request carrying body and, when an integrity key
// is configured, its HashSHA256 signature.
func (h *httpServerAdapter) signedRequest(ctx context.Context, body []byte) *resty.Request {
	req := h.request(ctx).SetBody(body)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.HexSum(body))
	}
	return req
}
