// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-sse-keeper/internal/config"
	"github.com/MKhiriev/go-sse-keeper/models"
)

const (
	FieldContent     = "content"
	FieldDisplayName = "display_name"
	FieldExtension   = "extension"
	FieldQuery       = "query"
	FieldContentHash = "content_hash"
)

// contentHashLength is the length of a hex-encoded SHA-256 digest.
const contentHashLength = 64

// RecordValidator validates ingest, search and fetch requests against the
// application limits.
type RecordValidator struct {
	maxContentSize    int64
	allowedExtensions []string
}

// NewRecordValidator returns a [Validator] enforcing cfg.MaxContentSize and
// cfg.AllowedExtensions. A non-positive size or empty extension list
// disables the respective check.
func NewRecordValidator(cfg config.App) Validator {
	extensions := make([]string, 0, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		extensions = append(extensions, strings.ToLower(strings.TrimPrefix(ext, ".")))
	}

	return &RecordValidator{
		maxContentSize:    cfg.MaxContentSize,
		allowedExtensions: extensions,
	}
}

func (v *RecordValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.IngestRequest:
		return v.validateIngestRequest(ctx, value, fields...)
	case *models.IngestRequest:
		return v.validateIngestRequest(ctx, *value, fields...)

	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.FetchRequest:
		return v.validateFetchRequest(ctx, value, fields...)
	case *models.FetchRequest:
		return v.validateFetchRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RecordValidator) validateIngestRequest(ctx context.Context, request models.IngestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDisplayName, FieldExtension, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldContent:
			if len(request.Content) == 0 {
				return ErrEmptyContent
			}
			if v.maxContentSize > 0 && int64(len(request.Content)) > v.maxContentSize {
				return fmt.Errorf("%w: %d > %d bytes", ErrContentTooLarge, len(request.Content), v.maxContentSize)
			}
			if !utf8.Valid(request.Content) {
				return ErrContentNotUTF8
			}
		case FieldDisplayName:
			if strings.TrimSpace(request.DisplayName) == "" {
				return ErrEmptyDisplayName
			}
		case FieldExtension:
			if !v.isAllowedExtension(request.DisplayName) {
				return fmt.Errorf("%w: %q", ErrExtensionNotAllowed, filepath.Ext(request.DisplayName))
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateSearchRequest(ctx context.Context, request models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuery}
	}

	for _, f := range fields {
		switch f {
		case FieldQuery:
			if request.Query == "" {
				return ErrEmptyQuery
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RecordValidator) validateFetchRequest(ctx context.Context, request models.FetchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContentHash}
	}

	for _, f := range fields {
		switch f {
		case FieldContentHash:
			if len(request.ContentHash) != contentHashLength {
				return ErrInvalidContentHash
			}
			if _, err := hex.DecodeString(request.ContentHash); err != nil {
				return ErrInvalidContentHash
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isAllowedExtension mirrors the classic upload check: the name must carry
// an extension and its lower-cased form must be in the allow-list.
func (v *RecordValidator) isAllowedExtension(name string) bool {
	if len(v.allowedExtensions) == 0 {
		return true
	}

	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return false
	}

	return slices.Contains(v.allowedExtensions, strings.ToLower(name[idx+1:]))
}
