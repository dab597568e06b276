// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyContent        = errors.New("content is empty")
	ErrContentTooLarge     = errors.New("content exceeds maximum size")
	ErrContentNotUTF8      = errors.New("content is not valid UTF-8 text")
	ErrEmptyDisplayName    = errors.New("display name is required")
	ErrExtensionNotAllowed = errors.New("file extension is not allowed")
	ErrEmptyQuery          = errors.New("search query is required")
	ErrInvalidContentHash  = errors.New("invalid content hash")
)
