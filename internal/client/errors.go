// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUploadFailed is returned when at least one file of an upload batch
	// could not be stored.
	ErrUploadFailed = errors.New("some files were not uploaded")

	// ErrConfirmationRequired is returned by clear without --yes.
	ErrConfirmationRequired = errors.New("refusing to clear the store without --yes")
)
