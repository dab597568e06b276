// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrPayloadTooLarge     = errors.New("payload too large")

	// ErrWrongKey is returned by direct record fetches when the record exists
	// but does not decrypt under the caller's key.
	ErrWrongKey = errors.New("record cannot be decrypted with the derived key")

	ErrEncryption = errors.New("error encrypting content")
	ErrHashing    = errors.New("error hashing content")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
