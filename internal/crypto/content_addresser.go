// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
)

// hashChunkSize bounds memory use while hashing.
const hashChunkSize = 4096

type sha256Addresser struct{}

// NewContentAddresser constructs a SHA-256 [ContentAddresser].
func NewContentAddresser() ContentAddresser {
	return sha256Addresser{}
}

// Hash implements [ContentAddresser].
func (sha256Addresser) Hash(r io.Reader) (string, error) {
	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(onlyWriter{h}, onlyReader{r}, buf); err != nil {
		return "", fmt.Errorf("hash content: %w", err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashBytes implements [ContentAddresser].
func (sha256Addresser) HashBytes(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// onlyReader and onlyWriter hide ReaderFrom/WriterTo so that io.CopyBuffer
// actually uses the bounded buffer.
type onlyReader struct{ io.Reader }

type onlyWriter struct{ io.Writer }
