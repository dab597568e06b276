// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// aesCFBEngine implements [CipherEngine] with AES-256 in CFB mode over
// PKCS#7-padded plaintext. Blob layout: IV (16 bytes) || ciphertext.
//
// CFB is unauthenticated. A wrong key is detected through padding validation
// only, which lets roughly 1 in 256 wrong-key decryptions through as garbage.
type aesCFBEngine struct {
	random io.Reader
}

// NewCipherEngine constructs the AES-256-CFB [CipherEngine] reading IVs from
// the OS CSPRNG.
func NewCipherEngine() CipherEngine {
	return &aesCFBEngine{random: rand.Reader}
}

// Encrypt implements [CipherEngine].
func (e *aesCFBEngine) Encrypt(plaintext []byte, key Key) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)

	blob := make([]byte, aes.BlockSize+len(padded))
	iv := blob[:aes.BlockSize]
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	//nolint:staticcheck // CFB is the storage format of existing records.
	cipher.NewCFBEncrypter(block, iv).XORKeyStream(blob[aes.BlockSize:], padded)

	return blob, nil
}

// Decrypt implements [CipherEngine].
func (e *aesCFBEngine) Decrypt(ciphertext []byte, key Key) ([]byte, error) {
	if len(ciphertext) < 2*aes.BlockSize || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, ErrCiphertextTooShort)
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: create cipher: %w", ErrDecryption, err)
	}

	iv, body := ciphertext[:aes.BlockSize], ciphertext[aes.BlockSize:]

	padded := make([]byte, len(body))
	//nolint:staticcheck // see Encrypt
	cipher.NewCFBDecrypter(block, iv).XORKeyStream(padded, body)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return plaintext, nil
}

// TryDecrypt implements [CipherEngine].
func (e *aesCFBEngine) TryDecrypt(ciphertext []byte, key Key) ([]byte, bool) {
	plaintext, err := e.Decrypt(ciphertext, key)
	if err != nil {
		return nil, false
	}
	return plaintext, true
}
