// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/crypto/argon2"
)

const deviceKeySize = 32

// storeKeySalt domain-separates the secret store key from any other key
// derived from the same device key.
var storeKeySalt = []byte("docvault/secret-store/v1")

var (
	// ErrCiphertextTooShort is returned by Open for blobs shorter than a nonce.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	// ErrInvalidDeviceKey is returned when the device key file is corrupted.
	ErrInvalidDeviceKey = errors.New("invalid device key")
)

// argonParams are the Argon2id tuning parameters used to stretch the device
// key into the AES key.
type argonParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

// defaultArgonParams follows the OWASP second recommended configuration:
// 19 MiB, 2 iterations, 1 thread.
var defaultArgonParams = argonParams{
	time:    2,
	memory:  19 * 1024,
	threads: 1,
	keyLen:  32,
}

// deviceCipher is the AES-256-GCM implementation of [Cipher].
type deviceCipher struct {
	aead cipher.AEAD
}

// NewDeviceCipher derives the store key from deviceKey with Argon2id and
// returns an AES-256-GCM [Cipher].
func NewDeviceCipher(deviceKey []byte) (Cipher, error) {
	return newDeviceCipher(deviceKey, defaultArgonParams)
}

func newDeviceCipher(deviceKey []byte, p argonParams) (*deviceCipher, error) {
	if len(deviceKey) != deviceKeySize {
		return nil, ErrInvalidDeviceKey
	}

	key := argon2.IDKey(deviceKey, storeKeySalt, p.time, p.memory, p.threads, p.keyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &deviceCipher{aead: gcm}, nil
}

// Seal implements [Cipher]. A random nonce is prepended to the ciphertext:
// blob = nonce ‖ ciphertext.
func (c *deviceCipher) Seal(plaintext, associated []byte) ([]byte, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return c.aead.Seal(nonce, nonce, plaintext, associated), nil
}

// Open implements [Cipher].
func (c *deviceCipher) Open(blob, associated []byte) ([]byte, error) {
	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, associated)
	if err != nil {
		return nil, fmt.Errorf("decryption failed: %w", err)
	}

	return plaintext, nil
}

// LoadOrCreateDeviceKey reads the device key at path, creating a new random
// key (mode 0600) when the file does not exist yet.
func LoadOrCreateDeviceKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != deviceKeySize {
			return nil, ErrInvalidDeviceKey
		}
		return key, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read device key: %w", err)
	}

	key = make([]byte, deviceKeySize)
	if _, err = io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("generate device key: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create device key dir: %w", err)
		}
	}
	if err = os.WriteFile(path, key, 0o600); err != nil {
		return nil, fmt.Errorf("write device key: %w", err)
	}

	return key, nil
}
