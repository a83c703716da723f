// Package cryptox implements the encryption primitives behind the on-device
// credential cache: argon2id key derivation from the device key file and
// AES-GCM sealing of stored values.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedBlob is returned when a stored blob is too short to contain
// a nonce, or fails authentication on open.
var ErrMalformedBlob = errors.New("malformed encrypted blob")

const gcmNonceSize = 12

// DeriveCacheKey derives the 32-byte AES key protecting the credential
// cache from the device secret and a per-install salt.
func DeriveCacheKey(secret []byte, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, 32)
}

// Seal encrypts plaintext with AES-GCM under key and returns nonce||ciphertext.
// The random nonce is prepended so the result is a single self-contained blob
// suitable for a key-value store. The key must be a valid AES key length
// (16, 24, or 32 bytes).
func Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcmNonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a nonce||ciphertext blob produced by Seal.
func Open(blob, key []byte) ([]byte, error) {
	if len(blob) < gcmNonceSize {
		return nil, ErrMalformedBlob
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, blob[:gcmNonceSize], blob[gcmNonceSize:], nil)
	if err != nil {
		return nil, ErrMalformedBlob
	}
	return plaintext, nil
}
