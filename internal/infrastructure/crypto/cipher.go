// Package crypto encrypts secrets stored in the database (messenger API key,
// channel destination identifiers) with AES-256-GCM.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32

	// MinPassphraseLength is the shortest passphrase accepted for key derivation.
	MinPassphraseLength = 16

	derivationInfo = "teamboard stored secrets"
)

var ErrCiphertextTooShort = errors.New("ciphertext too short")

// Codec encrypts and decrypts stored secrets.
type Codec interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}

// Cipher is an AES-256-GCM Codec. Ciphertexts are base64(nonce || sealed).
type Cipher struct {
	aead cipher.AEAD
}

func NewCipher(key string) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("encryption key must be exactly %d bytes for AES-256, got %d", KeySize, len(key))
	}

	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &Cipher{aead: gcm}, nil
}

func (c *Cipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	sealed := c.aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (c *Cipher) Decrypt(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	nonceSize := c.aead.NonceSize()
	if len(data) < nonceSize {
		return "", ErrCiphertextTooShort
	}

	nonce, sealed := data[:nonceSize], data[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	return string(plaintext), nil
}

// Plaintext is a pass-through Codec used when no encryption key is configured
// (local sqlite setups).
type Plaintext struct{}

func (Plaintext) Encrypt(plaintext string) (string, error) { return plaintext, nil }
func (Plaintext) Decrypt(encoded string) (string, error)   { return encoded, nil }

// NewCodec returns Plaintext for an empty key. A 32-byte key is used as is;
// any other passphrase is stretched to 32 bytes with HKDF-SHA256.
func NewCodec(key string) (Codec, error) {
	switch {
	case key == "":
		return Plaintext{}, nil
	case len(key) == KeySize:
		return NewCipher(key)
	case len(key) < MinPassphraseLength:
		return nil, fmt.Errorf("encryption passphrase must be at least %d bytes", MinPassphraseLength)
	}

	derived, err := DeriveKey(key)
	if err != nil {
		return nil, err
	}
	return NewCipher(string(derived))
}

// DeriveKey expands a passphrase into an AES-256 key.
func DeriveKey(passphrase string) ([]byte, error) {
	key := make([]byte, KeySize)
	r := hkdf.New(sha256.New, []byte(passphrase), nil, []byte(derivationInfo))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("failed to derive encryption key: %w", err)
	}
	return key, nil
}
