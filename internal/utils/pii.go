package utils

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyField     = errors.New("contact field is empty")
	ErrCorruptedField = errors.New("stored contact field is corrupted")
)

// Fingerprint returns a keyed hash of a contact value, used to find repeat
// leads without storing the value in clear text. Emails are normalized so
// case and surrounding spaces don't produce different fingerprints.
func Fingerprint(value, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(h.Sum(nil))
}

// EncryptField seals a lead contact field (email or phone) for storage.
// The result is hex of a random IV followed by the AES-CBC ciphertext.
func EncryptField(value string, key []byte) (string, error) {
	if value == "" {
		return "", ErrEmptyField
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("lead encryption key: %w", err)
	}

	iv := make([]byte, aes.BlockSize, 2*aes.BlockSize+len(value))
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}
	padded := pkcs7Pad([]byte(value))
	sealed := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(sealed, padded)

	return hex.EncodeToString(append(iv, sealed...)), nil
}

// DecryptField reverses EncryptField.
func DecryptField(stored string, key []byte) (string, error) {
	if stored == "" {
		return "", ErrEmptyField
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("lead encryption key: %w", err)
	}

	raw, err := hex.DecodeString(stored)
	if err != nil || len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", ErrCorruptedField
	}
	iv, sealed := raw[:aes.BlockSize], raw[aes.BlockSize:]
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(sealed, sealed)

	value, ok := pkcs7Unpad(sealed)
	if !ok {
		return "", ErrCorruptedField
	}
	return string(value), nil
}

func pkcs7Pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte) ([]byte, bool) {
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || !bytes.Equal(b[len(b)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, false
	}
	return b[:len(b)-n], true
}
