package utils

import (
	"crypto/aes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecryptField(t *testing.T) {
	for _, plain := range []string{"x", "buyer@example.com", "(281) 555-0142", "exactly16bytes!!"} {
		enc, err := EncryptField(plain, testKey)
		require.NoError(t, err)
		assert.NotContains(t, enc, plain)

		dec, err := DecryptField(enc, testKey)
		require.NoError(t, err)
		assert.Equal(t, plain, dec)
	}
}

func TestEncryptField_RandomIV(t *testing.T) {
	a, err := EncryptField("buyer@example.com", testKey)
	require.NoError(t, err)
	b, err := EncryptField("buyer@example.com", testKey)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestEncryptField_Errors(t *testing.T) {
	_, err := EncryptField("", testKey)
	assert.ErrorIs(t, err, ErrEmptyField)

	_, err = EncryptField("x", []byte("short"))
	assert.Error(t, err)

	_, err = DecryptField("", testKey)
	assert.ErrorIs(t, err, ErrEmptyField)

	for _, stored := range []string{"zz", "00", strings.Repeat("00", aes.BlockSize*2+1)} {
		_, err = DecryptField(stored, testKey)
		assert.ErrorIs(t, err, ErrCorruptedField, stored)
	}
}

func TestDecryptField_TamperedPadding(t *testing.T) {
	enc, err := EncryptField("(281) 555-0142", testKey)
	require.NoError(t, err)

	raw, err := hex.DecodeString(enc)
	require.NoError(t, err)
	// flipping the IV's last byte changes the final plaintext byte, which is padding
	raw[aes.BlockSize-1] ^= 0xff
	_, err = DecryptField(hex.EncodeToString(raw), testKey)
	assert.ErrorIs(t, err, ErrCorruptedField)
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint("Buyer@Example.com ", "secret")
	b := Fingerprint("buyer@example.com", "secret")
	c := Fingerprint("buyer@example.com", "other")

	assert.Equal(t, a, b)
	assert.NotEqual(t, b, c)
	assert.Len(t, a, 64)
}
