package cryptox

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	t.Parallel()

	loc := models.Location{Lat: 52.520008, Lng: 13.404954}

	enc, err := EncryptLocation(loc, "123456")
	require.NoError(t, err)
	require.NotNil(t, enc)

	got, err := DecryptLocation(enc, "123456")
	require.NoError(t, err)
	assert.Equal(t, loc, *got)
}

func TestEncryptLocation_FreshSaltAndNonce(t *testing.T) {
	t.Parallel()

	loc := models.Location{Lat: 1, Lng: 2}

	e1, err := EncryptLocation(loc, "123456")
	require.NoError(t, err)
	e2, err := EncryptLocation(loc, "123456")
	require.NoError(t, err)

	// Same plaintext and code must never produce the same salt, nonce or
	// ciphertext.
	assert.NotEqual(t, e1.Salt, e2.Salt)
	assert.NotEqual(t, e1.IV, e2.IV)
	assert.NotEqual(t, e1.Encrypted, e2.Encrypted)

	salt, err := base64.StdEncoding.DecodeString(e1.Salt)
	require.NoError(t, err)
	assert.Len(t, salt, 16)

	nonce, err := base64.StdEncoding.DecodeString(e1.IV)
	require.NoError(t, err)
	assert.Len(t, nonce, 12)
}

func TestDecryptLocation_WrongCode(t *testing.T) {
	t.Parallel()

	enc, err := EncryptLocation(models.Location{Lat: 1, Lng: 2}, "123456")
	require.NoError(t, err)

	_, err = DecryptLocation(enc, "654321")
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecryptLocation_Tampered(t *testing.T) {
	t.Parallel()

	enc, err := EncryptLocation(models.Location{Lat: 1, Lng: 2}, "123456")
	require.NoError(t, err)

	ciphertext, err := base64.StdEncoding.DecodeString(enc.Encrypted)
	require.NoError(t, err)
	ciphertext[0] ^= 0xff
	enc.Encrypted = base64.StdEncoding.EncodeToString(ciphertext)

	_, err = DecryptLocation(enc, "123456")
	assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
}

func TestDecryptLocation_MalformedFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		enc  models.EncryptedLocation
	}{
		{name: "bad base64 ciphertext", enc: models.EncryptedLocation{Encrypted: "!!!", IV: "AAAAAAAAAAAAAAAA", Salt: "AAAAAAAAAAAAAAAAAAAAAA=="}},
		{name: "bad base64 nonce", enc: models.EncryptedLocation{Encrypted: "AAAA", IV: "!!!", Salt: "AAAAAAAAAAAAAAAAAAAAAA=="}},
		{name: "short nonce", enc: models.EncryptedLocation{Encrypted: "AAAA", IV: "AAAA", Salt: "AAAAAAAAAAAAAAAAAAAAAA=="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecryptLocation(&tt.enc, "123456")
			assert.True(t, errors.Is(err, common.ErrDecryptionFailed))
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	t.Parallel()

	salt := []byte("0123456789abcdef")

	k1 := DeriveKey("123456", salt)
	k2 := DeriveKey("123456", salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, 32)

	k3 := DeriveKey("123457", salt)
	assert.NotEqual(t, k1, k3)
}
