// Package cryptox protects raw coordinates at rest and in transit through
// the external store. The shared join code is the only secret: a fresh key
// is derived per encryption call with a new random salt, so every location
// update is independently protected even though the code is long-lived for
// the session's duration.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dkravets/geoseek/internal/common"
	"github.com/dkravets/geoseek/internal/models"
	"golang.org/x/crypto/pbkdf2"
)

const (
	kdfIterations = 100_000
	keyLen        = 32 // AES-256
	saltLen       = 16
	nonceLen      = 12
)

// DeriveKey derives a 256-bit AES key from the join code and salt using
// PBKDF2-SHA256 with 100,000 iterations.
func DeriveKey(sessionCode string, salt []byte) []byte {
	return pbkdf2.Key([]byte(sessionCode), salt, kdfIterations, keyLen, sha256.New)
}

// EncryptLocation serializes loc to JSON and encrypts it with AES-256-GCM
// under a key derived from sessionCode. A new random 16-byte salt and
// 12-byte nonce are generated per call and never reused.
func EncryptLocation(loc models.Location, sessionCode string) (*models.EncryptedLocation, error) {
	plaintext, err := json.Marshal(loc)
	if err != nil {
		return nil, err
	}

	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(DeriveKey(sessionCode, salt))
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	ciphertext := aesgcm.Seal(nil, nonce, plaintext, nil)

	return &models.EncryptedLocation{
		Encrypted: base64.StdEncoding.EncodeToString(ciphertext),
		IV:        base64.StdEncoding.EncodeToString(nonce),
		Salt:      base64.StdEncoding.EncodeToString(salt),
	}, nil
}

// DecryptLocation reverses EncryptLocation. A wrong code, corrupted data or
// tampering fails the GCM authentication tag and is reported as an error
// wrapping common.ErrDecryptionFailed.
func DecryptLocation(enc *models.EncryptedLocation, sessionCode string) (*models.Location, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(enc.Encrypted)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding: %v", common.ErrDecryptionFailed, err)
	}
	nonce, err := base64.StdEncoding.DecodeString(enc.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: bad nonce encoding: %v", common.ErrDecryptionFailed, err)
	}
	salt, err := base64.StdEncoding.DecodeString(enc.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding: %v", common.ErrDecryptionFailed, err)
	}
	if len(nonce) != nonceLen {
		return nil, fmt.Errorf("%w: unexpected nonce length %d", common.ErrDecryptionFailed, len(nonce))
	}

	block, err := aes.NewCipher(DeriveKey(sessionCode, salt))
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	plaintext, err := aesgcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}

	loc := &models.Location{}
	if err := json.Unmarshal(plaintext, loc); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDecryptionFailed, err)
	}
	return loc, nil
}
