package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/envseal/internal/errors"
)

const (
	// IVSize is the length of the random GCM nonce stored with each value.
	IVSize = 16

	// TagSize is the length of the GCM authentication tag.
	TagSize = 16

	fieldSeparator = ":"
)

// newGCM builds AES-256-GCM with a 16-byte nonce.
func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d bytes", kerrors.ErrInvalidKeyLength, KeySize, len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES cipher: %w", err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, IVSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aead, nil
}

// Encrypt seals plaintext under key and returns hex(iv):hex(tag):hex(ciphertext).
// Every call uses a fresh random IV, so encrypting the same input twice gives
// different results.
func Encrypt(plaintext string, key []byte) (string, error) {
	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return "", fmt.Errorf("failed to generate IV: %w", err)
	}

	// Seal appends the tag to the ciphertext.
	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-TagSize]
	tag := sealed[len(sealed)-TagSize:]

	return strings.Join([]string{
		hex.EncodeToString(iv),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	}, fieldSeparator), nil
}

// Decrypt reverses Encrypt. It returns ErrMalformedValue when value is not three
// hex fields with a 16-byte IV and tag, and ErrAuthenticationFailure when the tag
// does not verify under key.
func Decrypt(value string, key []byte) (string, error) {
	iv, tag, ciphertext, err := parseValue(value)
	if err != nil {
		return "", err
	}

	aead, err := newGCM(key)
	if err != nil {
		return "", err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", kerrors.ErrAuthenticationFailure
	}

	return string(plaintext), nil
}

func parseValue(value string) (iv, tag, ciphertext []byte, err error) {
	fields := strings.Split(value, fieldSeparator)
	if len(fields) != 3 {
		return nil, nil, nil, fmt.Errorf("%w: expected 3 fields, got %d", kerrors.ErrMalformedValue, len(fields))
	}

	if iv, err = hex.DecodeString(fields[0]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: iv is not hex", kerrors.ErrMalformedValue)
	}
	if len(iv) != IVSize {
		return nil, nil, nil, fmt.Errorf("%w: iv must be %d bytes, got %d", kerrors.ErrMalformedValue, IVSize, len(iv))
	}

	if tag, err = hex.DecodeString(fields[1]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: tag is not hex", kerrors.ErrMalformedValue)
	}
	if len(tag) != TagSize {
		return nil, nil, nil, fmt.Errorf("%w: tag must be %d bytes, got %d", kerrors.ErrMalformedValue, TagSize, len(tag))
	}

	if ciphertext, err = hex.DecodeString(fields[2]); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: ciphertext is not hex", kerrors.ErrMalformedValue)
	}

	return iv, tag, ciphertext, nil
}
