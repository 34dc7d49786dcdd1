package service

import (
	"encoding/base64"

	apperrors "github.com/skywalker/milestones/internal/errors"
)

// SigningKey is the symmetric key material used to sign and verify tokens.
// It is derived exactly once at startup and never mutated afterwards, so it is
// safe for unsynchronized concurrent reads.
type SigningKey []byte

// NewSigningKey decodes base64-encoded key material from configuration.
// Returns an error if the value is missing, not valid base64, or decodes to
// zero bytes; callers must treat any error as fatal and refuse to start —
// the process must never sign or verify tokens with an undefined key.
func NewSigningKey(encodedSecret string) (SigningKey, error) {
	if encodedSecret == "" {
		return nil, apperrors.New("signing key is not configured")
	}

	raw, err := base64.StdEncoding.DecodeString(encodedSecret)
	if err != nil {
		return nil, apperrors.Wrap(err, "signing key is not valid base64")
	}

	if len(raw) == 0 {
		return nil, apperrors.New("signing key decodes to zero bytes")
	}

	return SigningKey(raw), nil
}

// String redacts the key material so it can never leak through logging or
// formatting.
func (k SigningKey) String() string {
	return "[redacted]"
}
