package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// RandomToken returns nBytes of crypto/rand output as unpadded URL safe
// base64, suitable for session tokens and HTTP headers.
func RandomToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		return "", fmt.Errorf("random token: invalid size %d", nBytes)
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("random token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// StringOrNil maps an empty string to SQL NULL.
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
