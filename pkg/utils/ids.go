package utils

import (
	"crypto/rand"
	"encoding/base64"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// NewID returns a unique record id.
func NewID() string {
	id, err := gonanoid.New()
	if err != nil {
		return generateRandomKey(16)
	}
	return id
}

func generateRandomKey(length int) string {
	b := make([]byte, length)
	// Note that err == nil only if we read len(b) bytes.
	if _, err := rand.Read(b); err != nil {
		return ""
	}
	return base64.URLEncoding.EncodeToString(b)
}
