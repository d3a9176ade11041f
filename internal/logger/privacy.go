package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
)

// MinHashSaltLength is the minimum accepted length of LOG_HASH_SALT.
const MinHashSaltLength = 32

var hashSalt string

// InitHashSalt loads LOG_HASH_SALT. It panics when the salt is missing or
// shorter than MinHashSaltLength, since hashes with a weak salt are reversible.
func InitHashSalt() {
	salt := os.Getenv("LOG_HASH_SALT")
	if salt == "" {
		panic("LOG_HASH_SALT is required")
	}
	if len(salt) < MinHashSaltLength {
		panic(fmt.Sprintf("LOG_HASH_SALT must be at least %d characters", MinHashSaltLength))
	}
	hashSalt = salt
}

// InitHashSaltForTesting sets the salt directly.
func InitHashSaltForTesting(salt string) {
	hashSalt = salt
}

func hash(value string) string {
	sum := sha256.Sum256([]byte(value + ":" + hashSalt))
	// First 8 characters are enough to correlate log lines.
	return hex.EncodeToString(sum[:])[:8]
}

// HashUserID creates a privacy-preserving hash of a user ID.
func HashUserID(id uuid.UUID) string {
	return hash(id.String())
}

// HashEmail creates a privacy-preserving hash of an email identity.
// Emails are compared case-insensitively, so the hash is too.
func HashEmail(email string) string {
	return hash(strings.ToLower(strings.TrimSpace(email)))
}

// SanitizeText is a general-purpose sanitizer for any user-provided text.
func SanitizeText(text string) string {
	if text == "" {
		return "<empty>"
	}

	// For short text, show length only
	if len(text) <= 10 {
		return fmt.Sprintf("<%d chars>", len(text))
	}

	// For longer text, show prefix and length
	return fmt.Sprintf("%s...<%d chars>", text[:3], len(text))
}
