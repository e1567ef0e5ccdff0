package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"math/big"
	"strings"
)

const (
	// APIKeyPrefix tags every secret so leaked keys are recognizable.
	APIKeyPrefix = "sk_proj_"
	// APIKeyRandomLength is the number of random characters after the prefix.
	APIKeyRandomLength = 32

	apiKeyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// GenerateAPIKey produces a fresh secret together with its storable forms:
// the full plaintext (returned to the caller exactly once), the SHA-256
// hex digest that gets persisted, and the masked display form.
func GenerateAPIKey() (plaintext, keyHash, masked string) {
	var b strings.Builder
	b.WriteString(APIKeyPrefix)
	for i := 0; i < APIKeyRandomLength; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(apiKeyCharset))))
		if err != nil {
			panic("apikey: crypto/rand unavailable: " + err.Error())
		}
		b.WriteByte(apiKeyCharset[n.Int64()])
	}
	plaintext = b.String()
	return plaintext, HashAPIKey(plaintext), MaskAPIKey(plaintext)
}

// HashAPIKey returns the SHA-256 hex digest of the full plaintext key.
func HashAPIKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// MaskAPIKey keeps the prefix plus the first and last four characters,
// replacing the rest with stars: sk_proj_ab12************************wxyz.
func MaskAPIKey(key string) string {
	if len(key) < len(APIKeyPrefix)+8 {
		return key
	}
	head := key[:len(APIKeyPrefix)+4]
	tail := key[len(key)-4:]
	return head + strings.Repeat("*", len(key)-len(head)-len(tail)) + tail
}

// VerifyAPIKey compares the digest of a presented key against a stored
// digest in constant time. Digests are compared, never plaintexts.
func VerifyAPIKey(presented, storedHash string) bool {
	computed := HashAPIKey(presented)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
