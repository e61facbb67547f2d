package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

func HashSHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func HashStringSHA256Hex(value string) string {
	return HashSHA256Hex([]byte(value))
}

// FingerprintLines hashes an ordered list of lines. Two listings with the same content in the same
// order share a fingerprint.
func FingerprintLines(lines []string) string {
	return HashStringSHA256Hex(strings.Join(lines, "\n"))
}
