package metadata

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum returns the hex SHA-256 digest of a data file's content.
func Checksum(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}
