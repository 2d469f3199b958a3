package core

import (
	"encoding/hex"
	"regexp"

	"github.com/smarty/releases/contracts"
)

// hashShapePattern is compiled once at process start and shared read-only.
var hashShapePattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// EncodeHash renders a content digest as lowercase hex, 64 characters.
func EncodeHash(digest [contracts.HashSize]byte) string {
	return hex.EncodeToString(digest[:])
}

// DecodeHash parses a 64-character hex token into a digest. Either case is
// accepted on input; the formatter always emits lowercase.
func DecodeHash(token string) (digest [contracts.HashSize]byte, err error) {
	if !hashShapePattern.MatchString(token) {
		return digest, contracts.NewError(contracts.MalformedHash,
			"expected 64 hex characters, got %q", token)
	}
	raw, err := hex.DecodeString(token)
	if err != nil {
		return digest, contracts.NewError(contracts.MalformedHash, "%q: %s", token, err)
	}
	copy(digest[:], raw)
	return digest, nil
}
