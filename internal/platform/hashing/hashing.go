package hashing

import (
	"crypto/sha512"
	"encoding/base32"
	"strings"
)

// AnswerHash returns the base32-encoded sha512 digest of an answer, the form
// used throughout the submission store and the tutorial hash index.
func AnswerHash(code string) string {
	digest := sha512.Sum512([]byte(code))
	return base32.StdEncoding.EncodeToString(digest[:])
}

// FileKey strips base32 padding so a hash can double as a file or KV key.
func FileKey(hash string) string {
	return strings.TrimRight(hash, "=")
}
