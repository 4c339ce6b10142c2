// Package sitekey derives the stored identifier of a site from the raw key
// clients send. Raw keys are never persisted.
package sitekey

import (
	"crypto/sha256"
	"encoding/hex"
)

func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
