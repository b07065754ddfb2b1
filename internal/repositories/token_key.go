package repositories

import (
	"strings"

	"github.com/google/uuid"
)

// NewTokenKey generates an opaque bearer token key. Two UUIDs stripped of
// dashes give 64 hex characters of key material.
func NewTokenKey() string {
	return strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
}
