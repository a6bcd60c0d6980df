// Package cache stores rendered diagram artifacts.
//
// Rendering runs Graphviz and, for PDF and PNG, an external converter. The
// output depends only on the DOT source and the format, so artifacts are
// keyed by a hash of both and reused across runs.
//
// # Implementations
//
//   - [FileCache]: one file per artifact under a directory, for CLI use
//   - [NullCache]: never stores anything, for --no-cache
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores artifacts by key.
type Cache interface {
	// Get returns the artifact for key. A miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A non-positive ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKey returns the cache key of a rendered artifact.
func ArtifactKey(format, dot string) string {
	return format + ":" + Hash([]byte(format+"\x00"+dot))
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
