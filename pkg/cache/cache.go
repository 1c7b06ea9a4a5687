// Package cache provides the storage backends and key derivation the
// pipeline uses to memoize computed frames and rendered artifacts.
package cache

import (
	"context"
	"time"
)

// TTLs per cached object class. Frames and artifacts are pure functions of
// their inputs, so expiry only bounds disk and memory growth.
const (
	// TTLFrame is how long computed frames stay cached.
	TTLFrame = 7 * 24 * time.Hour

	// TTLArtifact is how long rendered artifacts stay cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by the file, redis and null
// backends. Get reports a miss with (nil, false, nil); errors are reserved
// for real backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer generates cache keys for the two pipeline stages.
type Keyer interface {
	// FrameKey keys a computed frame by the hash of its layout options.
	FrameKey(optionsHash string) string

	// ArtifactKey keys a rendered artifact by the source frame hash and the
	// render options.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render options that affect artifact bytes. Every
// field participates in the key; forgetting one serves stale artifacts.
type ArtifactKeyOpts struct {
	Format       string
	Background   string
	TileFill     string
	TileStroke   string
	Labels       bool
	ContentBoxes bool
}

// DefaultKeyer derives keys by hashing the structured key parts.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// FrameKey generates the cache key for a computed frame.
func (k *DefaultKeyer) FrameKey(optionsHash string) string {
	return hashKey("frame", optionsHash)
}

// ArtifactKey generates the cache key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
