// Package preset stores named layout option sets so teams can share room
// configurations ("webinar", "all-hands", "1:1") across clients. The memory
// store backs tests and single-process runs; the mongo store backs the
// served API.
package preset

import (
	"context"
	"errors"
	"time"

	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

// Sentinel errors for preset operations.
var (
	// ErrNotFound is returned when a requested preset does not exist.
	ErrNotFound = errors.New("preset not found")

	// ErrInvalidName is returned for empty preset names.
	ErrInvalidName = errors.New("preset name must not be empty")
)

// Preset is a named, reusable set of layout options.
type Preset struct {
	Name        string         `json:"name" bson:"_id"`
	Description string         `json:"description,omitempty" bson:"description,omitempty"`
	Options     layout.Options `json:"options" bson:"options"`
	CreatedAt   time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for preset storage backends.
type Store interface {
	// Get retrieves a preset by name. Returns ErrNotFound when absent.
	Get(ctx context.Context, name string) (*Preset, error)

	// Put creates or replaces a preset, stamping UpdatedAt (and CreatedAt on
	// first write).
	Put(ctx context.Context, p *Preset) error

	// List returns all presets sorted by name.
	List(ctx context.Context) ([]Preset, error)

	// Delete removes a preset by name. Returns ErrNotFound when absent.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// stamp fills the preset's timestamps before a write.
func stamp(p *Preset, created time.Time) {
	now := time.Now().UTC()
	if created.IsZero() {
		p.CreatedAt = now
	} else {
		p.CreatedAt = created
	}
	p.UpdatedAt = now
}
