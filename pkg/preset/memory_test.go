package preset

import (
	"context"
	"errors"
	"testing"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

func webinarPreset() *Preset {
	return &Preset{
		Name:        "webinar",
		Description: "speaker pinned, thumbnails right",
		Options: layout.Options{
			Dimensions:     geometry.Dimensions{Width: 1280, Height: 720},
			Count:          12,
			Gap:            8,
			AspectRatio:    "16:9",
			MaxVisible:     6,
			OthersPosition: "right",
		},
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "webinar"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get before Put: %v", err)
	}

	p := webinarPreset()
	if err := s.Put(ctx, p); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if p.CreatedAt.IsZero() || p.UpdatedAt.IsZero() {
		t.Error("Put did not stamp timestamps")
	}

	got, err := s.Get(ctx, "webinar")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Options.MaxVisible != 6 || got.Options.Dimensions.Width != 1280 {
		t.Errorf("Get returned %+v", got.Options)
	}

	// Updates keep the original creation time.
	created := got.CreatedAt
	got.Description = "updated"
	if err := s.Put(ctx, got); err != nil {
		t.Fatalf("Put update: %v", err)
	}
	again, _ := s.Get(ctx, "webinar")
	if !again.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v != %v", again.CreatedAt, created)
	}

	if err := s.Delete(ctx, "webinar"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "webinar"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStoreList(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		p := webinarPreset()
		p.Name = name
		if err := s.Put(ctx, p); err != nil {
			t.Fatalf("Put %s: %v", name, err)
		}
	}

	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mike", "zulu"}
	if len(list) != len(want) {
		t.Fatalf("List returned %d presets", len(list))
	}
	for i, p := range list {
		if p.Name != want[i] {
			t.Errorf("List[%d] = %s, want %s", i, p.Name, want[i])
		}
	}
}

func TestMemoryStoreInvalidName(t *testing.T) {
	s := NewMemoryStore()
	if err := s.Put(context.Background(), &Preset{}); !errors.Is(err, ErrInvalidName) {
		t.Errorf("Put empty name: %v", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	// Mutating a returned preset must not touch the stored copy.
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Put(ctx, webinarPreset()); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, _ := s.Get(ctx, "webinar")
	got.Options.Count = 99

	again, _ := s.Get(ctx, "webinar")
	if again.Options.Count != 12 {
		t.Errorf("stored preset mutated: count = %d", again.Options.Count)
	}
}
