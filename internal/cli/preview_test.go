package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/thangdevalone/meeting-layout-grid/pkg/layout"
)

func key(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func sized(t *testing.T, count int) previewModel {
	t.Helper()
	m := newPreviewModel(count)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(previewModel)
}

func TestPreviewResize(t *testing.T) {
	m := sized(t, 6)

	if m.err != nil {
		t.Fatalf("recompute error: %v", m.err)
	}
	if m.frame.Count != 6 {
		t.Errorf("frame count = %d, want 6", m.frame.Count)
	}
	if m.frame.Width != 118 {
		t.Errorf("container width = %g, want 118", m.frame.Width)
	}
}

func TestPreviewAddRemove(t *testing.T) {
	m := sized(t, 2)

	updated, _ := m.Update(key("+"))
	m = updated.(previewModel)
	if m.opts.Count != 3 {
		t.Errorf("count after + = %d, want 3", m.opts.Count)
	}

	updated, _ = m.Update(key("-"))
	m = updated.(previewModel)
	updated, _ = m.Update(key("-"))
	m = updated.(previewModel)
	updated, _ = m.Update(key("-"))
	m = updated.(previewModel)
	if m.opts.Count != 0 {
		t.Errorf("count after removals = %d, want 0", m.opts.Count)
	}

	// Removing below zero is a no-op.
	updated, _ = m.Update(key("-"))
	m = updated.(previewModel)
	if m.opts.Count != 0 {
		t.Errorf("count should stay at 0, got %d", m.opts.Count)
	}
}

func TestPreviewPinCycle(t *testing.T) {
	m := sized(t, 3)

	for want := 0; want < 3; want++ {
		updated, _ := m.Update(key("p"))
		m = updated.(previewModel)
		if m.opts.PinnedIndex == nil || *m.opts.PinnedIndex != want {
			t.Fatalf("pin cycle step %d: got %v", want, m.opts.PinnedIndex)
		}
	}

	// One more press unpins.
	updated, _ := m.Update(key("p"))
	m = updated.(previewModel)
	if m.opts.PinnedIndex != nil {
		t.Error("pin should cycle back to none")
	}
}

func TestPreviewSpotlightToggle(t *testing.T) {
	m := sized(t, 4)

	updated, _ := m.Update(key("s"))
	m = updated.(previewModel)
	if m.opts.Mode != layout.ModeSpotlight {
		t.Errorf("mode = %q, want spotlight", m.opts.Mode)
	}

	updated, _ = m.Update(key("s"))
	m = updated.(previewModel)
	if m.opts.Mode != layout.ModeGallery {
		t.Errorf("mode = %q, want gallery", m.opts.Mode)
	}
}

func TestPreviewOverflowPaging(t *testing.T) {
	m := sized(t, 12)

	updated, _ := m.Update(key("v"))
	m = updated.(previewModel)
	if m.opts.MaxVisible != 6 {
		t.Fatalf("MaxVisible = %d, want 6", m.opts.MaxVisible)
	}
	if m.frame.HiddenCount == 0 {
		t.Error("12 tiles with 6 visible should report hidden tiles")
	}

	updated, _ = m.Update(key("right"))
	m = updated.(previewModel)
	if m.opts.CurrentVisiblePage != 1 {
		t.Errorf("visible page = %d, want 1", m.opts.CurrentVisiblePage)
	}

	updated, _ = m.Update(key("left"))
	m = updated.(previewModel)
	if m.opts.CurrentVisiblePage != 0 {
		t.Errorf("visible page = %d, want 0", m.opts.CurrentVisiblePage)
	}
}

func TestPreviewView(t *testing.T) {
	m := sized(t, 4)

	view := m.View()
	if !strings.Contains(view, "meetgrid preview") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "┌") {
		t.Error("view should draw tile borders")
	}
	// All four tiles labeled.
	for _, label := range []string{"1", "2", "3", "4"} {
		if !strings.Contains(view, label) {
			t.Errorf("view should contain label %s", label)
		}
	}
}

func TestPreviewViewBeforeResize(t *testing.T) {
	m := newPreviewModel(4)
	if m.View() == "" {
		t.Error("view should render a placeholder before the first resize")
	}
}
