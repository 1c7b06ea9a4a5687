package pinned

import (
	"math"
	"testing"

	"github.com/thangdevalone/meeting-layout-grid/pkg/geometry"
)

var ratio169 = geometry.MustParseRatio("16:9")

func landscape() geometry.Dimensions { return geometry.Dimensions{Width: 1280, Height: 720} }
func portrait() geometry.Dimensions  { return geometry.Dimensions{Width: 390, Height: 844} }

func TestPlanEmpty(t *testing.T) {
	l := Plan(Options{Container: landscape(), Count: 0, Gap: 8, Ratio: ratio169})
	if l.Main.Width != 0 || l.Strip.Width != 0 {
		t.Errorf("empty plan should have zero regions: %+v", l)
	}
	if l.IsVisible(0) {
		t.Error("no item should be visible in an empty plan")
	}
}

func TestPlanSingleItemFillsContainer(t *testing.T) {
	l := Plan(Options{Container: landscape(), Count: 1, PinnedIndex: 0, Gap: 8, Ratio: ratio169})
	if l.Main != landscape() {
		t.Errorf("pinned item should fill the container: %+v", l.Main)
	}
	if !l.IsMain(0) || !l.IsVisible(0) {
		t.Error("item 0 should be both main and visible")
	}
	if pos := l.Position(0); pos != (geometry.Position{}) {
		t.Errorf("Position(0) = %+v, want origin", pos)
	}
}

func TestPlanRightStrip(t *testing.T) {
	l := Plan(Options{
		Container:   landscape(),
		Count:       5,
		PinnedIndex: 0,
		Side:        SideRight,
		Gap:         8,
		Ratio:       ratio169,
	})

	if l.Side != SideRight {
		t.Fatalf("side = %s, want right", l.Side)
	}
	if math.Abs(l.Main.Width+l.Strip.Width-1280) > 1e-6 {
		t.Errorf("main + strip widths should span the container: %v + %v", l.Main.Width, l.Strip.Width)
	}
	if l.Main.Height != 720 || l.Strip.Height != 720 {
		t.Errorf("horizontal split should keep full height: main %v strip %v", l.Main.Height, l.Strip.Height)
	}
	if l.StripPos.Left != l.Main.Width {
		t.Errorf("strip should start where main ends: %v vs %v", l.StripPos.Left, l.Main.Width)
	}

	ratio := l.Strip.Width / 1280
	if ratio < hStripAcceptMin-1e-9 || ratio > hStripAcceptMax+1e-9 {
		t.Errorf("strip-width ratio %v outside [%v, %v]", ratio, hStripAcceptMin, hStripAcceptMax)
	}

	// The pin fills the main area entirely.
	if l.ItemDimensions(0) != l.Main {
		t.Errorf("pinned dims = %+v, want main area %+v", l.ItemDimensions(0), l.Main)
	}
}

func TestPlanBottomStrip(t *testing.T) {
	l := Plan(Options{
		Container:   landscape(),
		Count:       6,
		PinnedIndex: 2,
		Side:        SideBottom,
		Gap:         8,
		Ratio:       ratio169,
	})

	if math.Abs(l.Main.Height+l.Strip.Height-720) > 1e-6 {
		t.Errorf("main + strip heights should span the container: %v + %v", l.Main.Height, l.Strip.Height)
	}
	if l.StripPos.Top != l.Main.Height {
		t.Errorf("strip top = %v, want %v", l.StripPos.Top, l.Main.Height)
	}

	r := l.Strip.Height / 720
	if r < vStripRatioMin-1e-9 || r > vStripRatioMax+1e-9 {
		t.Errorf("strip-height ratio %v outside [%v, %v]", r, vStripRatioMin, vStripRatioMax)
	}
}

func TestPortraitForcesBottom(t *testing.T) {
	for _, side := range []Side{SideLeft, SideRight, SideTop} {
		l := Plan(Options{Container: portrait(), Count: 4, Side: side, Gap: 8, Ratio: ratio169})
		if l.Side != SideBottom {
			t.Errorf("side %s in portrait resolved to %s, want bottom", side, l.Side)
		}
	}
}

func TestMobilePortraitCaps(t *testing.T) {
	l := Plan(Options{Container: portrait(), Count: 9, PinnedIndex: 0, Gap: 8, Ratio: ratio169})

	if l.Strip.Height > mobileStripCap*844+1e-6 {
		t.Errorf("strip height %v exceeds the 70%% cap", l.Strip.Height)
	}
	if l.Main.Height < mobileMainMin*844-1e-6 {
		t.Errorf("main height %v below the 30%% floor", l.Main.Height)
	}
	if l.Cols() > mobileMaxCols {
		t.Errorf("mobile strip uses %d columns, want <= %d", l.Cols(), mobileMaxCols)
	}
}

func TestOthersVisibilityAndPositions(t *testing.T) {
	l := Plan(Options{
		Container:   landscape(),
		Count:       5,
		PinnedIndex: 1,
		Side:        SideRight,
		Gap:         8,
		Ratio:       ratio169,
	})

	for i := 0; i < 5; i++ {
		if !l.IsVisible(i) {
			t.Errorf("item %d should be visible without a cap", i)
		}
		pos := l.Position(i)
		if pos.IsOffscreen() {
			t.Errorf("item %d unexpectedly off-screen", i)
		}
		if i != 1 {
			if pos.Left < l.StripPos.Left-1e-6 {
				t.Errorf("other %d at %+v should sit inside the strip (left >= %v)", i, pos, l.StripPos.Left)
			}
		}
	}

	if pos := l.Position(7); !pos.IsOffscreen() {
		t.Errorf("out-of-range index should be off-screen, got %+v", pos)
	}
	if dims := l.ItemDimensions(7); dims != (geometry.Dimensions{}) {
		t.Errorf("out-of-range dims = %+v, want zero", dims)
	}
}

func TestMaxVisibleWindow(t *testing.T) {
	l := Plan(Options{
		Container:   landscape(),
		Count:       8, // 7 others
		PinnedIndex: 0,
		Side:        SideRight,
		Gap:         8,
		Ratio:       ratio169,
		MaxVisible:  3,
	})

	if l.HiddenCount != 7-3+1 {
		t.Errorf("HiddenCount = %d, want 5", l.HiddenCount)
	}
	// Others 1..3 visible, 4..7 hidden.
	for i := 1; i <= 3; i++ {
		if !l.IsVisible(i) {
			t.Errorf("item %d should be visible", i)
		}
	}
	for i := 4; i <= 7; i++ {
		if l.IsVisible(i) {
			t.Errorf("item %d should be hidden", i)
		}
		if !l.Position(i).IsOffscreen() {
			t.Errorf("hidden item %d should report the off-screen sentinel", i)
		}
	}
	if got := l.LastVisibleOthersIndex(); got != 3 {
		t.Errorf("LastVisibleOthersIndex = %d, want 3", got)
	}
}

func TestPagingSuppressesHiddenCount(t *testing.T) {
	l := Plan(Options{
		Container:   landscape(),
		Count:       8,
		PinnedIndex: 0,
		Side:        SideRight,
		Gap:         8,
		Ratio:       ratio169,
		MaxVisible:  3,
		CurrentPage: 1,
	})

	if l.HiddenCount != 0 {
		t.Errorf("HiddenCount = %d while paging, want 0", l.HiddenCount)
	}
	// Page 1 shows others-relative 3..5, i.e. absolute 4..6.
	for i := 4; i <= 6; i++ {
		if !l.IsVisible(i) {
			t.Errorf("item %d should be visible on page 1", i)
		}
	}
	if l.IsVisible(1) {
		t.Error("item 1 belongs to page 0 and should be hidden")
	}
}

func TestLastVisibleSkipsPinned(t *testing.T) {
	// Pinned index inside the visible window shifts the absolute mapping.
	l := Plan(Options{
		Container:   landscape(),
		Count:       6,
		PinnedIndex: 1,
		Side:        SideRight,
		Gap:         8,
		Ratio:       ratio169,
		MaxVisible:  3,
	})
	// Others are absolute 0,2,3,4,5; window covers relative 0..2 = absolute 0,2,3.
	if got := l.LastVisibleOthersIndex(); got != 3 {
		t.Errorf("LastVisibleOthersIndex = %d, want 3", got)
	}
}

func TestPlanDeterministic(t *testing.T) {
	opts := Options{Container: landscape(), Count: 7, PinnedIndex: 3, Side: SideLeft, Gap: 8, Ratio: ratio169}
	a, b := Plan(opts), Plan(opts)
	for i := 0; i < 7; i++ {
		if a.Position(i) != b.Position(i) || a.ItemDimensions(i) != b.ItemDimensions(i) {
			t.Errorf("item %d differs between identical plans", i)
		}
	}
}
