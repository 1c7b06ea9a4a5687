// Package pagination computes visible index windows for layouts that cap how
// many tiles render at once.
//
// Two mutually exclusive modes exist. Page-based windows split the item list
// into fixed-size pages the caller navigates explicitly. Max-visible windows
// keep a single page and reserve the last visible slot for a "+N more"
// overflow indicator.
package pagination

// State describes the visible window over a list of count items. It is
// derived on every call and never stored.
type State struct {
	Enabled     bool `json:"enabled" bson:"enabled"`
	CurrentPage int  `json:"current_page" bson:"current_page"`
	TotalPages  int  `json:"total_pages" bson:"total_pages"`
	ItemsOnPage int  `json:"items_on_page" bson:"items_on_page"`
	StartIndex  int  `json:"start_index" bson:"start_index"`
	EndIndex    int  `json:"end_index" bson:"end_index"`

	// HiddenCount is the "+N" overflow signal in max-visible mode. It counts
	// the items the indicator stands in for, including the slot the indicator
	// itself occupies.
	HiddenCount int `json:"hidden_count" bson:"hidden_count"`
}

// Contains reports whether index falls inside the visible window.
func (s State) Contains(index int) bool {
	return index >= s.StartIndex && index < s.EndIndex
}

// LastVisibleIndex is the index of the final visible slot, where callers
// render the overflow indicator instead of content. Returns -1 for an empty
// window.
func (s State) LastVisibleIndex() int {
	if s.EndIndex <= s.StartIndex {
		return -1
	}
	return s.EndIndex - 1
}

// All returns a disabled state covering every item.
func All(count int) State {
	return State{
		TotalPages:  1,
		ItemsOnPage: count,
		EndIndex:    count,
	}
}

// Paged computes a page-based window. The requested page is clamped into
// [0, totalPages-1]; a non-positive pageSize disables pagination.
func Paged(count, pageSize, page int) State {
	if pageSize <= 0 || count <= 0 {
		return All(max(count, 0))
	}

	totalPages := (count + pageSize - 1) / pageSize
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * pageSize
	end := start + pageSize
	if end > count {
		end = count
	}

	return State{
		Enabled:     totalPages > 1,
		CurrentPage: page,
		TotalPages:  totalPages,
		ItemsOnPage: end - start,
		StartIndex:  start,
		EndIndex:    end,
	}
}

// MaxVisible computes a capped window with overflow-indicator semantics.
// When count exceeds maxVisible, exactly maxVisible items render and
// HiddenCount = count - maxVisible + 1: the extra one accounts for the item
// displaced by the indicator itself. A non-positive maxVisible disables the
// cap.
func MaxVisible(count, maxVisible int) State {
	if maxVisible <= 0 || count <= maxVisible {
		return All(max(count, 0))
	}

	return State{
		TotalPages:  1,
		ItemsOnPage: maxVisible,
		EndIndex:    maxVisible,
		HiddenCount: count - maxVisible + 1,
	}
}

// Plan resolves the two modes with page-based taking priority, matching the
// engine's option precedence.
func Plan(count, pageSize, page, maxVisible int) State {
	if pageSize > 0 {
		return Paged(count, pageSize, page)
	}
	return MaxVisible(count, maxVisible)
}
