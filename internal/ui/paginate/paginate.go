package paginate

// Page is a window over a longer list that always contains the selection.
type Page[T any] struct {
	// Content is the visible slice of items.
	Content []T
	// Selection is the offset of the selected item within Content.
	Selection int
	// First reports whether the window starts at the first item.
	First bool
	// Last reports whether the window ends at the last item.
	Last bool
	// Total is the length of the full list.
	Total int
}

// Paginate returns at most pageSize items of items around sel. The selection
// is kept centred once it moves past the first half page, and pinned to the
// bottom of the window near the end of the list.
func Paginate[T any](pageSize int, items []T, sel int) Page[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	total := len(items)
	half := pageSize / 2

	var start, end, cursor int
	switch {
	case total <= pageSize:
		start, end, cursor = 0, total, sel
	case sel < half:
		start, end, cursor = 0, pageSize, sel
	case total-sel-1 < half:
		start, end, cursor = total-pageSize, total, pageSize-(total-sel)
	default:
		start, end, cursor = sel-half, sel+half+pageSize%2, half
	}

	return Page[T]{
		Content:   items[start:end],
		Selection: cursor,
		First:     start == 0,
		Last:      end == total,
		Total:     total,
	}
}
