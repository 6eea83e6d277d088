// Package selectlist provides a fixed list of items with an optional,
// circularly navigable selection.
package selectlist

// List is an immutable item list with an optional selected index
type List[T any] struct {
	items    []T
	selected int // -1 when nothing is selected
}

// New creates a list over a copy of items with nothing selected
func New[T any](items ...T) List[T] {
	return List[T]{
		items:    append([]T(nil), items...),
		selected: -1,
	}
}

// Next selects the following item, wrapping to the first. Selects the
// first item when nothing is selected.
func (l *List[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	if l.selected < 0 || l.selected >= len(l.items)-1 {
		l.selected = 0
		return
	}
	l.selected++
}

// Previous selects the preceding item, wrapping to the last. Selects the
// first item when nothing is selected.
func (l *List[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = 0
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// Unselect clears the selection
func (l *List[T]) Unselect() {
	l.selected = -1
}

// Select selects index i. Out of range indexes are ignored.
func (l *List[T]) Select(i int) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.selected = i
}

// Selected returns the selected index and whether there is one
func (l List[T]) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return 0, false
	}
	return l.selected, true
}

// SelectedItem returns the selected item and whether there is one
func (l List[T]) SelectedItem() (T, bool) {
	i, ok := l.Selected()
	if !ok {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Items returns a copy of the items
func (l List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

// Len returns the number of items
func (l List[T]) Len() int {
	return len(l.items)
}
