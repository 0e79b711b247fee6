package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bible-tui/internal/theme"
)

// ErrEmptyList is returned when a list would be left without items.
var ErrEmptyList = errors.New("list has no items")

// Item is a list entry. Index is its position in the list.
type Item struct {
	Index int
	Value string
}

// SelectionList is a single-selection list showing pageSize items at a time.
// The selected item always lies inside the visible window [lower, upper).
type SelectionList struct {
	title    string
	width    int
	pageSize int

	items    []Item
	selected Item
	lower    int
	upper    int
	focused  bool
}

// NewSelectionList selects the first value and shows the first page.
func NewSelectionList(title string, values []string, width, pageSize int) (*SelectionList, error) {
	if len(values) == 0 {
		return nil, ErrEmptyList
	}
	l := &SelectionList{
		title:    title,
		width:    width,
		pageSize: max(pageSize, 1),
		items:    enumerate(values),
	}
	l.SelectFirst()
	return l, nil
}

func enumerate(values []string) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Index: i, Value: v}
	}
	return items
}

// SetItems replaces the items. The selection and window survive when the
// selected item is still at the same position with the same value;
// otherwise the list goes back to its first item.
func (l *SelectionList) SetItems(values []string) error {
	if len(values) == 0 {
		return ErrEmptyList
	}
	l.items = enumerate(values)
	if i := l.selected.Index; i < len(l.items) && l.items[i] == l.selected {
		return nil
	}
	l.SelectFirst()
	return nil
}

// Move shifts the selection by delta. It reports false and changes nothing
// when the target is out of range. Leaving the window scrolls it by delta,
// which keeps the selection visible as long as |delta| <= pageSize.
func (l *SelectionList) Move(delta int) bool {
	next := l.selected.Index + delta
	if next < 0 || next >= len(l.items) {
		return false
	}
	l.selected = l.items[next]
	if next >= l.upper || next < l.lower {
		l.lower += delta
		l.upper += delta
	}
	return true
}

func (l *SelectionList) SelectFirst() {
	l.selected = l.items[0]
	l.lower, l.upper = 0, l.pageSize
}

// SelectValue selects the first item equal to value, scrolling so that it
// is the last visible row when it is past the first page.
func (l *SelectionList) SelectValue(value string) bool {
	for _, it := range l.items {
		if it.Value != value {
			continue
		}
		l.selected = it
		l.lower = max(it.Index-l.pageSize+1, 0)
		l.upper = l.lower + l.pageSize
		return true
	}
	return false
}

// SetPageSize changes the window height, moving the window as little as
// needed to keep the selection visible.
func (l *SelectionList) SetPageSize(n int) {
	l.pageSize = max(n, 1)
	switch i := l.selected.Index; {
	case i < l.lower:
		l.lower = i
	case i >= l.lower+l.pageSize:
		l.lower = i - l.pageSize + 1
	}
	l.upper = l.lower + l.pageSize
}

func (l *SelectionList) Selection() Item { return l.selected }

func (l *SelectionList) Items() []Item { return l.items }

// Bounds returns the visible window as a half-open range of indices.
func (l *SelectionList) Bounds() (lower, upper int) { return l.lower, l.upper }

func (l *SelectionList) PageSize() int { return l.pageSize }

func (l *SelectionList) Focused() bool { return l.focused }

func (l *SelectionList) SetFocused(focused bool) { l.focused = focused }

// View renders the title row followed by one row per visible item; item i
// is drawn on row 1+i-lower.
func (l *SelectionList) View(styles theme.Styles) string {
	rows := make([]string, 0, l.pageSize+1)
	rows = append(rows, styles.Title.Render(lipgloss.PlaceHorizontal(l.width, lipgloss.Center, runewidth.Truncate(l.title, l.width, ""))))

	labelWidth := max(l.width-2, 0)
	end := min(l.upper, len(l.items))
	start := min(max(l.lower, 0), end)
	for _, it := range l.items[start:end] {
		label := fit(it.Value, labelWidth)
		var row string
		switch {
		case it.Index != l.selected.Index:
			row = " " + styles.Accent.Render(label)
		case l.focused:
			row = styles.Standout.Render(">" + label)
		default:
			row = styles.Highlighted.Render(">" + label)
		}
		rows = append(rows, row+strings.Repeat(" ", max(l.width-labelWidth-1, 0)))
	}
	blank := strings.Repeat(" ", l.width)
	for len(rows) < l.pageSize+1 {
		rows = append(rows, blank)
	}
	return strings.Join(rows, "\n")
}

// fit truncates s to width cells and pads it on the right.
func fit(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, ""), width)
}
