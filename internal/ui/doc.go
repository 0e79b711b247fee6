// Package ui implements the reader screen on bubbletea.
//
// The screen is five columns: translation, book, chapter and verse lists
// followed by the passage pane.
//
//   - list.go: SelectionList, a scrolling single-selection list
//   - nav.go: Navigator, which owns the four lists, the focus, and the
//     cascade that rebuilds downstream lists when an upstream selection changes
//   - text.go: word wrapping and the bordered passage pane
//   - keys.go: key bindings and the Command table
//   - model.go: the bubbletea Model tying it together
//
// # Key Bindings
//
//   - k/up, j/down: previous/next item in the focused list
//   - h/left, l/right: focus the previous/next list (wrapping)
//   - g: first item of the focused list
//   - ?: toggle help
//   - q or Ctrl+C: quit
//
// Any other key is ignored but still triggers the usual refresh.
package ui
