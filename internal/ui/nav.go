package ui

import (
	"fmt"
	"log/slog"
	"strconv"

	"bible-tui/internal/scripture"
)

// Store is the verse data the navigator reads. Every query names its
// translation.
type Store interface {
	ListTranslations() []string
	ListBooks(translation string) ([]string, error)
	ListChapters(translation, book string) ([]string, error)
	ListVerses(translation, book, chapter string) ([]string, error)
	ChapterText(translation, book, chapter string, verseStart int) ([]scripture.VerseText, error)
}

// List positions, in focus order.
const (
	ListTranslation = iota
	ListBook
	ListChapter
	ListVerse
	listCount
)

// Column widths in cells.
const (
	translationWidth = 6
	bookWidth        = 14
	chapterWidth     = 4
	verseWidth       = 4

	listsWidth = translationWidth + bookWidth + chapterWidth + verseWidth
)

// Reference is the current selection of all four lists.
type Reference struct {
	Translation string
	Book        string
	Chapter     string
	Verse       string
}

type NavigatorOptions struct {
	PageSize    int
	Translation string // preferred start translation; first one when absent
	Book        string // preferred start book; first one when absent
}

// Navigator owns the translation, book, chapter and verse lists and keeps
// the downstream ones in step with the upstream selections. Exactly one
// list is focused.
type Navigator struct {
	store Store
	lists [listCount]*SelectionList
	focus int
}

// NewNavigator builds the lists from the store's current contents and
// focuses the book list.
func NewNavigator(store Store, opts NavigatorOptions) (*Navigator, error) {
	n := &Navigator{store: store, focus: ListBook}

	translations, err := NewSelectionList("TR", store.ListTranslations(), translationWidth, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("translations: %w", err)
	}
	if opts.Translation != "" && !translations.SelectValue(opts.Translation) {
		slog.Warn("start translation not found", slog.String("translation", opts.Translation))
	}
	n.lists[ListTranslation] = translations
	tr := translations.Selection().Value

	values, err := store.ListBooks(tr)
	if err != nil {
		return nil, err
	}
	books, err := NewSelectionList("BOOK", values, bookWidth, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("books of %s: %w", tr, err)
	}
	if opts.Book != "" && !books.SelectValue(opts.Book) {
		slog.Warn("start book not found", slog.String("translation", tr), slog.String("book", opts.Book))
	}
	n.lists[ListBook] = books
	book := books.Selection().Value

	if values, err = store.ListChapters(tr, book); err != nil {
		return nil, err
	}
	chapters, err := NewSelectionList("CH", values, chapterWidth, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("chapters of %s %s: %w", tr, book, err)
	}
	n.lists[ListChapter] = chapters
	chapter := chapters.Selection().Value

	if values, err = store.ListVerses(tr, book, chapter); err != nil {
		return nil, err
	}
	verses, err := NewSelectionList("VS", values, verseWidth, opts.PageSize)
	if err != nil {
		return nil, fmt.Errorf("verses of %s %s %s: %w", tr, book, chapter, err)
	}
	n.lists[ListVerse] = verses

	n.lists[n.focus].SetFocused(true)
	return n, nil
}

// Refresh rebuilds the book, chapter and verse lists, in that order, from
// the selections upstream of each. Lists whose selection disappears go back
// to their first item. Calling it twice is the same as calling it once.
func (n *Navigator) Refresh() error {
	tr := n.lists[ListTranslation].Selection().Value
	books, err := n.store.ListBooks(tr)
	if err != nil {
		return err
	}
	if err := n.lists[ListBook].SetItems(books); err != nil {
		return fmt.Errorf("books of %s: %w", tr, err)
	}

	book := n.lists[ListBook].Selection().Value
	chapters, err := n.store.ListChapters(tr, book)
	if err != nil {
		return err
	}
	if err := n.lists[ListChapter].SetItems(chapters); err != nil {
		return fmt.Errorf("chapters of %s %s: %w", tr, book, err)
	}

	chapter := n.lists[ListChapter].Selection().Value
	verses, err := n.store.ListVerses(tr, book, chapter)
	if err != nil {
		return err
	}
	if err := n.lists[ListVerse].SetItems(verses); err != nil {
		return fmt.Errorf("verses of %s %s %s: %w", tr, book, chapter, err)
	}
	return nil
}

// MoveFocus moves focus delta lists to the right, wrapping around.
func (n *Navigator) MoveFocus(delta int) {
	n.lists[n.focus].SetFocused(false)
	n.focus = ((n.focus+delta)%listCount + listCount) % listCount
	n.lists[n.focus].SetFocused(true)
}

// Dispatch applies cmd and then refreshes the downstream lists. It reports
// quit for CommandQuit without touching any list.
func (n *Navigator) Dispatch(cmd Command) (quit bool, err error) {
	focused := n.lists[n.focus]
	switch cmd {
	case CommandQuit:
		return true, nil
	case CommandUp:
		focused.Move(-1)
	case CommandDown:
		focused.Move(1)
	case CommandFocusLeft:
		n.MoveFocus(-1)
	case CommandFocusRight:
		n.MoveFocus(1)
	case CommandTop:
		focused.SelectFirst()
	}
	slog.Debug("dispatch",
		slog.String("command", cmd.String()),
		slog.Int("focus", n.focus),
		slog.String("selection", n.lists[n.focus].Selection().Value),
	)
	return false, n.Refresh()
}

// SetPageSize resizes every list window.
func (n *Navigator) SetPageSize(size int) {
	for _, l := range n.lists {
		l.SetPageSize(size)
	}
}

func (n *Navigator) Focus() int { return n.focus }

func (n *Navigator) List(i int) *SelectionList { return n.lists[i] }

// Lists returns the lists in focus order.
func (n *Navigator) Lists() []*SelectionList { return n.lists[:] }

func (n *Navigator) Selection() Reference {
	return Reference{
		Translation: n.lists[ListTranslation].Selection().Value,
		Book:        n.lists[ListBook].Selection().Value,
		Chapter:     n.lists[ListChapter].Selection().Value,
		Verse:       n.lists[ListVerse].Selection().Value,
	}
}

// Title names the passage, e.g. "John 3:16 [KJV]".
func (n *Navigator) Title() string {
	ref := n.Selection()
	return fmt.Sprintf("%s %s:%s [%s]", ref.Book, ref.Chapter, ref.Verse, ref.Translation)
}

// Passage returns the selected chapter from the selected verse onward.
func (n *Navigator) Passage() ([]scripture.VerseText, error) {
	ref := n.Selection()
	start, err := strconv.Atoi(ref.Verse)
	if err != nil {
		return nil, fmt.Errorf("verse %q is not a number", ref.Verse)
	}
	return n.store.ChapterText(ref.Translation, ref.Book, ref.Chapter, start)
}
