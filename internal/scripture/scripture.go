// Package scripture holds loaded translations in memory and answers the
// translation/book/chapter/verse queries the reader needs.
package scripture

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnknownTranslation = errors.New("unknown translation")
	ErrUnknownBook        = errors.New("unknown book")
	ErrUnknownChapter     = errors.New("unknown chapter")
	ErrDuplicate          = errors.New("duplicate translation")
)

// Verse is a single numbered verse.
type Verse struct {
	Number int
	Text   string
}

// Chapter is a numbered chapter with verses in source order.
type Chapter struct {
	Number int
	Verses []Verse
}

// Book is a named book with chapters in source order.
type Book struct {
	Name     string
	Chapters []Chapter
}

// Bible is one translation.
type Bible struct {
	Translation string
	Books       []Book
}

// VerseText is one verse of a passage ready for display.
type VerseText struct {
	Label       string
	Body        string
	Highlighted bool
}

// Highlighter reports red-letter verses.
type Highlighter interface {
	IsHighlighted(book string, chapter, verse int) bool
}

// Library is a read-only set of translations. Every query names its
// translation explicitly.
type Library struct {
	order       []string
	bibles      map[string]*Bible
	highlighter Highlighter
}

// NewLibrary indexes bibles in the given order. A nil highlighter marks
// nothing as red.
func NewLibrary(bibles []*Bible, highlighter Highlighter) (*Library, error) {
	lib := &Library{
		bibles:      make(map[string]*Bible, len(bibles)),
		highlighter: highlighter,
	}
	for _, b := range bibles {
		if _, ok := lib.bibles[b.Translation]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicate, b.Translation)
		}
		lib.bibles[b.Translation] = b
		lib.order = append(lib.order, b.Translation)
	}
	return lib, nil
}

func (l *Library) ListTranslations() []string {
	return append([]string(nil), l.order...)
}

func (l *Library) ListBooks(translation string) ([]string, error) {
	bible, err := l.bible(translation)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(bible.Books))
	for _, b := range bible.Books {
		names = append(names, b.Name)
	}
	return names, nil
}

func (l *Library) ListChapters(translation, book string) ([]string, error) {
	b, err := l.book(translation, book)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(b.Chapters))
	for _, c := range b.Chapters {
		labels = append(labels, strconv.Itoa(c.Number))
	}
	return labels, nil
}

func (l *Library) ListVerses(translation, book, chapter string) ([]string, error) {
	c, err := l.chapter(translation, book, chapter)
	if err != nil {
		return nil, err
	}
	labels := make([]string, 0, len(c.Verses))
	for _, v := range c.Verses {
		labels = append(labels, strconv.Itoa(v.Number))
	}
	return labels, nil
}

// ChapterText returns every verse numbered verseStart or higher, labelled
// "(n)" and flagged with its red-letter status.
func (l *Library) ChapterText(translation, book, chapter string, verseStart int) ([]VerseText, error) {
	c, err := l.chapter(translation, book, chapter)
	if err != nil {
		return nil, err
	}
	var out []VerseText
	for _, v := range c.Verses {
		if v.Number < verseStart {
			continue
		}
		out = append(out, VerseText{
			Label:       fmt.Sprintf("(%d)", v.Number),
			Body:        v.Text,
			Highlighted: l.highlighter != nil && l.highlighter.IsHighlighted(book, c.Number, v.Number),
		})
	}
	return out, nil
}

func (l *Library) bible(translation string) (*Bible, error) {
	bible, ok := l.bibles[translation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTranslation, translation)
	}
	return bible, nil
}

func (l *Library) book(translation, name string) (*Book, error) {
	bible, err := l.bible(translation)
	if err != nil {
		return nil, err
	}
	for i := range bible.Books {
		if bible.Books[i].Name == name {
			return &bible.Books[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q in %s", ErrUnknownBook, name, translation)
}

func (l *Library) chapter(translation, book, label string) (*Chapter, error) {
	b, err := l.book(translation, book)
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s %s", ErrUnknownChapter, label, translation, book)
	}
	for i := range b.Chapters {
		if b.Chapters[i].Number == n {
			return &b.Chapters[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s %d in %s", ErrUnknownChapter, book, n, translation)
}
