// Package cache reads translations from the local translation directory.
//
// Two file formats are understood, keyed by extension:
//
//   - .xml: <bible><b n="Genesis"><c n="1"><v n="1">text</v>...
//   - .json: a bolls.life translation dump, an array of verse objects with
//     numeric book ids
//
// The file stem is the translation identifier.
package cache

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"bible-tui/internal/scripture"
)

var ErrNotCached = errors.New("translation not cached")

var extensions = []string{".xml", ".json"}

type Cache struct {
	cacheDir string
}

// New opens dir, creating it when missing so there is a place to drop files.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create translation dir: %w", err)
	}
	return &Cache{cacheDir: dir}, nil
}

// Dir returns the directory translations are read from.
func (c *Cache) Dir() string {
	return c.cacheDir
}

// IsCached checks if a translation file exists in either format
func (c *Cache) IsCached(translation string) bool {
	_, err := c.path(translation)
	return err == nil
}

// ListCached returns the sorted identifiers of every readable translation file.
func (c *Cache) ListCached() ([]string, error) {
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var translations []string
	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		if seen[name] {
			continue
		}
		seen[name] = true
		translations = append(translations, name)
	}
	sort.Strings(translations)
	return translations, nil
}

// Load decodes one translation.
func (c *Cache) Load(translation string) (*scripture.Bible, error) {
	path, err := c.path(translation)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var books []scripture.Book
	switch filepath.Ext(path) {
	case ".xml":
		books, err = decodeXML(file)
	default:
		books, err = decodeBolls(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &scripture.Bible{Translation: translation, Books: books}, nil
}

// LoadAll decodes every cached translation in ListCached order.
func (c *Cache) LoadAll() ([]*scripture.Bible, error) {
	names, err := c.ListCached()
	if err != nil {
		return nil, err
	}
	bibles := make([]*scripture.Bible, 0, len(names))
	for _, name := range names {
		bible, err := c.Load(name)
		if err != nil {
			return nil, err
		}
		slog.Info("loaded translation",
			slog.String("translation", name),
			slog.Int("books", len(bible.Books)),
		)
		bibles = append(bibles, bible)
	}
	return bibles, nil
}

// GetCacheSize returns the total size of translation files in bytes
func (c *Cache) GetCacheSize() (int64, error) {
	var size int64
	entries, err := os.ReadDir(c.cacheDir)
	if err != nil {
		return 0, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !supported(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		size += info.Size()
	}

	return size, nil
}

func (c *Cache) path(translation string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(c.cacheDir, translation+ext)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotCached, translation)
}

func supported(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

type xmlBible struct {
	Books []xmlBook `xml:"b"`
}

type xmlBook struct {
	Name     string       `xml:"n,attr"`
	Chapters []xmlChapter `xml:"c"`
}

type xmlChapter struct {
	Number string     `xml:"n,attr"`
	Verses []xmlVerse `xml:"v"`
}

type xmlVerse struct {
	Number string `xml:"n,attr"`
	Text   string `xml:",chardata"`
}

func decodeXML(r io.Reader) ([]scripture.Book, error) {
	var doc xmlBible
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	books := make([]scripture.Book, 0, len(doc.Books))
	for _, xb := range doc.Books {
		name := strings.TrimSpace(xb.Name)
		if name == "" {
			return nil, fmt.Errorf("book without a name")
		}
		book := scripture.Book{Name: name}
		for _, xc := range xb.Chapters {
			n, err := parseNumber(xc.Number)
			if err != nil {
				return nil, fmt.Errorf("%s chapter: %w", name, err)
			}
			chapter := scripture.Chapter{Number: n}
			for _, xv := range xc.Verses {
				v, err := parseNumber(xv.Number)
				if err != nil {
					return nil, fmt.Errorf("%s %d verse: %w", name, n, err)
				}
				chapter.Verses = append(chapter.Verses, scripture.Verse{
					Number: v,
					Text:   strings.TrimSpace(xv.Text),
				})
			}
			book.Chapters = append(book.Chapters, chapter)
		}
		books = append(books, book)
	}
	return books, nil
}

func parseNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("malformed number %q", s)
	}
	return n, nil
}

// verse is one entry of a bolls.life dump.
type verse struct {
	PK          int    `json:"pk"`
	Translation string `json:"translation,omitempty"`
	Book        int    `json:"book"`
	Chapter     int    `json:"chapter"`
	Verse       int    `json:"verse"`
	Text        string `json:"text"`
}

func decodeBolls(r io.Reader) ([]scripture.Book, error) {
	var all []verse
	if err := json.NewDecoder(r).Decode(&all); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}

	var books []scripture.Book
	bookIndex := make(map[int]int)
	for _, v := range all {
		bi, ok := bookIndex[v.Book]
		if !ok {
			name, err := BookName(v.Book)
			if err != nil {
				return nil, err
			}
			books = append(books, scripture.Book{Name: name})
			bi = len(books) - 1
			bookIndex[v.Book] = bi
		}
		book := &books[bi]

		ci := chapterIndex(book.Chapters, v.Chapter)
		if ci < 0 {
			book.Chapters = append(book.Chapters, scripture.Chapter{Number: v.Chapter})
			ci = len(book.Chapters) - 1
		}
		chapter := &book.Chapters[ci]
		chapter.Verses = append(chapter.Verses, scripture.Verse{
			Number: v.Verse,
			Text:   StripMarkup(v.Text),
		})
	}
	return books, nil
}

// chapterIndex searches from the end since dumps are normally in order.
func chapterIndex(chapters []scripture.Chapter, number int) int {
	for i := len(chapters) - 1; i >= 0; i-- {
		if chapters[i].Number == number {
			return i
		}
	}
	return -1
}
