// Package redletter answers whether a verse is conventionally printed in red,
// i.e. quoted speech of Jesus.
package redletter

import "strings"

// Table is an immutable lookup of red-letter verses keyed by lower-cased book
// name, chapter number and verse number. The zero value reports nothing as red.
type Table struct {
	books map[string]map[int]map[int]struct{}
}

// New copies verses into a Table. Book names are lower-cased.
func New(verses map[string]map[int][]int) Table {
	books := make(map[string]map[int]map[int]struct{}, len(verses))
	for book, chapters := range verses {
		key := strings.ToLower(book)
		if books[key] == nil {
			books[key] = make(map[int]map[int]struct{}, len(chapters))
		}
		for chapter, list := range chapters {
			set := books[key][chapter]
			if set == nil {
				set = make(map[int]struct{}, len(list))
				books[key][chapter] = set
			}
			for _, v := range list {
				set[v] = struct{}{}
			}
		}
	}
	return Table{books: books}
}

// IsHighlighted reports whether book chapter:verse is a red-letter verse.
func (t Table) IsHighlighted(book string, chapter, verse int) bool {
	chapters, ok := t.books[strings.ToLower(book)]
	if !ok {
		return false
	}
	_, ok = chapters[chapter][verse]
	return ok
}

// Books returns the number of books the table has entries for, including
// books present with no chapters.
func (t Table) Books() int {
	return len(t.books)
}

// Default returns the built-in table. Only Matthew 3-13 is annotated so far;
// the other gospels and Acts are present but empty.
func Default() Table {
	return New(map[string]map[int][]int{
		"matthew": {
			3:  {15},
			4:  {4, 7, 10, 17, 19},
			5:  span(3, 48),
			6:  span(1, 34),
			7:  span(1, 27),
			8:  {3, 4, 7, 10, 11, 12, 13, 20, 22, 26, 32},
			9:  {2, 4, 5, 6, 9, 12, 13, 15, 16, 17, 22, 24, 28, 29, 30, 37},
			10: span(5, 42),
			11: join(span(4, 18), span(21, 30)),
			12: join(span(3, 8), span(11, 13), span(25, 37), span(39, 45), span(48, 50)),
			13: join(span(3, 9), span(11, 34), span(37, 53), []int{57}),
		},
		"mark": {},
		"luke": {},
		"john": {},
		"acts": {},
	})
}

// span returns the inclusive range first..last.
func span(first, last int) []int {
	out := make([]int, 0, last-first+1)
	for v := first; v <= last; v++ {
		out = append(out, v)
	}
	return out
}

func join(parts ...[]int) []int {
	var out []int
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
