// Package scripturetest builds small synthetic translations for tests.
package scripturetest

import (
	"fmt"

	"bible-tui/internal/scripture"
)

// Chapter builds a chapter with verses 1..count and placeholder text.
func Chapter(book string, number, count int) scripture.Chapter {
	c := scripture.Chapter{Number: number}
	for v := 1; v <= count; v++ {
		c.Verses = append(c.Verses, scripture.Verse{
			Number: v,
			Text:   fmt.Sprintf("%s %d:%d text", book, number, v),
		})
	}
	return c
}

// Book builds a book whose chapter n has verses[n-1] verses.
func Book(name string, verses ...int) scripture.Book {
	b := scripture.Book{Name: name}
	for i, count := range verses {
		b.Chapters = append(b.Chapters, Chapter(name, i+1, count))
	}
	return b
}

// Uniform builds a book of chapters chapters, each with perChapter verses.
func Uniform(name string, chapters, perChapter int) scripture.Book {
	counts := make([]int, chapters)
	for i := range counts {
		counts[i] = perChapter
	}
	return Book(name, counts...)
}

// KJV is a trimmed KJV layout: Genesis, Matthew (28 chapters, chapter 5 with
// 48 verses) and John (21 chapters, chapter 3 with 36 verses).
func KJV() *scripture.Bible {
	matthew := Uniform("Matthew", 28, 20)
	matthew.Chapters[4] = Chapter("Matthew", 5, 48)
	john := Uniform("John", 21, 25)
	john.Chapters[2] = Chapter("John", 3, 36)
	return &scripture.Bible{
		Translation: "KJV",
		Books: []scripture.Book{
			Book("Genesis", 31, 25),
			matthew,
			john,
		},
	}
}

// WEB is a smaller second translation without Genesis or John.
func WEB() *scripture.Bible {
	return &scripture.Bible{
		Translation: "WEB",
		Books: []scripture.Book{
			Uniform("Matthew", 3, 10),
			Book("Mark", 45, 28),
		},
	}
}

// Library returns KJV and WEB indexed with the given highlighter.
func Library(h scripture.Highlighter) *scripture.Library {
	lib, err := scripture.NewLibrary([]*scripture.Bible{KJV(), WEB()}, h)
	if err != nil {
		panic(err)
	}
	return lib
}
