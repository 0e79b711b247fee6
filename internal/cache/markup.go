package cache

import (
	"strings"

	"golang.org/x/net/html"
)

// skipped elements carry annotations rather than verse text: Strong's
// numbers, footnote markers and inline notes.
var skipped = map[string]bool{
	"s":    true,
	"sup":  true,
	"note": true,
}

// StripMarkup returns the plain text of an HTML fragment with entities
// decoded and whitespace collapsed.
func StripMarkup(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return strings.Join(strings.Fields(fragment), " ")
	}

	var sb strings.Builder
	depth := 0
	z := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(sb.String()), " ")
		case html.StartTagToken:
			name, _ := z.TagName()
			switch {
			case skipped[string(name)]:
				depth++
			case string(name) == "br":
				sb.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if skipped[string(name)] && depth > 0 {
				depth--
			}
		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				sb.WriteByte(' ')
			}
		case html.TextToken:
			if depth == 0 {
				sb.Write(z.Text())
			}
		}
	}
}
