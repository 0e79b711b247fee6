package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"bible-tui/internal/scripture"
	"bible-tui/internal/theme"
)

// Line is one physical row of the text pane.
type Line struct {
	Text        string
	Highlighted bool
}

// WrapLine word-wraps text to width columns without splitting words. Every
// resulting line carries the highlight flag.
func WrapLine(text string, highlighted bool, width int) []Line {
	if width < 1 || ansi.StringWidth(text) <= width && !strings.Contains(text, "\n") {
		return []Line{{Text: text, Highlighted: highlighted}}
	}
	parts := strings.Split(wordwrap.String(text, width), "\n")
	lines := make([]Line, len(parts))
	for i, p := range parts {
		lines[i] = Line{Text: p, Highlighted: highlighted}
	}
	return lines
}

// Wrap lays out a passage as "(n) text" paragraphs, one after another.
func Wrap(passage []scripture.VerseText, width int) []Line {
	var lines []Line
	for _, v := range passage {
		lines = append(lines, WrapLine(v.Label+" "+v.Body, v.Highlighted, width)...)
	}
	return lines
}

// TextPane is a bordered frame showing the passage from its first line.
// Lines past the bottom are dropped, not scrolled.
type TextPane struct {
	width  int
	height int
}

func NewTextPane(width, height int) *TextPane {
	return &TextPane{width: width, height: height}
}

func (p *TextPane) SetSize(width, height int) {
	p.width, p.height = width, height
}

func (p *TextPane) Size() (width, height int) { return p.width, p.height }

// WrapWidth is the column limit passages are wrapped to.
func (p *TextPane) WrapWidth() int { return p.width - 3 }

// Capacity is the number of text rows inside the frame.
func (p *TextPane) Capacity() int { return max(p.height-2, 0) }

// Render draws the frame with title centered in the top border and lines
// filling the interior top-down. Long lines are cut at the frame.
func (p *TextPane) Render(title string, lines []Line, styles theme.Styles) string {
	if p.width < 2 || p.height < 2 {
		return ""
	}
	b := lipgloss.NormalBorder()
	inner := p.width - 2
	edge := func(s string) string { return styles.Border.Render(s) }

	title = ansi.Truncate(title, inner, "")
	left := (inner - ansi.StringWidth(title)) / 2
	right := inner - ansi.StringWidth(title) - left

	rows := make([]string, 0, p.height)
	rows = append(rows, edge(b.TopLeft+strings.Repeat(b.Top, left))+
		styles.FrameTitle.Render(title)+
		edge(strings.Repeat(b.Top, right)+b.TopRight))

	for i := 0; i < p.Capacity(); i++ {
		content := strings.Repeat(" ", inner)
		if i < len(lines) {
			text := ansi.Truncate(lines[i].Text, inner, "")
			text += strings.Repeat(" ", inner-ansi.StringWidth(text))
			if lines[i].Highlighted {
				content = styles.RedLetter.Render(text)
			} else {
				content = styles.Default.Render(text)
			}
		}
		rows = append(rows, edge(b.Left)+content+edge(b.Right))
	}

	rows = append(rows, edge(b.BottomLeft+strings.Repeat(b.Bottom, inner)+b.BottomRight))
	return strings.Join(rows, "\n")
}
