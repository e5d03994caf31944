// Package textbox implements the scrolling message box: word wrapping,
// timed character reveal and automatic pagination of long messages.
package textbox

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Box reveals one message at a time. Text that wraps past MaxLines lines
// continues on the next page once the current page is fully shown and has
// stayed on screen for Dwell seconds.
type Box struct {
	Width    int     // columns
	MaxLines int     // lines per page
	Dwell    float64 // seconds a full page stays before the next one

	text  string
	speed float64
	pages [][]string
	page  int
	shown float64 // characters revealed on the current page
	wait  float64 // time spent on a fully revealed page
}

// New creates an empty box.
func New(width, maxLines int, dwell float64) *Box {
	if width < 1 {
		width = 1
	}
	if maxLines < 1 {
		maxLines = 1
	}
	return &Box{Width: width, MaxLines: maxLines, Dwell: dwell}
}

// SetText shows a new message. Setting the message already on display keeps
// its reveal progress. A speed of zero or less shows the text at once.
func (b *Box) SetText(text string, speed float64) {
	if text == b.text && speed == b.speed && b.pages != nil {
		return
	}
	b.text = text
	b.speed = speed
	b.pages = paginate(Wrap(text, b.Width), b.MaxLines)
	b.page = 0
	b.shown = 0
	b.wait = 0
	if speed <= 0 {
		b.shown = float64(pageLen(b.pages[0]))
	}
}

// Text returns the full message.
func (b *Box) Text() string {
	return b.text
}

// Advance moves the reveal forward by dt seconds.
func (b *Box) Advance(dt float64) {
	if b.pages == nil || dt <= 0 {
		return
	}
	total := float64(pageLen(b.pages[b.page]))
	if b.speed <= 0 {
		b.shown = total
	} else if b.shown < total {
		b.shown += b.speed * dt
		if b.shown < total {
			return
		}
		b.shown = total
		return
	}

	if b.page+1 >= len(b.pages) {
		return
	}
	b.wait += dt
	if b.wait < b.Dwell {
		return
	}
	b.page++
	b.wait = 0
	b.shown = 0
	if b.speed <= 0 {
		b.shown = float64(pageLen(b.pages[b.page]))
	}
}

// Lines returns the revealed part of the current page.
func (b *Box) Lines() []string {
	if b.pages == nil {
		return nil
	}
	left := int(b.shown)
	var out []string
	for _, line := range b.pages[b.page] {
		n := utf8.RuneCountInString(line)
		if left >= n {
			out = append(out, line)
			left -= n
			continue
		}
		if left > 0 {
			out = append(out, string([]rune(line)[:left]))
		}
		break
	}
	return out
}

// Page returns the current page index and the page count.
func (b *Box) Page() (int, int) {
	return b.page, len(b.pages)
}

// More reports whether the current page is fully revealed and another
// page follows it.
func (b *Box) More() bool {
	if b.pages == nil || b.page+1 >= len(b.pages) {
		return false
	}
	return int(b.shown) >= pageLen(b.pages[b.page])
}

// Done reports whether the last page is fully revealed.
func (b *Box) Done() bool {
	if b.pages == nil {
		return true
	}
	return b.page == len(b.pages)-1 && int(b.shown) >= pageLen(b.pages[b.page])
}

// Wrap breaks text into lines no wider than width columns. Explicit newlines
// are kept; words longer than a line are split.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		wrapped := ansi.Wrap(para, width, "")
		for _, line := range strings.Split(wrapped, "\n") {
			lines = append(lines, strings.TrimRight(line, " "))
		}
	}
	return lines
}

func paginate(lines []string, size int) [][]string {
	if len(lines) == 0 {
		return [][]string{{}}
	}
	var pages [][]string
	for len(lines) > size {
		pages = append(pages, lines[:size])
		lines = lines[size:]
	}
	return append(pages, lines)
}

func pageLen(lines []string) int {
	n := 0
	for _, l := range lines {
		n += utf8.RuneCountInString(l)
	}
	return n
}
