package grid

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// wordSpan is one word's rune range, whitespace runs excluded.
type wordSpan struct {
	start int
	end   int
}

// wordSpans segments the content into words per UAX#29, dropping segments
// that contain no letter, digit, or symbol.
func wordSpans(content []rune) []wordSpan {
	var spans []wordSpan
	rest := string(content)
	offset := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(word))
		if !isSpaceOnly(word) {
			spans = append(spans, wordSpan{start: offset, end: offset + n})
		}
		offset += n
	}
	return spans
}

func isSpaceOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// WordBoundary returns the end of the next word after index (forward) or
// the start of the previous word before index (backward), clamped to the
// content bounds when no such word exists.
func (l *Layout) WordBoundary(index int, forward bool) (int, bool) {
	if !l.laidOut() {
		return 0, false
	}
	content := l.reg.Runes()
	spans := wordSpans(content)
	if forward {
		for _, s := range spans {
			if s.end > index {
				return s.end, true
			}
		}
		return len(content), true
	}
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].start < index {
			return spans[i].start, true
		}
	}
	return 0, true
}
