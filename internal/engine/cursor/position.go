package cursor

import (
	"strings"
	"unicode/utf8"
)

// LineCount returns the number of lines in text: newlines plus one.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// OffsetOf returns the character offset of (line, col) in text.
// col is clamped to the length of the target line. A line past the last one
// yields the length of text.
func OffsetOf(text string, line, col int) int {
	pos, offset := 0, 0

	for current := 0; current < line; {
		if pos >= len(text) {
			return offset
		}
		r, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
		offset++
		if r == '\n' {
			current++
		}
	}

	for c := 0; c < col && pos < len(text); c++ {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r == '\n' {
			break
		}
		pos += size
		offset++
	}
	return offset
}

// LineColOf returns the line and column of a character offset in text.
// Offsets past the end resolve to the end of text.
func LineColOf(text string, offset int) (line, col int) {
	n := 0
	for _, r := range text {
		if n >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 0
		} else {
			col++
		}
		n++
	}
	return line, col
}

// LineLength returns the number of characters on line, excluding the
// newline. Lines past the last one have length 0.
func LineLength(text string, line int) int {
	current, length := 0, 0
	for _, r := range text {
		if r == '\n' {
			if current == line {
				return length
			}
			current++
			continue
		}
		if current == line {
			length++
		}
	}
	return length
}
