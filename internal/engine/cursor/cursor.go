package cursor

import "fmt"

// Cursor is the active edit position in grid coordinates, plus the first
// line shown by the viewport.
type Cursor struct {
	Line         int // 0-indexed line
	Column       int // 0-indexed column in characters
	ScrollOffset int // First visible line
}

// String returns a human-readable representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// IsZero returns true if the cursor is at the start of the document.
func (c Cursor) IsZero() bool {
	return c.Line == 0 && c.Column == 0
}

// Clamp returns c with Line limited to the lines of text and Column limited
// to that line's length.
func (c Cursor) Clamp(text string) Cursor {
	c.Line = clamp(c.Line, 0, LineCount(text)-1)
	c.Column = clamp(c.Column, 0, LineLength(text, c.Line))
	return c
}

// Scroll adjusts ScrollOffset so Line is visible in a viewport of rows lines.
func (c *Cursor) Scroll(rows int) {
	if rows <= 0 {
		return
	}
	if c.Line < c.ScrollOffset {
		c.ScrollOffset = c.Line
	}
	if c.Line >= c.ScrollOffset+rows {
		c.ScrollOffset = c.Line - rows + 1
	}
	if c.ScrollOffset < 0 {
		c.ScrollOffset = 0
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
