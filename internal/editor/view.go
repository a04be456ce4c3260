package editor

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Draw renders the visible lines, the status bar and the cursor.
func (e *Editor) Draw() {
	width, height := e.screen.Size()
	e.screen.Clear()

	rows := e.textRows(height)
	e.buf.ScrollTo(rows)
	c := e.buf.Cursor()
	lines := strings.Split(e.buf.String(), "\n")

	for y := 0; y < rows; y++ {
		line := c.ScrollOffset + y
		if line >= len(lines) {
			break
		}
		e.drawLine(y, width, lines[line])
	}

	if e.statusLine && height > 0 {
		e.drawStatus(height-1, width)
	}

	cy := c.Line - c.ScrollOffset
	if c.Line < len(lines) && cy >= 0 && cy < rows {
		if cx := e.displayColumn(lines[c.Line], c.Column); cx < width {
			e.screen.ShowCursor(cx, cy)
		} else {
			e.screen.HideCursor()
		}
	} else {
		e.screen.HideCursor()
	}

	e.screen.Show()
}

// textRows returns how many rows are available for text.
func (e *Editor) textRows(height int) int {
	if e.statusLine {
		height--
	}
	return max(height, 0)
}

// drawLine draws one line of text at row y, expanding tabs and clipping at
// width.
func (e *Editor) drawLine(y, width int, line string) {
	x := 0
	for _, r := range line {
		if r == '\t' {
			x += e.tabWidth - x%e.tabWidth
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			r, w = '?', 1
		}
		if x+w > width {
			return
		}
		e.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
		x += w
	}
}

// displayColumn returns the screen column of character col in line.
func (e *Editor) displayColumn(line string, col int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= col {
			break
		}
		switch w := runewidth.RuneWidth(r); {
		case r == '\t':
			x += e.tabWidth - x%e.tabWidth
		case w == 0:
			x++
		default:
			x += w
		}
	}
	return x
}

// StatusText returns the status bar text.
func (e *Editor) StatusText() string {
	name := e.buf.Name()
	if name == "" {
		name = NoName
	}
	modified := ""
	if e.buf.Dirty() {
		modified = "[+]"
	}
	c := e.buf.Cursor()

	status := fmt.Sprintf(" %s %s | Ln %d, Col %d | ^S:Save ^Q:Quit ^Z:Undo ^Y:Redo",
		name, modified, c.Line+1, c.Column+1)
	if e.message != "" {
		status += " | " + e.message
	}
	return status
}

// drawStatus fills row y with the reverse-video status bar.
func (e *Editor) drawStatus(y, width int) {
	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < width; x++ {
		e.screen.SetContent(x, y, ' ', nil, style)
	}

	x := 0
	for _, r := range e.StatusText() {
		w := runewidth.RuneWidth(r)
		if x+w > width {
			break
		}
		e.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
