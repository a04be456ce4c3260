package buffer

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/ropedit/internal/engine/cursor"
	"github.com/dshills/ropedit/internal/engine/history"
	"github.com/dshills/ropedit/internal/engine/rope"
)

// ErrInvalidUTF8 indicates input that is not valid UTF-8. Such input is
// rejected rather than loaded with replacement characters.
var ErrInvalidUTF8 = errors.New("not valid UTF-8")

// Logger receives buffer diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Buffer owns a rope, its undo/redo history, the cursor and the dirty flag.
type Buffer struct {
	id      uuid.UUID
	name    string
	root    *rope.Node
	history *history.History
	cursor  cursor.Cursor
	dirty   bool

	// Configuration
	historyCapacity int
	chunkOnLoad     bool
	maxDepth        int
	logger          Logger

	// Initialization
	initContent string
}

// New creates a buffer. Without WithContent the buffer starts empty.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:              uuid.New(),
		historyCapacity: history.DefaultCapacity,
		logger:          nopLogger{},
	}

	for _, opt := range opts {
		opt(b)
	}

	b.history = history.New(b.historyCapacity)
	b.root = b.build(b.initContent)
	b.initContent = ""
	return b
}

// build creates a rope for freshly loaded text.
func (b *Buffer) build(text string) *rope.Node {
	if b.chunkOnLoad {
		return rope.NewChunked(text, rope.LeafSize)
	}
	return rope.New(text)
}

// setRoot replaces the root with the result of an edit.
func (b *Buffer) setRoot(root *rope.Node) {
	if b.maxDepth > 0 {
		if d := rope.Depth(root); d > b.maxDepth {
			root = rope.Rebalance(root)
			b.logger.Debug("rebalanced rope: depth %d exceeded %d", d, b.maxDepth)
		}
	}
	b.root = root
}

// record pushes an edit onto the history.
func (b *Buffer) record(kind history.Kind, offset int, text string) {
	if b.history.Record(kind, offset, text) {
		b.logger.Debug("history full: evicted oldest edit (capacity %d)", b.history.Capacity())
	}
}

// Read Operations

// ID returns the buffer's unique identifier.
func (b *Buffer) ID() uuid.UUID {
	return b.id
}

// Name returns the display name.
func (b *Buffer) Name() string {
	return b.name
}

// SetName sets the display name.
func (b *Buffer) SetName(name string) {
	b.name = name
}

// String returns the full text of the buffer.
func (b *Buffer) String() string {
	return b.root.String()
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	return b.root.Len()
}

// CharAt returns the character at pos, or false if pos is out of range.
func (b *Buffer) CharAt(pos int) (rune, bool) {
	return b.root.CharAt(pos)
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return cursor.LineCount(b.root.String())
}

// Cursor returns the current cursor.
func (b *Buffer) Cursor() cursor.Cursor {
	return b.cursor
}

// Dirty returns true if the buffer changed since the last load or save.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// CanUndo returns true if undo is available.
func (b *Buffer) CanUndo() bool {
	return b.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (b *Buffer) CanRedo() bool {
	return b.history.CanRedo()
}

// Edit Operations

// InsertChar inserts r at the cursor and advances the cursor past it.
func (b *Buffer) InsertChar(r rune) {
	offset := cursor.OffsetOf(b.root.String(), b.cursor.Line, b.cursor.Column)
	s := string(r)

	b.record(history.Insert, offset, s)
	b.setRoot(rope.Insert(b.root, offset, s))

	if r == '\n' {
		b.cursor.Line++
		b.cursor.Column = 0
	} else {
		b.cursor.Column++
	}
	b.dirty = true
}

// DeleteBeforeCursor removes the character before the cursor.
// Deleting a newline joins the line onto the previous one and places the
// cursor at the join. Returns false if the cursor is at the document start.
func (b *Buffer) DeleteBeforeCursor() bool {
	if b.cursor.IsZero() {
		return false
	}

	offset := cursor.OffsetOf(b.root.String(), b.cursor.Line, b.cursor.Column)
	if offset == 0 {
		return false
	}
	offset--

	ch, ok := b.root.CharAt(offset)
	if !ok {
		return false
	}

	b.record(history.Delete, offset, string(ch))
	b.setRoot(rope.Delete(b.root, offset, 1))

	if ch == '\n' {
		b.cursor.Line, b.cursor.Column = cursor.LineColOf(b.root.String(), offset)
	} else {
		b.cursor.Column--
	}
	b.dirty = true
	return true
}

// MoveCursor moves the cursor by dx columns and dy lines, clamping to the
// document. Horizontal moves do not wrap onto neighbouring lines.
func (b *Buffer) MoveCursor(dx, dy int) {
	moved := b.cursor
	moved.Line += dy
	moved.Column += dx
	b.cursor = moved.Clamp(b.root.String())
}

// ScrollTo keeps the cursor visible in a viewport of rows lines.
func (b *Buffer) ScrollTo(rows int) {
	b.cursor.Scroll(rows)
}

// Undo reverts the most recent edit. The cursor is not moved to the edit
// site. Returns history.ErrNothingToUndo if there is nothing to revert.
func (b *Buffer) Undo() error {
	op, err := b.history.Undo(target{b})
	if err != nil {
		return err
	}
	b.afterHistory()
	b.logger.Debug("undo %s", op)
	return nil
}

// Redo re-applies the most recently undone edit. The cursor is not moved to
// the edit site. Returns history.ErrNothingToRedo if there is nothing to redo.
func (b *Buffer) Redo() error {
	op, err := b.history.Redo(target{b})
	if err != nil {
		return err
	}
	b.afterHistory()
	b.logger.Debug("redo %s", op)
	return nil
}

func (b *Buffer) afterHistory() {
	b.cursor = b.cursor.Clamp(b.root.String())
	b.dirty = true
}

// Load replaces the content with text, resets the cursor and clears the dirty
// flag. Undo history is kept.
func (b *Buffer) Load(text string) {
	rope.Free(b.root)
	b.root = b.build(text)
	b.cursor = cursor.Cursor{}
	b.dirty = false
}

// Save returns the full text and clears the dirty flag.
func (b *Buffer) Save() string {
	b.dirty = false
	return b.root.String()
}

// ClearHistory drops all undo and redo history.
func (b *Buffer) ClearHistory() {
	b.history.Clear()
}

// ReadFrom loads the whole content of r into the buffer, as Load does.
// Content that is not valid UTF-8 returns ErrInvalidUTF8 and leaves the
// buffer unchanged.
func (b *Buffer) ReadFrom(r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return int64(len(data)), fmt.Errorf("reading buffer content: %w", err)
	}
	if !utf8.Valid(data) {
		return int64(len(data)), ErrInvalidUTF8
	}
	b.Load(string(data))
	return int64(len(data)), nil
}

// WriteTo writes the full text to w and, on success, clears the dirty flag.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.root.String())
	if err != nil {
		return int64(n), fmt.Errorf("writing buffer content: %w", err)
	}
	b.dirty = false
	return int64(n), nil
}

// Release frees the rope. The buffer must not be used afterward.
func (b *Buffer) Release() {
	rope.Free(b.root)
	b.history.Clear()
}

// target applies history operations to the buffer's rope. Recorded
// positions may lie past the end after Load replaced the text, so they are
// clamped to the current length.
type target struct {
	b *Buffer
}

func (t target) InsertText(position int, text string) {
	position = t.clamp(position)
	t.b.setRoot(rope.Insert(t.b.root, position, text))
}

func (t target) DeleteText(position, length int) {
	position = t.clamp(position)
	t.b.setRoot(rope.Delete(t.b.root, position, length))
}

func (t target) clamp(position int) int {
	return max(0, min(position, t.b.root.Len()))
}
