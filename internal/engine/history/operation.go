package history

import (
	"fmt"
	"unicode/utf8"
)

// Kind distinguishes insertions from deletions.
type Kind uint8

const (
	Insert Kind = iota
	Delete
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Operation is a single reversible edit.
// For an Insert, Text is what was inserted; for a Delete, what was removed.
type Operation struct {
	Kind     Kind
	Position int    // Character offset of the edit
	Text     string // Inserted or removed text
	Length   int    // Character count of Text
}

// NewOperation creates an operation of the given kind.
func NewOperation(kind Kind, position int, text string) Operation {
	return Operation{
		Kind:     kind,
		Position: position,
		Text:     text,
		Length:   utf8.RuneCountInString(text),
	}
}

// Invert returns the operation that undoes op.
func (op Operation) Invert() Operation {
	inv := op
	if op.Kind == Insert {
		inv.Kind = Delete
	} else {
		inv.Kind = Insert
	}
	return inv
}

// Apply performs op against t.
func (op Operation) Apply(t Target) {
	switch op.Kind {
	case Insert:
		t.InsertText(op.Position, op.Text)
	case Delete:
		t.DeleteText(op.Position, op.Length)
	}
}

// String returns a short description, e.g. `insert "a" at 3`.
func (op Operation) String() string {
	return fmt.Sprintf("%s %q at %d", op.Kind, op.Text, op.Position)
}

// Target is the text an operation is applied to.
type Target interface {
	// InsertText inserts text at a character offset.
	InsertText(position int, text string)

	// DeleteText removes length characters starting at a character offset.
	DeleteText(position, length int)
}
