// Package cursor provides the editing cursor and the translation between
// (line, column) grid coordinates and absolute character offsets.
//
// The translation functions are pure scans over the flattened buffer text.
// No line index is cached, so each call costs O(n) in the size of the text:
//
//	text := "hello\nworld"
//	cursor.LineCount(text)         // 2
//	cursor.OffsetOf(text, 1, 0)    // 6
//	cursor.LineColOf(text, 8)      // 1, 2
//	cursor.LineLength(text, 0)     // 5
//
// Lines are separated by '\n'. Lines and columns are 0-indexed and columns
// count characters (runes), not bytes.
//
// Cursor is a plain value type. It is not safe for concurrent mutation.
package cursor
