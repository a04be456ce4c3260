// Package buffer provides the editable text buffer: a rope root, its
// undo/redo history and the active cursor, coordinated behind a small set of
// commands.
//
// The buffer is the only mutation surface. Front ends call a command, then
// read back scalar state to render:
//
//	buf := buffer.New(buffer.WithContent("ab\ncd"))
//	buf.MoveCursor(0, 1)      // cursor (1:0)
//	buf.DeleteBeforeCursor()  // "abcd", cursor (0:2)
//	buf.Undo()                // "ab\ncd"
//	text := buf.Save()        // clears the dirty flag
//
// Every command resolves the cursor to a character offset by scanning the
// flattened text, edits the rope through split and concat, records the
// inverse in the history and updates the cursor. Undo and redo leave the
// cursor where it was, clamped to the text if the edit made it dangle.
//
// Thread Safety:
//
// Buffer is single-threaded. It holds the one live handle to its rope, and
// methods must not be called concurrently without external synchronization.
package buffer
