// Package editor is the terminal front end for a single buffer.
//
// It draws the buffer on a tcell.Screen, maps key events to buffer
// commands, and reads and writes the file being edited:
//
//	Arrows      move the cursor
//	Backspace   delete before the cursor
//	Enter, Tab  insert a newline or tab
//	Ctrl-S      save
//	Ctrl-Z      undo
//	Ctrl-Y      redo
//	Ctrl-Q      quit
//
// The bottom row is a reverse-video status bar showing the file name, a
// [+] marker when there are unsaved changes, the 1-based cursor position
// and the most recent message. While a file is open the editor watches it
// and reports changes made by other programs.
package editor
