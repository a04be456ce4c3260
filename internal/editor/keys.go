package editor

import (
	"errors"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ropedit/internal/engine/history"
	"github.com/dshills/ropedit/internal/watcher"
)

// stopRequest asks the event loop to return.
type stopRequest struct{}

// HandleEvent applies one screen event and reports whether the editor
// should quit.
func (e *Editor) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return e.handleKey(ev)
	case *tcell.EventResize:
		e.screen.Sync()
	case *tcell.EventInterrupt:
		switch data := ev.Data().(type) {
		case stopRequest:
			return true
		case watcher.Event:
			e.logger.Info("external change to %s: %s", data.Path, data.Op)
			if data.Op.Has(watcher.OpRemove) || data.Op.Has(watcher.OpRename) {
				e.SetMessage("file removed on disk")
			} else {
				e.SetMessage("file changed on disk")
			}
		}
	}
	return false
}

// handleKey maps a key to a buffer command.
func (e *Editor) handleKey(ev *tcell.EventKey) bool {
	key := ev.Key()

	// Some terminals report control chords as a rune with ModCtrl.
	if key == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 {
		switch unicode.ToLower(ev.Rune()) {
		case 'q':
			key = tcell.KeyCtrlQ
		case 's':
			key = tcell.KeyCtrlS
		case 'z':
			key = tcell.KeyCtrlZ
		case 'y':
			key = tcell.KeyCtrlY
		case 'h':
			key = tcell.KeyBackspace
		case 'm':
			key = tcell.KeyEnter
		case 'i':
			key = tcell.KeyTab
		default:
			return false
		}
	}

	switch key {
	case tcell.KeyCtrlQ:
		return true
	case tcell.KeyCtrlS:
		e.save()
	case tcell.KeyCtrlZ:
		e.undo()
	case tcell.KeyCtrlY:
		e.redo()
	case tcell.KeyUp:
		e.buf.MoveCursor(0, -1)
	case tcell.KeyDown:
		e.buf.MoveCursor(0, 1)
	case tcell.KeyLeft:
		e.buf.MoveCursor(-1, 0)
	case tcell.KeyRight:
		e.buf.MoveCursor(1, 0)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.buf.DeleteBeforeCursor()
	case tcell.KeyEnter:
		e.buf.InsertChar('\n')
	case tcell.KeyTab:
		e.buf.InsertChar('\t')
	case tcell.KeyRune:
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModAlt == 0 && unicode.IsPrint(r) {
			e.buf.InsertChar(r)
		}
	}
	return false
}

func (e *Editor) save() {
	if err := e.Save(); err != nil {
		e.SetMessage("save failed: %v", err)
		return
	}
	e.SetMessage("saved %s", e.path)
}

func (e *Editor) undo() {
	err := e.buf.Undo()
	if errors.Is(err, history.ErrNothingToUndo) {
		e.SetMessage("nothing to undo")
	}
}

func (e *Editor) redo() {
	err := e.buf.Redo()
	if errors.Is(err, history.ErrNothingToRedo) {
		e.SetMessage("nothing to redo")
	}
}
