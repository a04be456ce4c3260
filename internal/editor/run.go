package editor

import (
	"context"

	"github.com/gdamore/tcell/v2"
)

// Run draws and handles events until the user quits, ctx is canceled or
// the screen is finalized.
func (e *Editor) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = e.screen.PostEvent(tcell.NewEventInterrupt(stopRequest{}))
		case <-done:
		}
	}()

	for {
		e.Draw()
		ev := e.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if e.HandleEvent(ev) {
			e.logger.Debug("event loop stopped")
			return nil
		}
	}
}
