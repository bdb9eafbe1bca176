package session

import (
	"context"
	"time"

	"mazeraid/pkg/engine/clock"
	engineinput "mazeraid/pkg/engine/input"
	"mazeraid/pkg/game/snapshot"
)

// Run drives the session in real time on the calling goroutine until the
// player quits, ctx is cancelled, or events is closed. Every frame it steps the
// session and hands a snapshot to render.
func (s *Session) Run(ctx context.Context, clk clock.Clock, events <-chan engineinput.RawInput, render func(snapshot.Snapshot)) error {
	ticker := time.NewTicker(s.opts.Rules.FrameInterval)
	defer ticker.Stop()

	render(s.Snapshot())

	for !s.done {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case raw, ok := <-events:
			if !ok {
				return nil
			}
			if err := s.HandleInput(raw, clk.Now()); err != nil {
				return err
			}

		case <-ticker.C:
			if err := s.Step(clk.Now()); err != nil {
				return err
			}
			render(s.Snapshot())
		}
	}
	return nil
}
