package loop

import (
	"context"

	"rect-editor/internal/input"
	"rect-editor/internal/render"
)

// Run drives l until the editor quits or ctx is cancelled: poll, step, render.
// Frame pacing is left to the sink.
func (l *Loop) Run(ctx context.Context, src input.Source, sink render.Sink, clock Clock) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		tr, err := l.Step(src.Poll(), clock.Now())
		if err != nil {
			return err
		}
		switch tr {
		case Exit:
			return nil
		case EnterGame:
			continue
		}
		render.Draw(sink, l.Frame())
	}
}
