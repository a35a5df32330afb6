package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"rect-editor/internal/editor"
	"rect-editor/internal/game"
	"rect-editor/internal/input"
	"rect-editor/internal/logger"
	"rect-editor/internal/physics"
	"rect-editor/internal/scene"
	"rect-editor/internal/ui"
	"rect-editor/internal/vector"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newLoop() (*Loop, *editor.Editor, *game.Game) {
	log := logger.NewWriter(nil)
	ed := editor.New(editor.DefaultPresets(), log)
	g := game.New(physics.NewSystem(), log)
	return New(ed, g, log), ed, g
}

func TestAccumulatorDrain(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		ticks   int
		left    time.Duration
	}{
		{"40ms fires two", 40 * time.Millisecond, 2, 40*time.Millisecond - 2*FixedStep},
		{"10ms fires none", 10 * time.Millisecond, 0, 10 * time.Millisecond},
		{"exactly one step", FixedStep, 1, 0},
		{"stall fires many", time.Second, 59, time.Second - 59*FixedStep},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAccumulator(FixedStep)
			a.Add(tt.elapsed)
			n := 0
			for a.Next() {
				n++
			}
			if n != tt.ticks {
				t.Fatalf("ticks = %d, want %d", n, tt.ticks)
			}
			if a.Pending() != tt.left {
				t.Fatalf("pending = %v, want %v", a.Pending(), tt.left)
			}
		})
	}
}

func TestAccumulatorLeftoverIsAboutSixPointSixSeven(t *testing.T) {
	a := NewAccumulator(FixedStep)
	a.Add(40 * time.Millisecond)
	for a.Next() {
	}
	ms := float64(a.Pending()) / float64(time.Millisecond)
	if ms < 6.66 || ms > 6.67 {
		t.Fatalf("leftover = %vms, want ~6.67ms", ms)
	}
}

func TestAccumulatorCarriesAcrossAdds(t *testing.T) {
	a := NewAccumulator(FixedStep)
	a.Add(10 * time.Millisecond)
	if a.Next() {
		t.Fatal("tick fired after 10ms")
	}
	a.Add(10 * time.Millisecond)
	if !a.Next() || a.Next() {
		t.Fatal("want exactly one tick after 20ms total")
	}
	a.Add(-time.Second)
	if a.Pending() != 20*time.Millisecond-FixedStep {
		t.Fatalf("negative elapsed changed pending to %v", a.Pending())
	}
	a.Reset()
	if a.Pending() != 0 {
		t.Fatal("Reset kept pending time")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	c.Advance(40 * time.Millisecond)
	if got := c.Now().Sub(epoch); got != 40*time.Millisecond {
		t.Fatalf("advanced by %v", got)
	}
}

func placeOne(l *Loop, now time.Time) {
	in := input.State{Pointer: vector.New[int32](200, 200)}
	in.Buttons = in.Buttons.Set(input.ButtonLeft)
	l.Step(in, now)
	l.Step(input.State{Pointer: in.Pointer}, now)
}

func TestRunTransitionsToGame(t *testing.T) {
	l, ed, g := newLoop()
	placeOne(l, epoch)

	tr, err := l.Step(input.State{Run: true}, epoch)
	if err != nil || tr != EnterGame {
		t.Fatalf("Step(run) = %v, %v; want EnterGame", tr, err)
	}
	if l.Mode() != ModeGame {
		t.Fatalf("mode = %s", l.Mode())
	}
	if g.Scene().Len() != 1 {
		t.Fatalf("game scene has %d entities", g.Scene().Len())
	}
	if g.Scene() == ed.Scene() || &g.Scene().Entities[0] == &ed.Scene().Entities[0] {
		t.Fatal("game shares the editor scene")
	}
}

func TestGameStepsFixedTicks(t *testing.T) {
	l, _, g := newLoop()
	placeOne(l, epoch)
	l.Step(input.State{Run: true}, epoch)

	now := epoch.Add(40 * time.Millisecond)
	if tr, _ := l.Step(input.State{}, now); tr != Stay {
		t.Fatalf("transition = %v", tr)
	}
	if g.Ticks() != 2 {
		t.Fatalf("ticks = %d, want 2", g.Ticks())
	}
	now = now.Add(5 * time.Millisecond)
	l.Step(input.State{}, now)
	if g.Ticks() != 2 {
		t.Fatalf("ticks = %d after 5ms more, want 2", g.Ticks())
	}
	now = now.Add(10 * time.Millisecond)
	l.Step(input.State{}, now)
	if g.Ticks() != 3 {
		t.Fatalf("ticks = %d after 55ms total, want 3", g.Ticks())
	}
	want := 3 * (9.81 / 2) * 16.0 / 1000
	if got := float64(g.Scene().Entities[0].Body.Velocity.Y); got < want-1e-4 || got > want+1e-4 {
		t.Fatalf("velocity = %v, want %v (dt 16ms per tick)", got, want)
	}
}

func TestQuitFromGameReturnsToUntouchedEditor(t *testing.T) {
	l, ed, _ := newLoop()
	placeOne(l, epoch)
	l.Step(input.State{Run: true}, epoch)
	now := epoch.Add(500 * time.Millisecond)
	l.Step(input.State{}, now)

	now = now.Add(40 * time.Millisecond)
	tr, _ := l.Step(input.State{Quit: true}, now)
	if tr != EnterEditor || l.Mode() != ModeEditor {
		t.Fatalf("transition %v mode %s; want EnterEditor/editor", tr, l.Mode())
	}
	if l.Pending() != 0 {
		t.Fatalf("leftover %v survived the mode switch", l.Pending())
	}
	body := ed.Scene().Entities[0].Body
	if body.Position != vector.New[float32](200, 200) || body.Velocity.Y != 0 {
		t.Fatalf("editor scene was simulated: %+v", body)
	}
}

func TestReenterGameStartsFresh(t *testing.T) {
	l, _, g := newLoop()
	placeOne(l, epoch)
	l.Step(input.State{Run: true}, epoch)

	// bank 10ms that never becomes a tick, then quit mid-drain
	now := epoch.Add(10 * time.Millisecond)
	l.Step(input.State{}, now)
	now = now.Add(30 * time.Millisecond)
	l.Step(input.State{Quit: true}, now)
	if l.Mode() != ModeEditor {
		t.Fatal("quit did not return to the editor")
	}

	// a long stay in the editor must not count toward the next run
	now = now.Add(time.Hour)
	l.Step(input.State{}, now)
	l.Step(input.State{Run: true}, now)
	if g.Ticks() != 0 {
		t.Fatalf("ticks = %d after re-adopt", g.Ticks())
	}
	now = now.Add(10 * time.Millisecond)
	l.Step(input.State{}, now)
	if g.Ticks() != 0 {
		t.Fatalf("stale leftover fired a tick: ticks = %d", g.Ticks())
	}
	if l.Pending() != 10*time.Millisecond {
		t.Fatalf("pending = %v, want 10ms", l.Pending())
	}
}

func TestQuitLatchedUntilNextTick(t *testing.T) {
	l, _, g := newLoop()
	placeOne(l, epoch)
	l.Step(input.State{Run: true}, epoch)

	now := epoch.Add(5 * time.Millisecond)
	tr, _ := l.Step(input.State{Quit: true}, now)
	if tr != Stay || l.Mode() != ModeGame {
		t.Fatalf("quit applied before any tick: %v %s", tr, l.Mode())
	}
	now = now.Add(15 * time.Millisecond)
	tr, _ = l.Step(input.State{}, now)
	if tr != EnterEditor {
		t.Fatalf("latched quit lost: transition %v", tr)
	}
	if g.Ticks() != 0 {
		t.Fatalf("quit tick stepped physics: ticks %d", g.Ticks())
	}
}

func TestEditorQuitExits(t *testing.T) {
	l, _, _ := newLoop()
	if tr, err := l.Step(input.State{Quit: true}, epoch); tr != Exit || err != nil {
		t.Fatalf("Step(quit) = %v, %v", tr, err)
	}
}

func TestFrameFollowsMode(t *testing.T) {
	l, _, _ := newLoop()
	if f := l.Frame(); len(f.Buttons) == 0 {
		t.Fatal("editor frame has no tool buttons")
	}
	l.Step(input.State{Run: true}, epoch)
	if f := l.Frame(); len(f.Buttons) != 0 || f.Status != "tick:0 contacts:0" {
		t.Fatalf("game frame = %+v", f)
	}
}

// scriptSource replays polls and then keeps returning the last one.
type scriptSource struct {
	clock *ManualClock
	polls []input.State
	i     int
}

func (s *scriptSource) Poll() input.State {
	s.clock.Advance(20 * time.Millisecond)
	in := s.polls[len(s.polls)-1]
	if s.i < len(s.polls) {
		in = s.polls[s.i]
	}
	s.i++
	return in
}

type recordingSink struct {
	frames  int
	scenes  [][]scene.Entity
	status  []string
	present int
}

func (r *recordingSink) DrawScene(entities []scene.Entity, _ scene.Camera, _ int) {
	r.frames++
	r.scenes = append(r.scenes, entities)
}

func (r *recordingSink) DrawUI(_ []ui.Button, status string, _ []string) {
	r.status = append(r.status, status)
}

func (r *recordingSink) Present() { r.present++ }

func TestRunDrivesLoop(t *testing.T) {
	l, _, _ := newLoop()
	clock := NewManualClock(epoch)
	click := input.State{Pointer: vector.New[int32](200, 200)}
	click.Buttons = click.Buttons.Set(input.ButtonLeft)
	src := &scriptSource{clock: clock, polls: []input.State{
		click,        // editor: place, render
		{},           // editor: render
		{Run: true},  // enter game, no render
		{},           // game: 1 tick, render
		{Quit: true}, // game: quit -> editor, render editor
		{Quit: true}, // editor: exit
	}}
	sink := &recordingSink{}
	if err := l.Run(context.Background(), src, sink, clock); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sink.frames != 4 || sink.present != 4 {
		t.Fatalf("frames %d presents %d, want 4", sink.frames, sink.present)
	}
	if sink.status[2] != "tick:1 contacts:0" {
		t.Fatalf("game frame status = %q", sink.status[2])
	}
	if len(sink.scenes[3]) != 1 {
		t.Fatalf("editor frame after quit has %d entities", len(sink.scenes[3]))
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l, _, _ := newLoop()
	clock := NewManualClock(epoch)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := l.Run(ctx, &scriptSource{clock: clock, polls: []input.State{{}}}, &recordingSink{}, clock)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run = %v, want context.Canceled", err)
	}
}
