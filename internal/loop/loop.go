package loop

import (
	"time"

	"rect-editor/internal/editor"
	"rect-editor/internal/game"
	"rect-editor/internal/input"
	"rect-editor/internal/logger"
	"rect-editor/internal/render"
)

// Mode is the active controller.
type Mode int

const (
	ModeEditor Mode = iota
	ModeGame
)

func (m Mode) String() string {
	if m == ModeGame {
		return "game"
	}
	return "editor"
}

// Transition tells the driver what happened in a step.
type Transition int

const (
	// Stay: render the active mode's frame.
	Stay Transition = iota
	// EnterGame: the editor scene was handed to the game; skip rendering this iteration.
	EnterGame
	// EnterEditor: the game quit back to the editor; render the editor frame.
	EnterEditor
	// Exit: the editor quit; stop the loop.
	Exit
)

// Loop is the two-state machine switching between editing and simulation.
// It owns the fixed-timestep accumulator and the wall-clock reference.
type Loop struct {
	mode     Mode
	editor   *editor.Editor
	game     *game.Game
	acc      *Accumulator
	prev     time.Time
	quitHeld bool
	log      *logger.Logger
}

// New returns a loop in editor mode.
func New(ed *editor.Editor, g *game.Game, log *logger.Logger) *Loop {
	return &Loop{
		mode:   ModeEditor,
		editor: ed,
		game:   g,
		acc:    NewAccumulator(FixedStep),
		log:    log,
	}
}

// Mode returns the active mode.
func (l *Loop) Mode() Mode {
	return l.mode
}

// Pending returns the banked simulation time.
func (l *Loop) Pending() time.Duration {
	return l.acc.Pending()
}

// Step advances the state machine by one iteration using the polled input and the current time.
func (l *Loop) Step(in input.State, now time.Time) (Transition, error) {
	if l.mode == ModeEditor {
		return l.stepEditor(in, now)
	}
	return l.stepGame(in, now), nil
}

func (l *Loop) stepEditor(in input.State, now time.Time) (Transition, error) {
	switch l.editor.Tick(in) {
	case editor.Quit:
		l.log.Log("loop: quit")
		return Exit, nil
	case editor.Run:
		if err := l.game.Adopt(l.editor.Scene()); err != nil {
			return Stay, err
		}
		l.acc.Reset()
		l.prev = now
		l.quitHeld = false
		l.mode = ModeGame
		l.log.Log("loop: editor -> game")
		return EnterGame, nil
	}
	return Stay, nil
}

// stepGame drains whole fixed steps from the accumulator. A quit signal waits for the
// next tick to consume it, so it is not lost when no tick fires this iteration.
func (l *Loop) stepGame(in input.State, now time.Time) Transition {
	l.acc.Add(now.Sub(l.prev))
	l.prev = now
	l.quitHeld = l.quitHeld || in.Quit

	dt := uint32(l.acc.Step / time.Millisecond)
	for l.acc.Next() {
		quit := l.quitHeld
		l.quitHeld = false
		if l.game.Tick(dt, quit) == game.Quit {
			l.acc.Reset()
			l.mode = ModeEditor
			l.log.Log("loop: game -> editor")
			return EnterEditor
		}
	}
	return Stay
}

// Frame returns the frame of the active mode.
func (l *Loop) Frame() render.Frame {
	if l.mode == ModeGame {
		return l.game.Frame()
	}
	return l.editor.Frame()
}
