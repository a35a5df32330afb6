package game

import (
	"fmt"

	"rect-editor/internal/logger"
	"rect-editor/internal/physics"
	"rect-editor/internal/render"
	"rect-editor/internal/scene"
)

// Outcome is the result of one simulation tick.
type Outcome int

const (
	None Outcome = iota
	Quit
)

// Game is the simulation controller. It owns a private copy of the authored scene,
// replaced on every Adopt, and advances it through a physics system.
type Game struct {
	scene    *scene.Scene
	physics  *physics.System
	bodies   []*physics.RigidBody
	contacts []physics.Pair
	touching map[physics.Pair]bool
	ticks    uint64
	log      *logger.Logger
}

// New returns a game with an empty scene driven by sys.
func New(sys *physics.System, log *logger.Logger) *Game {
	if sys == nil {
		sys = physics.NewSystem()
	}
	return &Game{
		scene:    scene.New(),
		physics:  sys,
		touching: make(map[physics.Pair]bool),
		log:      log,
	}
}

// Adopt replaces the game's scene with a deep copy of s. Nothing is shared with s afterwards.
func (g *Game) Adopt(s *scene.Scene) error {
	cp, err := s.Snapshot()
	if err != nil {
		return fmt.Errorf("game: adopt: %w", err)
	}
	g.scene = cp
	g.contacts = nil
	g.ticks = 0
	clear(g.touching)
	g.log.Logf("game: adopted scene with %d entities", cp.Len())
	return nil
}

// Scene returns the simulated scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Ticks returns the number of physics steps since the last Adopt.
func (g *Game) Ticks() uint64 {
	return g.ticks
}

// Contacts returns the intersecting pairs found by the last tick.
func (g *Game) Contacts() []physics.Pair {
	return g.contacts
}

// Tick advances the scene by dt milliseconds, or returns Quit without stepping when quit is set.
func (g *Game) Tick(dt uint32, quit bool) Outcome {
	if quit {
		return Quit
	}
	g.bodies = g.scene.Bodies(g.bodies)
	g.contacts = g.physics.Advance(g.bodies, dt)
	g.ticks++
	g.trackContacts()
	return None
}

// trackContacts logs pairs that started intersecting this tick.
func (g *Game) trackContacts() {
	current := make(map[physics.Pair]bool, len(g.contacts))
	for _, p := range g.contacts {
		current[p] = true
		if !g.touching[p] {
			g.log.Logf("game: tick %d: #%d intersects #%d", g.ticks, p.I, p.J)
		}
	}
	g.touching = current
}

// Frame describes what to draw. It does not change game state.
func (g *Game) Frame() render.Frame {
	return render.Frame{
		Entities:  g.scene.RenderOrder(),
		Camera:    g.scene.Camera,
		Selection: -1,
		Status:    fmt.Sprintf("tick:%d contacts:%d", g.ticks, len(g.contacts)),
	}
}
