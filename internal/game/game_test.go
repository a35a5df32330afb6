package game

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"

	"rect-editor/internal/logger"
	"rect-editor/internal/physics"
	"rect-editor/internal/scene"
	"rect-editor/internal/vector"
)

var blue = color.RGBA{B: 255, A: 255}

func newGame() *Game {
	return New(physics.NewSystem(), logger.NewWriter(nil))
}

func TestAdoptIsIndependent(t *testing.T) {
	authored := scene.New()
	authored.Add(physics.Dynamic, 5, 5, 20, 20, blue)

	g := newGame()
	if err := g.Adopt(authored); err != nil {
		t.Fatalf("Adopt: %v", err)
	}
	authored.Entities[0].Body.Position = vector.New[float32](100, 100)
	if got := g.Scene().Entities[0].Body.Position; got != vector.New[float32](5, 5) {
		t.Fatalf("game copy moved to %+v", got)
	}

	for i := 0; i < 60; i++ {
		g.Tick(16, false)
	}
	if authored.Entities[0].Body.Velocity.Y != 0 || authored.Entities[0].Body.Position != vector.New[float32](100, 100) {
		t.Fatalf("simulation changed the authored scene: %+v", authored.Entities[0].Body)
	}
	if g.Scene().Entities[0].Body.Velocity.Y <= 0 {
		t.Fatal("game scene did not simulate")
	}
}

func TestAdoptReplacesPreviousRun(t *testing.T) {
	authored := scene.New()
	authored.Add(physics.Dynamic, 0, 0, 20, 20, blue)
	g := newGame()
	if err := g.Adopt(authored); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 30; i++ {
		g.Tick(16, false)
	}
	if err := g.Adopt(authored); err != nil {
		t.Fatal(err)
	}
	if g.Ticks() != 0 {
		t.Fatalf("ticks = %d after re-adopt", g.Ticks())
	}
	if got := g.Scene().Entities[0].Body; got.Position != vector.New[float32](0, 0) || got.Velocity.Y != 0 {
		t.Fatalf("re-adopted body carries old state: %+v", got)
	}
}

func TestTickQuitDoesNotStep(t *testing.T) {
	authored := scene.New()
	authored.Add(physics.Dynamic, 0, 0, 20, 20, blue)
	g := newGame()
	_ = g.Adopt(authored)
	if got := g.Tick(16, true); got != Quit {
		t.Fatalf("Tick(quit) = %v, want Quit", got)
	}
	if g.Ticks() != 0 || g.Scene().Entities[0].Body.Velocity.Y != 0 {
		t.Fatal("quit tick advanced physics")
	}
	if got := g.Tick(16, false); got != None {
		t.Fatalf("Tick = %v, want None", got)
	}
}

func TestTickMatchesIntegrator(t *testing.T) {
	authored := scene.New()
	authored.Add(physics.Dynamic, 0, 0, 20, 20, blue)
	authored.Add(physics.Static, 0, 500, 100, 20, blue)
	g := newGame()
	_ = g.Adopt(authored)
	const n = 30
	for i := 0; i < n; i++ {
		g.Tick(16, false)
	}
	want := n * (9.81 / 2) * 16.0 / 1000
	if got := g.Scene().Entities[0].Body.Velocity.Y; math.Abs(float64(got)-want) > 1e-3 {
		t.Fatalf("velocity = %v, want %v", got, want)
	}
	if got := g.Scene().Entities[1].Body.Position; got != vector.New[float32](0, 500) {
		t.Fatalf("static moved to %+v", got)
	}
}

func TestContactsLoggedOnStart(t *testing.T) {
	var buf bytes.Buffer
	g := New(physics.NewSystem(), logger.NewWriter(&buf))
	authored := scene.New()
	authored.Add(physics.Static, 0, 0, 10, 10, blue)
	authored.Add(physics.Static, 5, 5, 10, 10, blue)
	_ = g.Adopt(authored)
	for i := 0; i < 5; i++ {
		g.Tick(16, false)
	}
	if got := g.Contacts(); len(got) != 1 || got[0] != (physics.Pair{I: 0, J: 1}) {
		t.Fatalf("contacts = %v", got)
	}
	if n := strings.Count(buf.String(), "#0 intersects #1"); n != 1 {
		t.Fatalf("contact logged %d times, want once:\n%s", n, buf.String())
	}
}

func TestFrame(t *testing.T) {
	authored := scene.New()
	authored.Add(physics.Dynamic, 0, 0, 20, 20, blue)
	authored.Camera.Pan(7, 0)
	g := newGame()
	_ = g.Adopt(authored)
	g.Tick(16, false)
	f := g.Frame()
	if len(f.Entities) != 1 || f.Camera.Position != vector.New[int32](7, 0) || f.Selection != -1 {
		t.Fatalf("frame = %+v", f)
	}
	if f.Status != "tick:1 contacts:0" {
		t.Fatalf("status = %q", f.Status)
	}
}
