package editor

import (
	"errors"
	"fmt"
	"image/color"

	"rect-editor/internal/input"
	"rect-editor/internal/logger"
	"rect-editor/internal/physics"
	"rect-editor/internal/render"
	"rect-editor/internal/scene"
	"rect-editor/internal/ui"
	"rect-editor/internal/vector"
)

// ErrNoSuchEntity is returned when a selection index is outside the scene.
var ErrNoSuchEntity = errors.New("editor: no entity at index")

// Outcome is the single result of an editor tick.
type Outcome int

const (
	None Outcome = iota
	Quit
	Run
)

// Tool decides what a click into the scene does.
type Tool int

const (
	AddDynamic Tool = iota
	AddStatic
	Select
)

func (t Tool) String() string {
	switch t {
	case AddDynamic:
		return "ADD_DYNAMIC"
	case AddStatic:
		return "ADD_STATIC"
	case Select:
		return "SELECT"
	default:
		return "UNKNOWN"
	}
}

// Presets are the shapes stamped by the two add tools.
type Presets struct {
	Dynamic scene.Preset
	Static  scene.Preset
}

// DefaultPresets: a 20x20 blue crate and a 100x20 gray ledge, both mass 2.
func DefaultPresets() Presets {
	return Presets{
		Dynamic: scene.Preset{Width: 20, Height: 20, Mass: physics.DefaultMass, Color: color.RGBA{B: 255, A: 255}},
		Static:  scene.Preset{Width: 100, Height: 20, Mass: physics.DefaultMass, Color: color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	}
}

var (
	buttonFill = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonText = color.RGBA{R: 255, A: 255}
)

// toolButton binds a screen button to the tool it selects.
type toolButton struct {
	button ui.Button
	tool   Tool
}

func newToolButtons() []toolButton {
	return []toolButton{
		{ui.Button{Label: "A", Bounds: ui.Rect{X: 10, Y: 0, Width: 20, Height: 20}, Fill: buttonFill, Text: buttonText}, AddDynamic},
		{ui.Button{Label: "W", Bounds: ui.Rect{X: 40, Y: 0, Width: 20, Height: 20}, Fill: buttonFill, Text: buttonText}, AddStatic},
		{ui.Button{Label: "S", Bounds: ui.Rect{X: 70, Y: 0, Width: 20, Height: 20}, Fill: buttonFill, Text: buttonText}, Select},
	}
}

// Editor is the authoring controller. It owns the authored scene for the whole session;
// the scene is only appended to, never replaced.
type Editor struct {
	scene     *scene.Scene
	presets   Presets
	buttons   []toolButton
	tool      Tool
	selection int
	prev      input.ButtonSet
	pointer   vector.Vec2[int32]
	log       *logger.Logger
}

// New returns an editor with an empty scene and the AddDynamic tool active.
func New(presets Presets, log *logger.Logger) *Editor {
	return &Editor{
		scene:     scene.New(),
		presets:   presets,
		buttons:   newToolButtons(),
		tool:      AddDynamic,
		selection: -1,
		log:       log,
	}
}

// Scene returns the authored scene.
func (e *Editor) Scene() *scene.Scene {
	return e.scene
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// SetTool switches the active tool.
func (e *Editor) SetTool(t Tool) {
	if t != e.tool {
		e.log.Logf("editor: tool %s", t)
	}
	e.tool = t
}

// Selection returns the selected entity index.
func (e *Editor) Selection() (int, bool) {
	return e.selection, e.selection >= 0
}

// SetSelection selects entity i, or clears the selection when i is -1.
func (e *Editor) SetSelection(i int) error {
	if i < -1 || i >= e.scene.Len() {
		return fmt.Errorf("%w: %d (scene has %d)", ErrNoSuchEntity, i, e.scene.Len())
	}
	e.selection = i
	return nil
}

// Tick processes one poll of input and returns exactly one outcome.
// Quit and Run end the tick immediately. Panning and clicks are side effects.
func (e *Editor) Tick(in input.State) Outcome {
	edges := in.Buttons.Edges(e.prev)
	e.prev = in.Buttons
	e.pointer = in.Pointer

	if in.Quit {
		return Quit
	}
	if in.Run {
		return Run
	}

	if dx, dy := in.Pan.Delta(); dx != 0 || dy != 0 {
		e.scene.Camera.Pan(dx, dy)
	}

	if edges.Has(input.ButtonLeft) {
		e.click(in)
	}
	return None
}

// click handles a new left-button press. A press on a tool button is consumed by it.
func (e *Editor) click(in input.State) {
	for _, b := range e.buttons {
		if b.button.Bounds.Contains(in.Pointer) {
			e.SetTool(b.tool)
			return
		}
	}

	world := e.scene.Camera.ToWorld(in.Pointer)
	switch e.tool {
	case AddDynamic:
		e.place(physics.Dynamic, e.presets.Dynamic, world)
	case AddStatic:
		e.place(physics.Static, e.presets.Static, world)
	case Select:
		if i, ok := e.scene.HitTest(world); ok {
			e.selection = i
		} else {
			e.selection = -1
		}
	}
}

func (e *Editor) place(t physics.BodyType, p scene.Preset, world vector.Vec2[int32]) {
	i, err := e.scene.Place(t, world, p)
	if err != nil {
		e.log.Logf("editor: place %s: %v", t, err)
		return
	}
	e.log.Logf("editor: placed %s #%d at %d,%d", t, i, world.X, world.Y)
}

// Frame describes what to draw. It does not change editor state.
func (e *Editor) Frame() render.Frame {
	buttons := make([]ui.Button, len(e.buttons))
	for i, b := range e.buttons {
		buttons[i] = b.button
		buttons[i].Active = b.tool == e.tool
	}
	f := render.Frame{
		Entities:  e.scene.RenderOrder(),
		Camera:    e.scene.Camera,
		Selection: e.selection,
		Buttons:   buttons,
		Status:    fmt.Sprintf("x:%d y:%d tool: %s", e.pointer.X, e.pointer.Y, e.tool),
	}
	if ent, ok := e.scene.Entity(e.selection); ok {
		f.Inspector = ui.Inspect(e.selection, ent)
	}
	return f
}
