// Package graphics is the raylib backend: it opens the window, polls devices into
// input.State and draws render frames.
package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"rect-editor/internal/debug"
	"rect-editor/internal/input"
	"rect-editor/internal/scene"
	"rect-editor/internal/ui"
	"rect-editor/internal/vector"
)

const (
	buttonFontSize = 20
	statusFontSize = 10
	statusX        = 100
	statusY        = 10
	inspectorX     = 10
	inspectorY     = 40
)

// Options configures the window.
type Options struct {
	Width, Height int32
	Title         string
	TargetFPS     int32
}

// Window is both the input source and the render sink of the editor loop.
type Window struct {
	Debug   *debug.Debug
	drawing bool
}

// Open creates the window. ESC is handled as a quit signal by Poll rather than by raylib,
// so that in game mode it returns to the editor instead of closing the window.
func Open(opts Options, dbg *debug.Debug) *Window {
	rl.InitWindow(opts.Width, opts.Height, opts.Title)
	rl.SetExitKey(rl.KeyNull)
	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(opts.TargetFPS)
	}
	return &Window{Debug: dbg}
}

// Close ends any pending frame and closes the window.
func (w *Window) Close() {
	if w.drawing {
		rl.EndDrawing()
		w.drawing = false
	}
	rl.CloseWindow()
}

// Poll reports the device state raylib collected at the end of the previous frame.
func (w *Window) Poll() input.State {
	var st input.State
	st.Quit = rl.WindowShouldClose() || rl.IsKeyPressed(rl.KeyEscape)
	st.Run = rl.IsKeyPressed(rl.KeySpace)
	st.Pan = input.Pan{
		Left:  rl.IsKeyDown(rl.KeyLeft),
		Right: rl.IsKeyDown(rl.KeyRight),
		Up:    rl.IsKeyDown(rl.KeyUp),
		Down:  rl.IsKeyDown(rl.KeyDown),
	}
	st.Pointer.X = rl.GetMouseX()
	st.Pointer.Y = rl.GetMouseY()
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		st.Buttons = st.Buttons.Set(input.ButtonLeft)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		st.Buttons = st.Buttons.Set(input.ButtonRight)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonMiddle) {
		st.Buttons = st.Buttons.Set(input.ButtonMiddle)
	}
	return st
}

func (w *Window) begin() {
	if w.drawing {
		return
	}
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	w.drawing = true
}

// DrawScene draws every entity as a filled rectangle in screen space, in slice order,
// and outlines the selected one in white.
func (w *Window) DrawScene(entities []scene.Entity, camera scene.Camera, selection int) {
	w.begin()
	for i := range entities {
		x, y, width, height := screenRect(&entities[i], camera)
		rl.DrawRectangle(x, y, width, height, entities[i].Color)
	}
	if selection >= 0 && selection < len(entities) {
		x, y, width, height := screenRect(&entities[selection], camera)
		rl.DrawRectangleLines(x, y, width, height, rl.White)
	}
}

// DrawUI draws the buttons, status line and inspector over the scene.
func (w *Window) DrawUI(buttons []ui.Button, status string, inspector []string) {
	w.begin()
	for _, b := range buttons {
		r := b.Bounds
		rl.DrawRectangle(r.X, r.Y, r.Width, r.Height, b.Fill)
		if b.Active {
			rl.DrawRectangleLines(r.X-1, r.Y-1, r.Width+2, r.Height+2, rl.Yellow)
		}
		rl.DrawText(b.Label, r.X+3, r.Y, buttonFontSize, b.Text)
	}
	if status != "" {
		rl.DrawText(status, statusX, statusY, statusFontSize, rl.White)
	}
	for i, line := range inspector {
		rl.DrawText(line, inspectorX, inspectorY+int32(i)*(statusFontSize+2), statusFontSize, rl.White)
	}
	if w.Debug != nil {
		w.Debug.Draw()
	}
}

// Present flips the frame. raylib waits here to hold the target frame rate.
func (w *Window) Present() {
	w.begin()
	rl.EndDrawing()
	w.drawing = false
}

func screenRect(e *scene.Entity, camera scene.Camera) (x, y, width, height int32) {
	p := camera.ToLocal(vector.New(int32(e.Body.Position.X), int32(e.Body.Position.Y)))
	return p.X, p.Y, int32(e.Body.Shape.Width), int32(e.Body.Shape.Height)
}
