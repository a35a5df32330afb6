package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rect-editor/internal/logger"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	logSize    = 10
	logLines   = 4
	// updateInterval: only refresh FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds runtime debugging overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowLog      bool
	log          *logger.Logger
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns a Debug system with all overlays hidden. log may be nil.
func New(log *logger.Logger) *Debug {
	return &Debug{log: log}
}

// Draw renders any enabled overlays. Call between BeginDrawing and EndDrawing, after the UI.
// FPS and heap alloc go top-right in green; recent log lines go bottom-left.
func (d *Debug) Draw() {
	d.frameCount++
	update := (d.frameCount % updateInterval) == 0
	if d.ShowFPS && d.lastFpsText == "" {
		update = true
	}
	if d.ShowMemAlloc && d.lastMemText == "" {
		update = true
	}

	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if update {
			d.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		drawRight(d.lastFpsText, screenW, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&d.lastMemStats)
			d.lastMemText = fmt.Sprintf("Mem: %.2f MiB", float64(d.lastMemStats.Alloc)/(1024*1024))
		}
		drawRight(d.lastMemText, screenW, y)
	}
	if d.ShowLog {
		d.drawLog()
	}
}

func (d *Debug) drawLog() {
	lines := d.log.Lines()
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	y := int32(rl.GetScreenHeight()) - padding - int32(len(lines))*(logSize+2)
	for _, line := range lines {
		rl.DrawText(line, padding, y, logSize, rl.LightGray)
		y += logSize + 2
	}
}

func drawRight(text string, screenW, y int32) {
	if text == "" {
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}
