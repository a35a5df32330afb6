package engineconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rect-editor/internal/editor"
	"rect-editor/internal/logger"
	"rect-editor/internal/physics"
	"rect-editor/internal/scene"
	"rect-editor/internal/ui"
)

// EngineConfigPath is the default config file, relative to the process working directory.
const EngineConfigPath = "config/editor.yaml"

// Window holds the window size and title.
type Window struct {
	Width  int32  `yaml:"width"`
	Height int32  `yaml:"height"`
	Title  string `yaml:"title"`
}

// PresetDef is the YAML form of a placement preset. Color is #rrggbb or an SVG colour name.
type PresetDef struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Mass   uint32 `yaml:"mass"`
	Color  string `yaml:"color"`
}

// PresetDefs holds the presets for the two add tools.
type PresetDefs struct {
	Dynamic PresetDef `yaml:"dynamic"`
	Static  PresetDef `yaml:"static"`
}

// EnginePrefs holds editor preferences. Scenes are not persisted; only these settings are.
type EnginePrefs struct {
	Window    Window     `yaml:"window"`
	TargetFPS int32      `yaml:"target_fps"`
	Gravity   float32    `yaml:"gravity"`
	Resolver  string     `yaml:"resolver"`
	ShowFPS   bool       `yaml:"show_fps"`
	LogPath   string     `yaml:"log_path"`
	Presets   PresetDefs `yaml:"presets"`
}

// Default returns the stock preferences: 800x600 window, standard gravity, no collision response.
func Default() EnginePrefs {
	return EnginePrefs{
		Window:    Window{Width: 800, Height: 600, Title: "rect-editor"},
		TargetFPS: 60,
		Gravity:   physics.Gravity,
		Resolver:  "none",
		ShowFPS:   false,
		LogPath:   logger.DefaultPath,
		Presets: PresetDefs{
			Dynamic: PresetDef{Width: 20, Height: 20, Mass: physics.DefaultMass, Color: "#0000ff"},
			Static:  PresetDef{Width: 100, Height: 20, Mass: physics.DefaultMass, Color: "#808080"},
		},
	}
}

// Load reads preferences from path (EngineConfigPath when empty). Fields missing from the
// file keep their defaults. A missing file is not an error; malformed or invalid content is.
func Load(path string) (EnginePrefs, error) {
	if path == "" {
		path = EngineConfigPath
	}
	p := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, fmt.Errorf("engineconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("engineconfig: parse %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("engineconfig: %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path as YAML, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if path == "" {
		path = EngineConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the values the core treats as preconditions.
func (p EnginePrefs) Validate() error {
	if p.Window.Width <= 0 || p.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", p.Window.Width, p.Window.Height)
	}
	if _, err := physics.ResolverByName(p.Resolver); err != nil {
		return err
	}
	if _, err := p.EditorPresets(); err != nil {
		return err
	}
	return nil
}

// EditorPresets converts the preset definitions for the editor.
func (p EnginePrefs) EditorPresets() (editor.Presets, error) {
	dyn, err := p.Presets.Dynamic.preset()
	if err != nil {
		return editor.Presets{}, fmt.Errorf("dynamic preset: %w", err)
	}
	st, err := p.Presets.Static.preset()
	if err != nil {
		return editor.Presets{}, fmt.Errorf("static preset: %w", err)
	}
	return editor.Presets{Dynamic: dyn, Static: st}, nil
}

// PhysicsSystem builds the physics system described by the preferences.
func (p EnginePrefs) PhysicsSystem() (*physics.System, error) {
	r, err := physics.ResolverByName(p.Resolver)
	if err != nil {
		return nil, err
	}
	return &physics.System{Gravity: p.Gravity, Resolver: r}, nil
}

func (d PresetDef) preset() (scene.Preset, error) {
	if d.Mass == 0 {
		return scene.Preset{}, physics.ErrZeroMass
	}
	c, ok := ui.ParseColor(d.Color)
	if !ok {
		return scene.Preset{}, fmt.Errorf("unknown color %q", d.Color)
	}
	return scene.Preset{Width: d.Width, Height: d.Height, Mass: d.Mass, Color: c}, nil
}
