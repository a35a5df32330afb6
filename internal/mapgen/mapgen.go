// Package mapgen generates starting terrain for the editor: a row of static blocks
// whose heights follow fractal value noise.
package mapgen

import (
	"fmt"
	"image/color"
	"time"

	"github.com/chewxy/math32"

	"rect-editor/internal/physics"
	"rect-editor/internal/scene"
	"rect-editor/internal/vector"
)

// GroundOptions controls ground generation.
// Columns is the number of blocks; each block is BlockWidth wide and the row starts at StartX.
// Every block's bottom edge sits on BaseY (screen y grows downward).
// HeightScale is the tallest block height in world units.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type GroundOptions struct {
	Columns     int
	BlockWidth  uint32
	StartX      int32
	BaseY       int32
	HeightScale float32
	Mass        uint32
	Color       color.RGBA

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultGroundOptions returns a ground strip spanning the default 800px window.
func DefaultGroundOptions() GroundOptions {
	return GroundOptions{
		Columns:     20,
		BlockWidth:  40,
		StartX:      0,
		BaseY:       600,
		HeightScale: 120,
		Mass:        physics.DefaultMass,
		Color:       color.RGBA{R: 96, G: 72, B: 48, A: 255},
		Seed:        0,
		Octaves:     4,
		Frequency:   0.15,
		Lacunarity:  2.0,
		Gain:        0.5,
	}
}

// Placement is one block to add to a scene as a static entity.
type Placement struct {
	Position vector.Vec2[int32]
	Preset   scene.Preset
}

const minHeight = 8

// Ground builds the block row described by opts. Blocks are returned left to right.
func Ground(opts GroundOptions) []Placement {
	if opts.Columns <= 0 {
		return nil
	}
	if opts.BlockWidth == 0 {
		opts.BlockWidth = 1
	}
	if opts.HeightScale < minHeight {
		opts.HeightScale = minHeight
	}
	if opts.Mass == 0 {
		opts.Mass = physics.DefaultMass
	}
	if opts.Octaves <= 0 {
		opts.Octaves = 1
	}
	if opts.Frequency <= 0 {
		opts.Frequency = 0.05
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = 2.0
	}
	if opts.Gain <= 0 {
		opts.Gain = 0.5
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	out := make([]Placement, 0, opts.Columns)
	for i := 0; i < opts.Columns; i++ {
		h := fractalValueNoise1D(float32(i)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
		height := minHeight + h*(opts.HeightScale-minHeight)
		if !isFinite(height) || height < minHeight {
			height = minHeight
		}
		hu := uint32(math32.Round(height))
		out = append(out, Placement{
			Position: vector.New(opts.StartX+int32(i)*int32(opts.BlockWidth), opts.BaseY-int32(hu)),
			Preset: scene.Preset{
				Width:  opts.BlockWidth,
				Height: hu,
				Mass:   opts.Mass,
				Color:  opts.Color,
			},
		})
	}
	return out
}

// Apply adds each placement to s as a static entity, in order.
func Apply(s *scene.Scene, placements []Placement) error {
	for i, p := range placements {
		if _, err := s.Place(physics.Static, p.Position, p.Preset); err != nil {
			return fmt.Errorf("mapgen: block %d: %w", i, err)
		}
	}
	return nil
}

// fractalValueNoise1D layers smooth value noise with configurable octaves, lacunarity,
// and gain. Output is in [0,1].
func fractalValueNoise1D(x float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32 = 0
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := valueNoise1D(x*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// valueNoise1D is smooth value noise in [0,1] over an integer lattice.
func valueNoise1D(x float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	t := x - float32(x0)
	return lerp(hash1D(x0, seed), hash1D(x0+1, seed), smoothStep(t))
}

// hash1D maps a lattice coordinate to a deterministic pseudo-random float in [0,1].
func hash1D(x, seed int32) float32 {
	n := x*374761393 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// smoothStep is cubic easing: 3t^2 - 2t^3.
func smoothStep(t float32) float32 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
