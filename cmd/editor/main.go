package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"rect-editor/internal/debug"
	"rect-editor/internal/editor"
	"rect-editor/internal/engineconfig"
	"rect-editor/internal/game"
	"rect-editor/internal/graphics"
	"rect-editor/internal/logger"
	"rect-editor/internal/loop"
	"rect-editor/internal/mapgen"
)

var (
	configFlag     = flag.String("config", engineconfig.EngineConfigPath, "path to the YAML preferences file")
	groundSeedFlag = flag.Int64("ground-seed", 0, "pre-populate the editor with generated ground from this seed (0 = none)")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "rect-editor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	prefs, cfgErr := engineconfig.Load(*configFlag)
	log := logger.New(prefs.LogPath)
	if cfgErr != nil {
		log.Logf("config: %v", cfgErr)
		return cfgErr
	}

	presets, err := prefs.EditorPresets()
	if err != nil {
		return err
	}
	sys, err := prefs.PhysicsSystem()
	if err != nil {
		return err
	}

	ed := editor.New(presets, log)
	if *groundSeedFlag != 0 {
		opts := mapgen.DefaultGroundOptions()
		opts.Seed = *groundSeedFlag
		opts.BlockWidth = uint32(prefs.Window.Width) / uint32(opts.Columns)
		opts.BaseY = prefs.Window.Height
		if err := mapgen.Apply(ed.Scene(), mapgen.Ground(opts)); err != nil {
			return err
		}
		log.Logf("editor: generated ground from seed %d", opts.Seed)
	}
	l := loop.New(ed, game.New(sys, log), log)

	dbg := debug.New(log)
	dbg.ShowFPS = prefs.ShowFPS
	dbg.ShowLog = prefs.ShowFPS
	win := graphics.Open(graphics.Options{
		Width:     prefs.Window.Width,
		Height:    prefs.Window.Height,
		Title:     prefs.Window.Title,
		TargetFPS: prefs.TargetFPS,
	}, dbg)
	defer win.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Log("editor: started")
	if err := l.Run(ctx, win, win, loop.SystemClock{}); err != nil && !errors.Is(err, context.Canceled) {
		log.Logf("editor: %v", err)
		return err
	}
	log.Log("editor: stopped")
	return nil
}
