package main

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"tv-gallery/internal/config"
	"tv-gallery/internal/debug"
	"tv-gallery/internal/export"
	"tv-gallery/internal/graphics"
	"tv-gallery/internal/input"
	"tv-gallery/internal/layout"
	"tv-gallery/internal/nav"
	"tv-gallery/internal/prefs"
	"tv-gallery/internal/room"
	"tv-gallery/internal/scene"
	"tv-gallery/internal/tv"
)

// run builds the gallery layout and either exports it or opens the viewer.
func run(logger *log.Logger, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	r := room.Room{
		Width:     cfg.Room.Width,
		Depth:     cfg.Room.Depth,
		Height:    cfg.Room.Height,
		WallInset: cfg.Room.WallInset,
	}
	factory := tv.NewFactory(cfg.Video.FrameCount, cfg.Video.FrameRate, cfg.Video.Resolution)

	logger.Debug("building layout", "seed", seed, "room", cfg.Room)
	placed := layout.Build(r, factory, layout.Options{
		PerWallTarget:   cfg.Layout.PerWallTarget,
		AttemptsPerWall: cfg.Layout.AttemptsPerWall,
		SampleRetries:   cfg.Layout.SampleRetries,
		StaggerStep:     cfg.Layout.StaggerStep,
	}, rng, logger)
	logger.Info("gallery hung", "seed", seed, "exhibits", len(placed))

	if opts.exportPath != "" {
		if err := export.Write(opts.exportPath, r, placed); err != nil {
			return err
		}
		logger.Info("layout exported", "path", opts.exportPath)
		return nil
	}

	p, _ := prefs.Load()
	p.LastSeed = seed
	p.Windowed = opts.windowed
	if err := prefs.Save(p); err != nil {
		logger.Warn("could not save prefs", "err", err)
	}

	machine := input.NewMachine()
	adapter := input.NewAdapter(machine)
	defer adapter.Close()

	ctrl := nav.New(nav.Config{
		Acceleration: cfg.Nav.Acceleration,
		MaxSpeed:     cfg.Nav.MaxSpeed,
		Friction:     cfg.Nav.Friction,
		Sensitivity:  cfg.Nav.Sensitivity,
	}, machine, [3]float32{0, cfg.Nav.EyeHeight, 0}, r.NavBounds())

	scn := scene.New(r, placed, cfg.Nav.EyeHeight)
	overlay := debug.New()
	overlay.ShowFPS = p.ShowFPS
	overlay.ShowMemAlloc = p.ShowMemAlloc
	overlay.ShowStatus = opts.verbose

	update := func() {
		adapter.Poll()
		ctrl.Tick()
		scn.Sync(ctrl.Position(), ctrl.LookDir())
		scn.Update(graphics.TickSeconds)
		overlay.SetStatus(len(placed), machine.Captured())
	}
	draw := func() {
		scn.Draw()
		overlay.Draw()
	}
	graphics.Run("tv gallery", opts.windowed, update, draw)

	// Window closed: release every screen loop before the GL context goes away.
	for _, pl := range placed {
		if pl.Spec.Payload != nil {
			pl.Spec.Payload.Deactivate()
		}
	}
	return nil
}
