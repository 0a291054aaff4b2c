package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lmittmann/tint"

	"github.com/zohnannor/mandelbrot-explorer/internal/config"
	"github.com/zohnannor/mandelbrot-explorer/internal/input"
	"github.com/zohnannor/mandelbrot-explorer/internal/render"
	"github.com/zohnannor/mandelbrot-explorer/internal/view"
)

// Game wires the session view, the input pipeline and the GPU evaluator into
// ebiten's run loop. One instance owns all mutable state; everything runs on
// the update thread, so no locking is needed anywhere.
type Game struct {
	view      *view.View
	poller    *input.Poller
	reducer   *input.Reducer
	evaluator *render.Evaluator
	log       *slog.Logger

	// Render size cached by Layout; WindowSize lies in fullscreen.
	width, height int
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, ev := range g.poller.Poll(float64(g.width), float64(g.height)) {
		switch g.reducer.Apply(ev) {
		case input.SyncNow:
			g.sync()
		case input.ToggleFullscreen:
			ebiten.SetFullscreen(g.view.Fullscreen())
		}
	}

	g.sync()
	return nil
}

// sync is the per-frame synchronization pass: fold the pan velocity into the
// offset, stamp time and resolution, hand the packed block to the evaluator,
// and refresh the title line. It runs strictly before the draw.
func (g *Game) sync() {
	block := g.view.Advance(float64(g.width), float64(g.height))
	if err := g.evaluator.Upload(block.Bytes()); err != nil {
		// Not fatal: the evaluator keeps the previous frame's parameters.
		g.log.Error("parameter upload failed, skipping frame", "err", err)
		return
	}
	ebiten.SetWindowTitle(g.view.Status())
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.evaluator.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 1:1 pixel mapping: the logical screen is the window, so the shader
	// evaluates exactly one sample per window pixel.
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	width := flag.Int("width", 0, "Window width in pixels")
	height := flag.Int("height", 0, "Window height in pixels")
	iterations := flag.Uint("iterations", 0, "Starting iteration budget")
	vsync := flag.Bool("vsync", true, "Sync drawing to the display refresh rate")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	flag.Parse()

	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("failed to load config", "err", err)
			os.Exit(1)
		}
	}

	// Flags set on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "iterations":
			cfg.Iterations = uint32(*iterations)
		case "vsync":
			cfg.VSync = *vsync
		case "fullscreen":
			cfg.Fullscreen = *fullscreen
		}
	})

	evaluator, err := render.NewEvaluator()
	if err != nil {
		logger.Error("failed to initialize the evaluator", "err", err)
		os.Exit(1)
	}

	v := view.NewView()
	v.SetIterations(cfg.Iterations)
	if cfg.Fullscreen {
		v.ToggleFullscreen()
	}

	game := &Game{
		view:      v,
		poller:    input.NewPoller(),
		reducer:   input.NewReducer(v),
		evaluator: evaluator,
		log:       logger,
		width:     cfg.Width,
		height:    cfg.Height,
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Mandelbrot")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetFullscreen(v.Fullscreen())

	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "iterations", cfg.Iterations)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run failed", "err", err)
		os.Exit(1)
	}
}
