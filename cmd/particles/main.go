package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/CTAG07/landingkit/pkg/particles"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Game hosts a particle field in an ebiten window. The field follows the
// window size; particles survive a resize.
type Game struct {
	field      *particles.Field
	count      int
	background color.Color
	logger     *slog.Logger
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.field.Advance()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.field.Render(screenSurface{screen: screen, background: g.background})
}

func (g *Game) Layout(outW, outH int) (int, int) {
	w, h := float64(outW), float64(outH)
	if cw, ch := g.field.Size(); cw != w || ch != h {
		if g.field.Particles == nil {
			g.field.Initialize(g.count, w, h)
			g.logger.Info("Particle field initialized", "count", g.count, "width", outW, "height", outH)
		} else {
			g.field.Resize(w, h)
			g.logger.Debug("Particle field resized", "width", outW, "height", outH)
		}
	}
	return outW, outH
}

type viewerOptions struct {
	configPath string
	dense      bool
	count      int
	width      int
	height     int
	seed       uint64
	background string
	logLevel   string
}

func parseLogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// loadFieldConfig overlays a YAML or JSON file onto base. Fields absent
// from the file keep the base values.
func loadFieldConfig(path string, base particles.Config) (particles.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read field config: %w", err)
	}
	if err = yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("failed to parse field config: %w", err)
	}
	return base, nil
}

func newGame(opts *viewerOptions, logger *slog.Logger) (*Game, error) {
	bg, err := colorful.Hex(opts.background)
	if err != nil {
		return nil, fmt.Errorf("invalid background colour %q: %w", opts.background, err)
	}

	config := particles.DefaultConfig()
	if opts.dense {
		config = particles.DenseConfig()
	}
	if opts.configPath != "" {
		if config, err = loadFieldConfig(opts.configPath, config); err != nil {
			return nil, err
		}
	}
	count := config.Count
	if opts.count > 0 {
		count = opts.count
	}

	var rng *rand.Rand
	if opts.seed != 0 {
		rng = rand.New(rand.NewPCG(opts.seed, opts.seed))
	}

	r, g, b := bg.RGB255()
	return &Game{
		field:      particles.New(config, rng),
		count:      count,
		background: color.RGBA{R: r, G: g, B: b, A: 0xff},
		logger:     logger,
	}, nil
}

func newRootCmd() *cobra.Command {
	opts := &viewerOptions{}
	cmd := &cobra.Command{
		Use:           "particles",
		Short:         "Preview the landing page particle background",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLogLevel(opts.logLevel)}))
			game, err := newGame(opts, logger)
			if err != nil {
				return err
			}
			ebiten.SetWindowSize(opts.width, opts.height)
			ebiten.SetWindowTitle("Particle Network")
			ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
			return ebiten.RunGame(game)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML or JSON file overriding the field settings")
	flags.BoolVar(&opts.dense, "dense", false, "use the denser, faster variant")
	flags.IntVar(&opts.count, "count", 0, "particle count (0 keeps the variant default)")
	flags.IntVar(&opts.width, "width", 1280, "initial window width")
	flags.IntVar(&opts.height, "height", 720, "initial window height")
	flags.Uint64Var(&opts.seed, "seed", 0, "seed for a reproducible layout (0 picks a random seed)")
	flags.StringVar(&opts.background, "background", "#0f172a", "background colour as #rrggbb")
	flags.StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("particles failed", "error", err)
		os.Exit(1)
	}
}
