package app

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/atomicstack/dragmenu/internal/logging/events"
	"github.com/atomicstack/dragmenu/internal/menutree"
	"github.com/atomicstack/dragmenu/internal/metrics"
	"github.com/atomicstack/dragmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// ErrSeed marks failures to load the initial arrangement.
var ErrSeed = errors.New("invalid seed")

// Move is one scripted drag of Drag onto Hover.
type Move struct {
	Drag  string
	Hover string
}

func (m Move) String() string {
	return m.Drag + ":" + m.Hover
}

// Config describes user-provided application options.
type Config struct {
	Width       int
	Height      int
	ShowFooter  bool
	Verbose     bool
	SeedPath    string
	MetricsAddr string
	Print       bool
	Moves       []Move
}

// LoadTree returns the arrangement from path, or the built-in seed when path
// is empty.
func LoadTree(path string) (menutree.Tree, error) {
	if path == "" {
		tree := menutree.DefaultSeed()
		events.App.Seed("default", tree.Count())
		return tree, nil
	}
	tree, err := menutree.LoadSeed(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSeed, err)
	}
	events.App.Seed(path, tree.Count())
	return tree, nil
}

// Run bootstraps and executes the Bubble Tea program, serving metrics
// alongside it when an address is configured.
func Run(ctx context.Context, cfg Config) error {
	tree, err := LoadTree(cfg.SeedPath)
	if err != nil {
		return err
	}
	tree = applyMoves(tree, cfg.Moves, nil)

	counters := metrics.New()
	model := ui.NewModel(tree, ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Metrics:    counters,
	})

	var listener net.Listener
	if cfg.MetricsAddr != "" {
		listener, err = net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("metrics listener: %w", err)
		}
		events.App.MetricsListen(listener.Addr().String())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if listener != nil {
		g.Go(func() error {
			return serveMetrics(gctx, listener, counters.Handler())
		})
	}
	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(gctx))
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})
	return g.Wait()
}
