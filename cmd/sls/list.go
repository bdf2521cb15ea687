package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/michaelscutari/sls/internal/config"
	"github.com/michaelscutari/sls/internal/filter"
	"github.com/michaelscutari/sls/internal/render"
	"github.com/michaelscutari/sls/internal/scan"
	"github.com/michaelscutari/sls/internal/tui"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	tea "github.com/charmbracelet/bubbletea"
)

// errInterrupted reports a walk cut short by SIGINT or SIGTERM.
var errInterrupted = errors.New("interrupted")

func runList(ctx context.Context, cfg *config.Config, root string, stdout, stderr io.Writer) error {
	logger := newLogger(cfg.Verbose, stderr)
	defer logger.Sync()

	// A malformed --modified aborts here, before anything is walked.
	fcfg, err := filter.NewBuilder(logger).
		WithExtension(cfg.Ext).
		WithMinSize(cfg.MinSize).
		WithMaxSize(cfg.MaxSize).
		WithHidden(cfg.Hidden).
		WithModified(cfg.Modified).
		WithInclude(cfg.Include).
		WithExclude(cfg.Exclude).
		WithMaxDepth(cfg.Depth).
		Build()
	if err != nil {
		return err
	}

	walker := scan.NewWalker(fcfg, logger)
	records, err := walker.Walk(ctx, root)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "Listing canceled.")
			return errInterrupted
		}
		return fmt.Errorf("walk failed: %w", err)
	}

	stats := walker.Stats()
	logger.Debug("Walk complete",
		zap.String("root", root),
		zap.Int64("visited", stats.Visited),
		zap.Int64("matched", stats.Matched),
		zap.Int64("skipped", stats.Skipped),
		zap.Int64("dir_errors", stats.DirErrs),
	)

	switch {
	case cfg.JSON:
		return render.JSON(stdout, records)

	case cfg.Interactive:
		p := tea.NewProgram(tui.NewModel(root, records),
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithOutput(stdout),
		)
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil

	default:
		return render.Text(stdout, records, render.TextOptions{
			Styles: render.NewStyles(newRenderer(stdout, cfg.Color)),
			Human:  cfg.Human,
		})
	}
}

// newRenderer picks the colour profile for text output.
func newRenderer(w io.Writer, mode string) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		if r.ColorProfile() == termenv.Ascii {
			r.SetColorProfile(termenv.ANSI256)
		}
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	default:
		if !isTerminal(w) {
			r.SetColorProfile(termenv.Ascii)
		}
	}
	return r
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
