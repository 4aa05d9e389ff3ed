package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/xolan/clocksheet/internal/config"
	"github.com/xolan/clocksheet/internal/service"
	"github.com/xolan/clocksheet/internal/sheet"
	"github.com/xolan/clocksheet/internal/tui"
)

// Deps contains all dependencies for CLI operations
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	Services *service.Services
	Config   config.Config
	Logger   *slog.Logger

	// IsTerminal reports whether Stdout is an interactive terminal
	IsTerminal func() bool
	// View opens the interactive report viewer
	View func(ctx context.Context, src tui.Source, opts tui.Options) error
}

// Options are the global command line settings
type Options struct {
	ConfigPath string
	Verbose    bool
	// Offline skips opening the workbook backend; commands that only touch
	// the configuration set it
	Offline bool
}

// Load reads the configuration, sets up logging and opens the workbook
func Load(ctx context.Context, opts Options) (*Deps, error) {
	path := opts.ConfigPath
	if path == "" {
		var err error
		path, err = config.GetConfigPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	logger := NewLogger(os.Stderr, cfg.LogLevel, opts.Verbose)
	var services *service.Services
	if opts.Offline {
		services, err = service.NewServicesWith(cfg, path, sheet.NewMemory(), "", service.NewAPI(cfg, logger), logger)
	} else {
		services, err = service.NewServices(ctx, cfg, path, logger)
	}
	if err != nil {
		return nil, err
	}
	return NewDeps(services, cfg, logger), nil
}

// NewDeps creates a new Deps with the given services writing to the
// process's standard streams
func NewDeps(services *service.Services, cfg config.Config, logger *slog.Logger) *Deps {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Stdin:      os.Stdin,
		Exit:       os.Exit,
		Services:   services,
		Config:     cfg,
		Logger:     logger,
		IsTerminal: StdoutIsTerminal,
		View:       tui.Run,
	}
}

// StdoutIsTerminal reports whether os.Stdout is attached to a terminal
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
