// Package app wires the application's collaborators together once at
// process start. Nothing here is a singleton; the Application is built
// explicitly and passed by reference.
package app

import (
	"github.com/dx-tools/cli/internal/config"
	"github.com/dx-tools/cli/internal/domain"
	"github.com/dx-tools/cli/internal/git"
	"github.com/dx-tools/cli/internal/log"
	"github.com/dx-tools/cli/internal/nav"
	"github.com/dx-tools/cli/internal/paths"
	"github.com/dx-tools/cli/internal/store"
	"github.com/dx-tools/cli/internal/tools"
	"github.com/dx-tools/cli/internal/ui"
	"github.com/dx-tools/cli/internal/ui/style"
)

// Version is the build version, set via -ldflags at release time.
var Version = "dev"

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Style options
	StyleEnabled bool
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	// The logger comes up first so the other collaborators can report
	// their own initialization problems.
	var logger domain.Logger
	fileLogger, err := log.New(paths.LogFilePath(), log.LevelDebug)
	if err != nil {
		logger = log.NopLogger{}
	} else {
		logger = fileLogger
	}

	cfg, err := config.NewManager(config.Options{
		Path:            paths.ConfigFilePath(),
		RemoteCachePath: paths.RemoteCachePath(),
		Logger:          logger.WithPrefix("config"),
	})
	if err != nil {
		return nil, err
	}

	if enabled, ok := cfg.Get("log.enabled"); ok && enabled == "false" && fileLogger != nil {
		fileLogger.SetEnabled(false)
	}

	runStore, err := store.New(paths.DBPath())
	if err != nil {
		return nil, err
	}

	style.Init(opts.StyleEnabled)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(cfg.Get))

	return &domain.Application{
		Config:  cfg,
		Logger:  logger,
		Store:   runStore,
		Output:  ui.NewWriter(writerOpts...),
		Styler:  style.NewStyler(),
		Git:     git.NewProvider(),
		Tools:   tools.NewRunner(),
		Nav:     nav.NewChanger(),
		Version: Version,
	}, nil
}

// NewForTesting creates an Application suitable for tests: silent
// logger, no styling, output discarded by default. Tests that exercise
// the store should swap in one backed by testutil.NewTestDB.
func NewForTesting() *domain.Application {
	cfg, _ := config.NewManager(config.Options{Logger: log.NopLogger{}})

	return &domain.Application{
		Config:  cfg,
		Logger:  log.NopLogger{},
		Store:   store.NewWithDB(nil),
		Output:  ui.NewWriter(ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
		Git:     git.NewProvider(),
		Tools:   tools.NewRunner(),
		Nav:     nav.NewChanger(),
		Version: Version,
	}
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
