// Package cli implements the sharectl command tree: normalizing shares from
// the terminal and managing the share log.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/clipboard"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/notes"
	"github.com/JAKimball/poc-pwa-share-target/internal/adapters/storage"
	"github.com/JAKimball/poc-pwa-share-target/internal/app"
	"github.com/JAKimball/poc-pwa-share-target/internal/domain"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/config"
	"github.com/JAKimball/poc-pwa-share-target/internal/platform/logging"
	"github.com/JAKimball/poc-pwa-share-target/internal/ports"
)

// Options replaces the CLI's external dependencies. Zero values select the
// real ones.
type Options struct {
	// Store is used instead of the configured share log. It is not closed.
	Store storage.Store

	Clipboard ports.Clipboard

	// Launch opens a URI in the notes app.
	Launch func(ctx context.Context, uri string) error

	Clock func() time.Time

	// LogOutput receives diagnostic logs. Defaults to stderr.
	LogOutput io.Writer
}

// environment is the state shared by all commands, built before any of
// them runs.
type environment struct {
	opts Options

	configDir string
	profile   string
	verbose   bool

	cfg       *config.Config
	logger    *slog.Logger
	service   *app.ShareService
	store     storage.Store
	ownsStore bool
}

// Execute runs sharectl with os.Args.
func Execute(ctx context.Context, opts Options) error {
	root, env := newRootCmd(opts)
	defer env.close()

	return root.ExecuteContext(ctx)
}

// NewRootCmd builds the sharectl root command.
func NewRootCmd(opts Options) *cobra.Command {
	root, _ := newRootCmd(opts)
	return root
}

func newRootCmd(opts Options) (*cobra.Command, *environment) {
	env := &environment{opts: opts}

	root := &cobra.Command{
		Use:               "sharectl",
		Short:             "Turn shared titles and links into markdown and manage the share log",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return env.setup(cmd.Context()) },
		RunE:              func(cmd *cobra.Command, _ []string) error { return cmd.Help() },
	}

	root.PersistentFlags().StringVar(&env.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVar(&env.profile, "profile", os.Getenv("APP_ENVIRONMENT"), "config profile to load on top of base.yaml")
	root.PersistentFlags().BoolVarP(&env.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newNormalizeCmd(env),
		newLogCmd(env),
		newOpenCmd(env),
	)

	return root, env
}

func (e *environment) setup(ctx context.Context) error {
	cfg, err := config.LoadFrom(e.configDir, e.profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	level := "warn"
	if e.verbose {
		level = "debug"
	}

	logOutput := e.opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stderr
	}

	logger := logging.NewWithWriter(&logging.Config{
		Level:   level,
		Format:  "pretty",
		Service: cfg.App.Name,
		Version: cfg.App.Version,
	}, logOutput)

	store := e.opts.Store
	if store == nil {
		store, err = storage.Open(ctx, storage.Config{
			Driver:   cfg.Store.Driver,
			Path:     cfg.Store.Path,
			Capacity: cfg.Store.Capacity,
		})
		if err != nil {
			return fmt.Errorf("opening share log: %w", err)
		}

		e.ownsStore = true
	}

	e.cfg = cfg
	e.logger = logger
	e.store = store
	e.service = app.NewShareService(app.ShareServiceConfig{
		Normalizer: domain.NewNormalizer(cfg.Share.StripSuffixes...),
		Store:      store,
		Notes:      notes.NewObsidian(cfg.Notes.Vault),
		Logger:     logger,
		Clock:      e.opts.Clock,
	})

	return nil
}

func (e *environment) close() {
	if !e.ownsStore || e.store == nil {
		return
	}

	if err := e.store.Close(); err != nil {
		e.logger.Error("share log close error", slog.Any("error", err))
	}
}

func (e *environment) clipboard() ports.Clipboard {
	if e.opts.Clipboard != nil {
		return e.opts.Clipboard
	}

	return clipboard.New()
}

func (e *environment) launch(ctx context.Context, uri string) error {
	if e.opts.Launch != nil {
		return e.opts.Launch(ctx, uri)
	}

	return notes.Launch(ctx, uri)
}
