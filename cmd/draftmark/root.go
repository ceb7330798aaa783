package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/draftmark/config"
	"github.com/iw2rmb/draftmark/internal/logging"
	"github.com/iw2rmb/draftmark/persist"
	"github.com/iw2rmb/draftmark/storage"
	"github.com/iw2rmb/draftmark/storage/sqlite"
)

type rootFlags struct {
	configPath string
	dbPath     string
	key        string
	logLevel   string
	noAutosave bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "draftmark",
		Short: "Terminal rich-text editor with markdown-style shortcuts",
		Long: `draftmark edits a single rich-text document in the terminal.

Shortcuts, typed at the start of a paragraph and followed by a space:
  #    - Heading
  *    - Bold
  **   - Red text
  ***  - Underline

Enter after a heading starts a normal paragraph. The document is saved
automatically; ctrl+s saves explicitly.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEdit(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/draftmark/config.toml)")
	pf.StringVar(&f.dbPath, "db", "", "database path (\":memory:\" for a throwaway session)")
	pf.StringVar(&f.key, "key", "", "storage key of the document")
	pf.StringVar(&f.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.noAutosave, "no-autosave", false, "only save on ctrl+s")

	cmd.AddCommand(
		newEditCmd(f),
		newExportCmd(f),
		newClearCmd(f),
		newVersionCmd(),
	)
	return cmd
}

// runtime holds the resources shared by subcommands.
type runtime struct {
	cfg       config.Config
	log       *slog.Logger
	logOut    io.Writer
	store     storage.Store
	persister *persist.Persister

	closers []func() error
}

func openRuntime(cmd *cobra.Command, f *rootFlags) (*runtime, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}

	w, closeLog, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	rt.closers = append(rt.closers, closeLog)
	rt.logOut = w
	rt.log = logging.New(cfg.LogLevel, cfg.LogFormat, w)

	store, err := sqlite.NewStore(cfg.DBPath)
	if err != nil {
		_ = rt.Close()
		return nil, fmt.Errorf("opening store: %w", err)
	}
	rt.store = store
	rt.closers = append(rt.closers, store.Close)
	rt.log.Debug("store opened", "db_path", cfg.DBPath)

	rt.persister = &persist.Persister{
		Store:       store,
		Key:         cfg.StorageKey,
		Logger:      rt.log,
		Diagnostics: w,
	}
	return rt, nil
}

func applyFlags(cmd *cobra.Command, f *rootFlags, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.DBPath = f.dbPath
	}
	if flags.Changed("key") {
		cfg.StorageKey = f.key
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.noAutosave {
		cfg.Autosave = false
	}
}

// Close releases resources in reverse order of acquisition.
func (rt *runtime) Close() error {
	var errs []error
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	rt.closers = nil
	return errors.Join(errs...)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
