package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/wordnest/internal/catalog"
	"github.com/abhisek/wordnest/internal/config"
	"github.com/abhisek/wordnest/internal/logger"
	"github.com/abhisek/wordnest/internal/progress"
	"github.com/abhisek/wordnest/internal/store"
)

// app bundles the dependencies a command needs.
type app struct {
	cfg      *config.Config
	store    *store.Store
	catalog  *catalog.Catalog
	progress *progress.Service
}

// openApp loads configuration, opens the store and restores the learner's
// progress. Callers must Close the returned app.
func openApp(cmd *cobra.Command) (*app, error) {
	ctx := cmd.Context()

	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}

	log, err := logger.Setup(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("set up logging: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}

	ladder, err := cfg.Learning.ParsedLadder()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Learning.Location()
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	category := cfg.Learning.DefaultCategory
	if category == "" {
		category = cat.First()
	}

	svc := progress.NewService(st.SnapshotRepo(), progress.Config{
		Profile:         cfg.Storage.Profile,
		Ladder:          ladder,
		DailyGoal:       cfg.Learning.DailyGoal,
		DefaultCategory: category,
		Location:        loc,
		Keep:            cfg.Storage.Keep,
		Logger:          log,
		OnStoreError: func(err error) {
			warnf(cmd, "progress store: %v", err)
		},
	})
	if _, err := svc.Load(ctx); err != nil {
		st.Close()
		return nil, err
	}

	return &app{cfg: cfg, store: st, catalog: cat, progress: svc}, nil
}

// Close releases the store.
func (a *app) Close() error {
	return a.store.Close()
}

// applyFlagOverrides lets persistent flags take precedence over config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.Catalog.Path = v
	}
	if v, _ := cmd.Flags().GetString("profile"); v != "" {
		cfg.Storage.Profile = v
	}
	return config.Validate(cfg)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then WORDNEST_DB env var or the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := cfg.Storage.DBPath; p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

var warnColor = color.New(color.FgYellow)

// warnf prints a non-fatal warning to the command's error stream.
func warnf(cmd *cobra.Command, format string, args ...any) {
	warnColor.Fprintf(cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
}
