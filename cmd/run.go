package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathheroes/internal/app"
	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/config"
	"github.com/abhisek/mathheroes/internal/game"
	"github.com/abhisek/mathheroes/internal/logging"
	"github.com/abhisek/mathheroes/internal/store"
)

var errLearnerRequired = errors.New("--learner is required")

// runtime is everything a command needs once configuration is resolved.
type runtime struct {
	cfg      config.Config
	store    *store.Store
	logger   *log.Logger
	services *game.Services
	closers  []func() error
}

func (r *runtime) Close() {
	for i := len(r.closers) - 1; i >= 0; i-- {
		_ = r.closers[i]()
	}
}

// openRuntime loads config from the environment, applies the --db flag,
// and opens the log file and the store.
func openRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if err := cfg.Resolve(); err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	rt.logger = logger
	rt.closers = append(rt.closers, closeLog)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	rt.store = st
	rt.closers = append(rt.closers, st.Close)

	rt.services = game.NewServices(catalog.Default(), st, logger, cfg.Seed)
	logger.Debug("runtime ready", "db", cfg.DBPath, "seed", cfg.Seed)
	return rt, nil
}

// runApp opens the runtime and launches the TUI.
func runApp(cmd *cobra.Command, learner string) error {
	rt, err := openRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	rt.logger.Info("starting", "version", version, "learner", learner)
	return app.Run(rt.services, learner)
}
