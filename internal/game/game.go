// Package game wires the long-lived services to a logged-in learner.
package game

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/abhisek/mathheroes/internal/catalog"
	"github.com/abhisek/mathheroes/internal/engine"
	"github.com/abhisek/mathheroes/internal/logging"
	"github.com/abhisek/mathheroes/internal/problemgen"
	"github.com/abhisek/mathheroes/internal/progress"
	"github.com/abhisek/mathheroes/internal/store"
)

// Services are shared by every learner for the life of the process.
type Services struct {
	Catalog  *catalog.Catalog
	Progress *progress.Service
	History  store.RoundEventRepo
	Logger   *log.Logger

	// Seed fixes the question sequence when non-zero.
	Seed int64
}

// NewServices builds Services over an open store.
func NewServices(cat *catalog.Catalog, st *store.Store, logger *log.Logger, seed int64) *Services {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Services{
		Catalog:  cat,
		Progress: progress.NewService(cat, st.ProgressRepo()),
		History:  st.RoundEventRepo(),
		Logger:   logger,
		Seed:     seed,
	}
}

// Player is a logged-in learner with their own round engine.
type Player struct {
	Services *Services
	Engine   *engine.Controller
	Events   *engine.EventLog
}

// Login loads (or creates) the learner's progress and builds their engine.
func (s *Services) Login(ctx context.Context, name string) (*Player, error) {
	p, err := s.Progress.LoadOrCreate(ctx, name)
	if err != nil {
		return nil, err
	}

	var source problemgen.Source
	if s.Seed != 0 {
		source = problemgen.New(s.Seed)
	} else {
		g, err := problemgen.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("seed question generator: %w", err)
		}
		source = g
	}

	events := &engine.EventLog{}
	opts := []engine.Option{engine.WithLogger(s.Logger)}
	if s.History != nil {
		opts = append(opts, engine.WithRecorder(s.History))
	}
	ctrl := engine.New(s.Catalog, s.Progress, p, source, events, opts...)

	s.Logger.Info("learner logged in", "learner", p.LearnerID, "levels", len(p.UnlockedLevels), "heroes", len(p.UnlockedRewards))
	return &Player{Services: s, Engine: ctrl, Events: events}, nil
}

// Name returns the learner id.
func (p *Player) Name() string { return p.Engine.Player().LearnerID }

// Progress returns the learner's live progress.
func (p *Player) Progress() *progress.PlayerProgress { return p.Engine.Player() }

// HeroCount returns how many heroes the learner has unlocked.
func (p *Player) HeroCount() int {
	n := 0
	for _, h := range p.Services.Catalog.Heroes() {
		if p.Progress().IsRewardUnlocked(h.ID) {
			n++
		}
	}
	return n
}

// Logout saves the learner's progress one last time.
func (p *Player) Logout(ctx context.Context) error {
	if err := p.Services.Progress.Save(ctx, p.Progress()); err != nil {
		return err
	}
	p.Services.Logger.Info("learner logged out", "learner", p.Name())
	return nil
}
