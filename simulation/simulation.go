// Package simulation plays batches of independent games in parallel.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/luca-patrignani/razzia/agent"
	"github.com/luca-patrignani/razzia/application"
	"github.com/luca-patrignani/razzia/domain/scoring"
	"github.com/luca-patrignani/razzia/random"
)

// Namespace keys the game IDs: a game ID is derived from the seed of the
// game, so replaying a seed yields the same ID.
var Namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://boardgamegeek.com/boardgame/12589/razzia"))

var ErrInvalidBatch = errors.New("invalid batch")

type Config struct {
	Players  int
	Games    int
	Workers  int
	Seed     uint64
	Strategy string
	Rules    application.Rules
	Logger   *slog.Logger
}

// Result is the outcome of one game. Err is set when the game aborted, in
// which case there are no records.
type Result struct {
	Index       int
	ID          uuid.UUID
	Seed        uint64
	Records     map[string]*scoring.Record
	Summaries   []application.RoundSummary
	Fingerprint string
	Err         error
}

// GameID returns the ID of the game played with seed.
func GameID(seed uint64) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(strconv.FormatUint(seed, 10)))
}

// Play runs a single game with its own generator.
func Play(cfg Config, index int) Result {
	seed := random.Derive(cfg.Seed, index)
	res := Result{Index: index, Seed: seed, ID: GameID(seed)}
	rng := random.New(seed)

	deciders, err := agent.Table(cfg.Strategy, cfg.Players, rng)
	if err != nil {
		res.Err = err
		return res
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g, err := application.NewGameOrchestrator(deciders, rng,
		application.WithLogger(logger.With("game", res.ID.String())),
		application.WithRules(cfg.Rules),
		application.WithGameID(res.ID.String()),
	)
	if err != nil {
		res.Err = err
		return res
	}
	res.Records, res.Err = g.PlayGame()
	res.Summaries = g.Summaries()
	res.Fingerprint = g.Fingerprint()
	return res
}

// Run plays cfg.Games games on at most cfg.Workers goroutines. Game i is
// played with seed random.Derive(cfg.Seed, i), so results do not depend on
// scheduling. A game that aborts is reported in its Result; Run itself only
// fails on an invalid batch or a cancelled context.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Games < 1 || cfg.Workers < 1 {
		return nil, fmt.Errorf("%w: %d games on %d workers", ErrInvalidBatch, cfg.Games, cfg.Workers)
	}
	if cfg.Rules == (application.Rules{}) {
		cfg.Rules = application.DefaultRules()
	}
	if _, err := agent.Seat(cfg.Strategy, 0, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBatch, err)
	}

	results := make([]Result, cfg.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Games {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = Play(cfg, i)
			if err := results[i].Err; err != nil && cfg.Logger != nil {
				cfg.Logger.Warn("game aborted", "game", results[i].ID.String(), "seed", results[i].Seed, "error", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
