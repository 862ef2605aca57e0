// Package application runs games of Razzia!: it owns every piece of mutable
// game state and drives it through rounds, turns and auctions, asking the
// deciders of the seated players for every decision.
package application

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"github.com/luca-patrignani/razzia/domain/board"
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
	"github.com/luca-patrignani/razzia/domain/deck"
	"github.com/luca-patrignani/razzia/domain/ledger"
	"github.com/luca-patrignani/razzia/domain/scoring"
	"github.com/luca-patrignani/razzia/domain/turn"
	"github.com/luca-patrignani/razzia/journal"
)

var (
	ErrUnsupportedPlayerCount = catalog.ErrUnsupportedPlayerCount
	ErrCardConservation       = errors.New("card conservation violated")
	ErrChequeConservation     = errors.New("cheque conservation violated")
	ErrGameEnded              = errors.New("game has already ended")
	ErrInvalidDecider         = errors.New("invalid decider")
	ErrInvalidRules           = errors.New("invalid rules")
)

// GameOrchestrator plays a single game. It is not safe for concurrent use;
// run independent games on independent orchestrators.
type GameOrchestrator struct {
	rules   Rules
	logger  *slog.Logger
	journal *journal.Journal
	gameID  string

	players  []*ledger.Ledger
	deciders map[*ledger.Ledger]decision.Decider
	order    *turn.Order[*ledger.Ledger]
	deck     *deck.Deck
	board    *board.Board
	// supply counts the cards of an injected deck; scripted is false when the
	// full catalog is in play.
	supply   int
	scripted bool

	round     int
	summaries []RoundSummary
	ended     bool
}

type Option func(*GameOrchestrator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *GameOrchestrator) {
		if l != nil {
			g.logger = l
		}
	}
}

func WithRules(r Rules) Option {
	return func(g *GameOrchestrator) { g.rules = r }
}

// WithDeck replaces the shuffled deck, which makes draws fully scripted.
func WithDeck(d *deck.Deck) Option {
	return func(g *GameOrchestrator) { g.deck = d }
}

// WithGameID names the game in the journal genesis event.
func WithGameID(id string) Option {
	return func(g *GameOrchestrator) { g.gameID = id }
}

// NewGameOrchestrator seats the deciders in the given order; seat i receives
// the i-th starting cheque set. The deck is shuffled with rng unless a deck is
// injected with WithDeck.
func NewGameOrchestrator(deciders []decision.Decider, rng *rand.Rand, opts ...Option) (*GameOrchestrator, error) {
	g := &GameOrchestrator{
		rules:    DefaultRules(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		deciders: make(map[*ledger.Ledger]decision.Decider, len(deciders)),
		round:    1,
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.rules.validate(); err != nil {
		return nil, err
	}

	cheques, err := catalog.StartingCheques(len(deciders))
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(deciders))
	for i, d := range deciders {
		if d == nil {
			return nil, fmt.Errorf("%w: seat %d is nil", ErrInvalidDecider, i)
		}
		if names[d.Name()] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidDecider, d.Name())
		}
		names[d.Name()] = true
		p := ledger.New(d.Name(), cheques[i])
		g.players = append(g.players, p)
		g.deciders[p] = d
	}
	g.order = turn.NewOrder(g.players, func(a, b *ledger.Ledger) bool { return a == b })

	if g.deck != nil {
		g.supply, g.scripted = g.deck.Size(), true
	} else {
		if rng == nil {
			return nil, errors.New("a random generator is required to shuffle the deck")
		}
		g.deck = deck.NewDeck(rng)
	}
	g.board = board.NewBoard(catalog.StartingCheque)
	g.journal = journal.New(map[string]string{
		"game":    g.gameID,
		"players": strconv.Itoa(len(g.players)),
		"deck":    strconv.Itoa(g.deck.Size()),
	})
	return g, nil
}

// PlayGame plays every round, scores the game and returns the records by
// player name. Any protocol fault or broken invariant aborts the game.
func (g *GameOrchestrator) PlayGame() (map[string]*scoring.Record, error) {
	if g.ended {
		return nil, ErrGameEnded
	}
	g.ended = true
	g.logger.Info("starting game", "game", g.gameID, "players", len(g.players), "deck", g.deck.Size())

	for g.round = 1; g.round <= g.rules.Rounds; g.round++ {
		summary, err := g.playRound()
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", g.round, err)
		}
		if err := g.scoreRound(&summary); err != nil {
			return nil, err
		}
		g.summaries = append(g.summaries, summary)
		g.logger.Info("round ended", "round", g.round, "reason", summary.Reason.String(), "deck", summary.DeckLeft)
	}
	g.round = g.rules.Rounds

	if err := g.scoreGameEnd(); err != nil {
		return nil, err
	}
	if err := g.checkConservation(); err != nil {
		return nil, err
	}

	records := make(map[string]*scoring.Record, len(g.players))
	for _, p := range g.players {
		records[p.Name()] = p.Record()
		g.logger.Info("final score", "player", p.Name(), "total", p.Record().Total())
	}
	return records, nil
}

// playRound plays turns until the round terminates.
func (g *GameOrchestrator) playRound() (RoundSummary, error) {
	for _, p := range g.players {
		p.RefreshCheques()
	}
	start := g.startingPlayer()
	summary := RoundSummary{Round: g.round, Starter: start.Name()}
	g.record(journal.KindRoundStart, start.Name(), nil)
	g.logger.Debug("round started", "round", g.round, "starter", start.Name())

	finish := func(reason RoundEnd) (RoundSummary, error) {
		summary.Reason = reason
		summary.DeckLeft = g.deck.Size()
		return summary, nil
	}

	passes := 0
	for p := range g.order.CirclingFrom(start) {
		if p.OutOfCheques() {
			passes++
			g.logger.Debug("player passes, out of cheques", "player", p.Name())
			if passes == len(g.players) {
				return finish(ChequesExhausted)
			}
			continue
		}
		passes = 0
		if g.deck.Empty() {
			return finish(DeckExhausted)
		}
		summary.Turns++
		res, err := g.playTurn(p)
		if err != nil {
			return summary, err
		}
		summary.Auctions += res.auctions
		summary.VoidAuctions += res.voidAuctions
		if res.roundOver {
			return finish(PolicemenLimit)
		}
	}
	panic("unreachable")
}

// startingPlayer returns the holder of the highest available cheque. Cheque
// values are unique, so the holder is too.
func (g *GameOrchestrator) startingPlayer() *ledger.Ledger {
	var best *ledger.Ledger
	var top catalog.Cheque
	for _, p := range g.players {
		if c, ok := p.HighestCheque(); ok && c > top {
			best, top = p, c
		}
	}
	return best
}

type turnResult struct {
	roundOver    bool
	auctions     int
	voidAuctions int
}

func (g *GameOrchestrator) playTurn(p *ledger.Ledger) (turnResult, error) {
	action := g.deciders[p].Act(g.gameView(p))
	g.logger.Debug("player acts", "player", p.Name(), "action", action.Type.String())
	switch action.Type {
	case decision.ActionDraw:
		return g.draw(p)
	case decision.ActionPlayerAuction, decision.ActionTheft:
		return turnResult{}, fmt.Errorf("%s: %w: %s", p.Name(), decision.ErrUnsupportedAction, action.Type)
	default:
		return turnResult{}, fmt.Errorf("%s: %w: %s", p.Name(), decision.ErrUnknownAction, action.Type)
	}
}

// Summaries returns how each played round went.
func (g *GameOrchestrator) Summaries() []RoundSummary {
	out := make([]RoundSummary, len(g.summaries))
	copy(out, g.summaries)
	return out
}

// Journal returns the event log of the game.
func (g *GameOrchestrator) Journal() *journal.Journal { return g.journal }

// Fingerprint identifies the sequence of events played so far.
func (g *GameOrchestrator) Fingerprint() string { return g.journal.Fingerprint() }

// Players returns the player ledgers in seat order.
func (g *GameOrchestrator) Players() []*ledger.Ledger {
	out := make([]*ledger.Ledger, len(g.players))
	copy(out, g.players)
	return out
}

func (g *GameOrchestrator) Board() *board.Board { return g.board }
func (g *GameOrchestrator) Deck() *deck.Deck    { return g.deck }

func (g *GameOrchestrator) record(kind journal.Kind, player string, data map[string]string) {
	// The journal only fails when it has no genesis event, which New always
	// creates.
	if _, err := g.journal.Append(kind, g.round, player, data); err != nil {
		g.logger.Error("journal append failed", "error", err)
	}
}
