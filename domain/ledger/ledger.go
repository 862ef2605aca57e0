// Package ledger keeps the state of one player: the cheques they can still bid
// with, the cheques spent this round, the cards won and the scoring record
// those cards feed.
package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/scoring"
)

var ErrChequeNotHeld = errors.New("cheque is not available")

type Ledger struct {
	name        string
	available   []catalog.Cheque
	unavailable []catalog.Cheque
	active      []*scoring.CardScore
	archived    []*scoring.CardScore
	counts      catalog.Counts
	record      *scoring.Record
}

// New returns the ledger of a player holding the given starting cheques.
func New(name string, cheques []catalog.Cheque) *Ledger {
	return &Ledger{
		name:      name,
		available: slices.Clone(cheques),
		record:    scoring.NewRecord(name),
	}
}

func (l *Ledger) Name() string { return l.name }

// OutOfCheques reports whether the player has no cheque left to bid with, which
// takes them out of the current round.
func (l *Ledger) OutOfCheques() bool { return len(l.available) == 0 }

// AvailableCheques returns a copy of the cheques the player can bid with.
func (l *Ledger) AvailableCheques() []catalog.Cheque { return slices.Clone(l.available) }

// UnavailableCheques returns a copy of the cheques received this round.
func (l *Ledger) UnavailableCheques() []catalog.Cheque { return slices.Clone(l.unavailable) }

func (l *Ledger) NumUnavailableCheques() int { return len(l.unavailable) }

// HighestCheque returns the highest available cheque, false when none is left.
func (l *Ledger) HighestCheque() (catalog.Cheque, bool) {
	return catalog.HighestCheque(l.available)
}

func (l *Ledger) HasChequeAvailable(c catalog.Cheque) bool {
	return slices.Contains(l.available, c)
}

// RefreshCheques makes every cheque available again at the start of a round.
func (l *Ledger) RefreshCheques() {
	l.available = append(l.available, l.unavailable...)
	l.unavailable = nil
}

// SpendCheque removes c from the available cheques.
func (l *Ledger) SpendCheque(c catalog.Cheque) error {
	i := slices.Index(l.available, c)
	if i < 0 {
		return fmt.Errorf("%w: %s holds no %s", ErrChequeNotHeld, l.name, c)
	}
	l.available = slices.Delete(l.available, i, i+1)
	return nil
}

// ReturnCheque undoes SpendCheque.
func (l *Ledger) ReturnCheque(c catalog.Cheque) {
	l.available = append(l.available, c)
}

// AddUnavailableCheque stores a cheque gained from the board; it can be used
// from the next round on.
func (l *Ledger) AddUnavailableCheque(c catalog.Cheque) {
	l.unavailable = append(l.unavailable, c)
}

// Cheques returns every cheque held, available first.
func (l *Ledger) Cheques() []catalog.Cheque {
	return append(slices.Clone(l.available), l.unavailable...)
}

// ChequeTotal is the face value of every cheque held.
func (l *Ledger) ChequeTotal() int { return catalog.SumCheques(l.Cheques()) }

// GainCards adds won cards tagged with the circumstances of the win.
func (l *Ledger) GainCards(cards []catalog.Card, round, chequeValue, ordinal int) {
	for _, c := range cards {
		l.active = append(l.active, scoring.NewCardScore(c, round, chequeValue, ordinal))
		l.counts[c]++
	}
}

// Count returns how many active cards of the kind the player holds.
func (l *Ledger) Count(c catalog.Card) int { return l.counts[c] }

// Counts returns a copy of the active card counts.
func (l *Ledger) Counts() catalog.Counts { return l.counts }

// ActiveCards returns the cards still in play for the player.
func (l *Ledger) ActiveCards() []*scoring.CardScore { return slices.Clone(l.active) }

// ArchivedCards returns the cards removed after round scoring.
func (l *Ledger) ArchivedCards() []*scoring.CardScore { return slices.Clone(l.archived) }

// NumCards counts active and archived cards.
func (l *Ledger) NumCards() int { return len(l.active) + len(l.archived) }

// CountedCards sums the active count cache, which must match len(ActiveCards).
func (l *Ledger) CountedCards() int { return l.counts.Total() }

// ScoreRound scores the round and archives every card of a non-permanent kind.
func (l *Ledger) ScoreRound(round, guardLo, guardHi int) (scoring.Breakdown, error) {
	b, err := l.record.ScoreRound(round, guardLo, guardHi, l.active)
	if err != nil {
		return b, fmt.Errorf("score round %d for %s: %w", round, l.name, err)
	}
	var kept []*scoring.CardScore
	for _, sc := range l.active {
		if sc.Card.IsPermanent() {
			kept = append(kept, sc)
			continue
		}
		l.archived = append(l.archived, sc)
		l.counts[sc.Card] = 0
	}
	l.active = kept
	return b, nil
}

// ScoreGameEnd scores businesses and cheques and freezes the record.
func (l *Ledger) ScoreGameEnd(round, moneyLo, moneyHi int) (scoring.Breakdown, error) {
	b, err := l.record.ScoreGameEnd(round, moneyLo, moneyHi, l.active, l.Cheques())
	if err != nil {
		return b, fmt.Errorf("score game end for %s: %w", l.name, err)
	}
	return b, nil
}

// Record returns the player's scoring record.
func (l *Ledger) Record() *scoring.Record { return l.record }

func (l *Ledger) String() string {
	var s strings.Builder
	fmt.Fprintf(&s, "%s\n", l.name)
	fmt.Fprintf(&s, "  available cheques: %v\n", l.available)
	fmt.Fprintf(&s, "  unavailable cheques: %v\n", l.unavailable)
	var held []string
	for _, c := range catalog.BootyCards() {
		if n := l.counts[c]; n > 0 {
			held = append(held, fmt.Sprintf("%s %d", c.Name(), n))
		}
	}
	fmt.Fprintf(&s, "  counts: %s", strings.Join(held, ", "))
	return s.String()
}
