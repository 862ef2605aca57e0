package application

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/scoring"
	"github.com/luca-patrignani/razzia/journal"
)

// scoreRound scores every player against the fewest and most bodyguards held
// at the table, then archives their non-permanent cards.
func (g *GameOrchestrator) scoreRound(summary *RoundSummary) error {
	lo, hi := g.players[0].Count(catalog.Bodyguard), g.players[0].Count(catalog.Bodyguard)
	for _, p := range g.players[1:] {
		n := p.Count(catalog.Bodyguard)
		lo, hi = min(lo, n), max(hi, n)
	}
	summary.GuardMin, summary.GuardMax = lo, hi
	summary.Scores = make(map[string]scoring.Breakdown, len(g.players))
	for _, p := range g.players {
		b, err := p.ScoreRound(g.round, lo, hi)
		if err != nil {
			return err
		}
		summary.Scores[p.Name()] = b
		g.logger.Debug("round score", "round", g.round, "player", p.Name(), "points", b.Total())
	}
	g.record(journal.KindRoundEnd, "", map[string]string{
		"reason":    summary.Reason.String(),
		"guard_min": strconv.Itoa(lo),
		"guard_max": strconv.Itoa(hi),
	})
	return nil
}

// scoreGameEnd scores businesses and cheques against the lowest and highest
// cheque totals at the table.
func (g *GameOrchestrator) scoreGameEnd() error {
	lo, hi := g.players[0].ChequeTotal(), g.players[0].ChequeTotal()
	for _, p := range g.players[1:] {
		t := p.ChequeTotal()
		lo, hi = min(lo, t), max(hi, t)
	}
	data := map[string]string{"money_min": strconv.Itoa(lo), "money_max": strconv.Itoa(hi)}
	for _, p := range g.players {
		if _, err := p.ScoreGameEnd(g.round, lo, hi); err != nil {
			return err
		}
		data[p.Name()] = strconv.Itoa(p.Record().Total())
	}
	g.record(journal.KindGameEnd, "", data)
	return nil
}

// checkConservation verifies that no card and no cheque was created or lost.
// The card supply is the full catalog unless a deck was injected.
func (g *GameOrchestrator) checkConservation() error {
	expected := catalog.TotalSupply()
	if g.scripted {
		expected = g.supply
	}
	held, counted := 0, 0
	for _, p := range g.players {
		held += p.NumCards()
		counted += p.CountedCards() + len(p.ArchivedCards())
	}
	outside := g.deck.Size() + g.board.NumAllCards()
	if n := outside + held; n != expected {
		return fmt.Errorf("%w: expected %d cards at game end, had %d", ErrCardConservation, expected, n)
	}
	if n := outside + counted; n != expected {
		return fmt.Errorf("%w: expected %d counted cards at game end, had %d", ErrCardConservation, expected, n)
	}

	sets, err := catalog.StartingCheques(len(g.players))
	if err != nil {
		return err
	}
	want := []catalog.Cheque{catalog.StartingCheque}
	for _, s := range sets {
		want = append(want, s...)
	}
	got := []catalog.Cheque{g.board.Cheque()}
	for _, p := range g.players {
		got = append(got, p.Cheques()...)
	}
	slices.Sort(want)
	slices.Sort(got)
	if !slices.Equal(want, got) {
		return fmt.Errorf("%w: expected %v, had %v", ErrChequeConservation, want, got)
	}
	return nil
}
