package scoring

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

// ErrFinalized is returned when scoring a record after game-end scoring.
var ErrFinalized = errors.New("scoring record is final")

// Tolerance is the largest difference allowed between a category total and the
// sum of its attribution entries.
const Tolerance = 1e-9

// CardScore is a won card with the circumstances of its acquisition and the
// points it has been attributed so far.
type CardScore struct {
	Card        catalog.Card
	Round       int
	ChequeValue int
	// Ordinal is the 1-based count of cheques the winner had spent in the
	// round when winning the card.
	Ordinal int
	points  [NumCategories]float64
}

// NewCardScore tags a won card.
func NewCardScore(card catalog.Card, round, chequeValue, ordinal int) *CardScore {
	return &CardScore{Card: card, Round: round, ChequeValue: chequeValue, Ordinal: ordinal}
}

// Points returns every point attributed to the card.
func (c *CardScore) Points() float64 {
	total := 0.0
	for _, p := range c.points {
		total += p
	}
	return total
}

// PointsIn returns the points the card contributed to one category.
func (c *CardScore) PointsIn(cat Category) float64 { return c.points[cat] }

func (c *CardScore) String() string {
	return fmt.Sprintf("%-14s (won by cheque %d (ordinal %d) on round %d) scored %.3f points",
		c.Card.Name(), c.ChequeValue, c.Ordinal, c.Round, c.Points())
}

// ChequeScore is a cheque held at game end and the points attributed to it.
type ChequeScore struct {
	Cheque catalog.Cheque
	Points float64
}

// Source tells what an attribution entry is attached to.
type Source int

const (
	SourceCard Source = iota
	SourceCheque
	// SourceBaseline carries starting points no card can be credited with:
	// the trinket score of an empty collection and the bodyguard penalty the
	// per-card shares are measured against.
	SourceBaseline
)

func (s Source) String() string {
	switch s {
	case SourceCard:
		return "card"
	case SourceCheque:
		return "cheque"
	case SourceBaseline:
		return "baseline"
	default:
		return "unknown"
	}
}

// Entry is one attribution record.
type Entry struct {
	Category Category
	Source   Source
	Round    int
	Card     *CardScore
	Cheque   *ChequeScore
	Points   float64
}

// Record accumulates one player's category totals and the fine-grained
// attribution entries that explain them.
type Record struct {
	player  string
	totals  Breakdown
	rounds  []Breakdown
	entries []Entry
	cards   []*CardScore
	seen    map[*CardScore]bool
	cheques []*ChequeScore
	final   bool
}

func NewRecord(player string) *Record {
	return &Record{player: player, seen: make(map[*CardScore]bool)}
}

func (r *Record) Player() string { return r.player }

// Total is the final score.
func (r *Record) Total() int { return r.totals.Total() }

// ByCategory returns the category totals.
func (r *Record) ByCategory() Breakdown { return r.totals }

// Rounds returns the round-scored breakdown of each completed round.
func (r *Record) Rounds() []Breakdown { return slices.Clone(r.rounds) }

// Entries returns every attribution entry in the order it was recorded.
func (r *Record) Entries() []Entry { return slices.Clone(r.entries) }

// Cards returns every card that took part in scoring, in acquisition order.
func (r *Record) Cards() []*CardScore { return slices.Clone(r.cards) }

// Cheques returns the cheques scored at game end.
func (r *Record) Cheques() []*ChequeScore { return slices.Clone(r.cheques) }

// Final reports whether game-end scoring has run.
func (r *Record) Final() bool { return r.final }

// CardPoints sums the points attributed to cards.
func (r *Record) CardPoints() float64 { return r.sumSource(SourceCard) }

// ChequePoints sums the points attributed to cheques.
func (r *Record) ChequePoints() float64 { return r.sumSource(SourceCheque) }

// AdjustedCardScore is the card points plus the baseline starting points, in
// other words everything except the money category.
func (r *Record) AdjustedCardScore() float64 {
	return r.sumSource(SourceCard) + r.sumSource(SourceBaseline)
}

func (r *Record) sumSource(s Source) float64 {
	total := 0.0
	for _, e := range r.entries {
		if e.Source == s {
			total += e.Points
		}
	}
	return total
}

// Reconcile checks that the entries of every category add up to its total.
func (r *Record) Reconcile(tolerance float64) error {
	var sums [NumCategories]float64
	for _, e := range r.entries {
		sums[e.Category] += e.Points
	}
	for _, cat := range Categories() {
		if diff := math.Abs(sums[cat] - float64(r.totals[cat])); diff > tolerance {
			return fmt.Errorf("%s: entries sum to %f but total is %d", cat, sums[cat], r.totals[cat])
		}
	}
	return nil
}

func (r *Record) track(cards []*CardScore) {
	for _, c := range cards {
		if !r.seen[c] {
			r.seen[c] = true
			r.cards = append(r.cards, c)
		}
	}
}

func (r *Record) creditCard(round int, c *CardScore, cat Category, points float64) {
	c.points[cat] += points
	r.entries = append(r.entries, Entry{Category: cat, Source: SourceCard, Round: round, Card: c, Points: points})
}

func (r *Record) creditBaseline(round int, cat Category, points float64) {
	r.entries = append(r.entries, Entry{Category: cat, Source: SourceBaseline, Round: round, Points: points})
}

// ScoreRound scores the round categories over the player's active cards and
// attributes the points to those cards. guardLo and guardHi are the fewest and
// most bodyguards held by any player.
func (r *Record) ScoreRound(round, guardLo, guardHi int, cards []*CardScore) (Breakdown, error) {
	if r.final {
		return Breakdown{}, ErrFinalized
	}
	r.track(cards)
	counts := countScored(cards)
	b := RoundBreakdown(counts, guardLo, guardHi)
	r.totals = r.totals.Add(b)
	r.rounds = append(r.rounds, b)

	distinct := counts.Distinct(catalog.TrinketCards())
	perUniqueTrinket := 0.0
	if distinct > 0 {
		perUniqueTrinket = float64(b[Trinkets]-trinketBaseline) / float64(distinct)
	}
	r.creditBaseline(round, Trinkets, float64(trinketBaseline))

	guards := counts[catalog.Bodyguard]
	perGuard := 0.0
	if guards > 0 {
		// Each guard is measured against the low-count penalty, so a player
		// holding none has an implicit per-card baseline of +2.
		perGuard = float64(b[Bodyguards]-guardLowPenalty) / float64(guards)
		r.creditBaseline(round, Bodyguards, guardLowPenalty)
	} else {
		r.creditBaseline(round, Bodyguards, float64(b[Bodyguards]))
	}

	cars, drivers := counts[catalog.Car], counts[catalog.Driver]
	for _, c := range cards {
		switch {
		case c.Card.IsTrinket():
			r.creditCard(round, c, Trinkets, perUniqueTrinket/float64(counts[c.Card]))
		case c.Card == catalog.GoldCoin:
			r.creditCard(round, c, GoldCoins, goldCoinPoints)
		case c.Card == catalog.Thief:
			r.creditCard(round, c, Thieves, thiefPoints)
		case c.Card == catalog.Bodyguard:
			r.creditCard(round, c, Bodyguards, perGuard)
		case c.Card == catalog.Car:
			carPoints := 0.0
			if drivers > 0 {
				carPoints = 0.5
			}
			r.creditCard(round, c, Cars, carPoints)
		case c.Card == catalog.Driver:
			r.creditCard(round, c, Drivers, 1)
			r.creditCard(round, c, Cars, 0.5*float64(cars)/float64(drivers))
		}
	}
	return b, nil
}

// ScoreGameEnd scores businesses over the remaining active cards and money over
// the held cheques, then freezes the record.
func (r *Record) ScoreGameEnd(round, moneyLo, moneyHi int, cards []*CardScore, cheques []catalog.Cheque) (Breakdown, error) {
	if r.final {
		return Breakdown{}, ErrFinalized
	}
	r.track(cards)
	counts := countScored(cards)

	var b Breakdown
	b[Businesses] = BusinessScore(counts)
	total := catalog.SumCheques(cheques)
	b[Cheques] = ChequeAdjustment(total, moneyLo, moneyHi)
	r.totals = r.totals.Add(b)

	businesses := catalog.BusinessCards()
	complete := counts.Distinct(businesses) == len(businesses)
	for _, c := range cards {
		if !c.Card.IsBusiness() {
			continue
		}
		n := float64(counts[c.Card])
		points := 1 / n
		if complete {
			points += float64(allBusinessesBonus) / float64(len(businesses)) / n
		}
		if counts[c.Card] >= multiBusinessFrom {
			points += float64(multiBusinessPerCopy) * (n - 2) / n
		}
		r.creditCard(round, c, Businesses, points)
	}

	r.cheques = make([]*ChequeScore, len(cheques))
	for i, ch := range cheques {
		r.cheques[i] = &ChequeScore{Cheque: ch}
	}
	if len(r.cheques) == 0 {
		r.creditBaseline(round, Cheques, float64(b[Cheques]))
	}
	for _, cs := range r.cheques {
		cs.Points = float64(b[Cheques]) / float64(len(r.cheques))
		r.entries = append(r.entries, Entry{Category: Cheques, Source: SourceCheque, Round: round, Cheque: cs, Points: cs.Points})
	}

	r.final = true
	return b, nil
}

func countScored(cards []*CardScore) catalog.Counts {
	var counts catalog.Counts
	for _, c := range cards {
		counts[c.Card]++
	}
	return counts
}
