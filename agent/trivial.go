// Package agent provides reference deciders.
package agent

import (
	"math/rand/v2"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
)

// bidProbability is indexed by the number of auctioned cards.
var bidProbability = [...]float64{0.05, 0.15, 0.30, 0.50, 0.65, 0.75, 0.85, 0.95}

// Trivial always draws and bids at random: the more cards are auctioned the
// likelier it bids, always with its lowest cheque beating the current bid.
type Trivial struct {
	name string
	rng  *rand.Rand
}

func NewTrivial(name string, rng *rand.Rand) *Trivial {
	return &Trivial{name: name, rng: rng}
}

func (t *Trivial) Name() string { return t.name }

func (t *Trivial) Act(decision.GameView) decision.Action { return decision.Draw() }

func (t *Trivial) Bid(_ decision.GameView, a decision.AuctionView, p decision.PlayerView, mandated bool) (catalog.Cheque, bool) {
	n := min(len(a.Cards), len(bidProbability)-1)
	if !mandated && t.rng.Float64() >= bidProbability[n] {
		return 0, false
	}
	return p.LowestChequeAbove(a.HighestBid)
}

func (t *Trivial) Steal(decision.GameView) []catalog.Card { return nil }
