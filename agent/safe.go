package agent

import (
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
	"github.com/luca-patrignani/razzia/domain/scoring"
)

// SafeBidder always draws and bids only on auctions whose booty raises its
// forecast score by at least Threshold points. It never overbids by more than
// one cheque step.
type SafeBidder struct {
	name      string
	Threshold int
}

func NewSafeBidder(name string) *SafeBidder {
	return &SafeBidder{name: name, Threshold: 1}
}

func (s *SafeBidder) Name() string { return s.name }

func (s *SafeBidder) Act(decision.GameView) decision.Action { return decision.Draw() }

func (s *SafeBidder) Bid(g decision.GameView, a decision.AuctionView, p decision.PlayerView, mandated bool) (catalog.Cheque, bool) {
	if !mandated && s.Worth(g, a.Cards) < s.Threshold {
		return 0, false
	}
	return p.LowestChequeAbove(a.HighestBid)
}

// Worth is the forecast gain of winning cards.
func (s *SafeBidder) Worth(g decision.GameView, cards []catalog.Card) int {
	lo, hi := g.OpponentGuardBounds()
	return scoring.MarginalCardsScore(g.OwnCounts, cards, lo, hi, g.RoundsRemaining).Total()
}

func (s *SafeBidder) Steal(decision.GameView) []catalog.Card { return nil }
