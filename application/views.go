package application

import (
	"github.com/luca-patrignani/razzia/domain/auction"
	"github.com/luca-patrignani/razzia/domain/decision"
	"github.com/luca-patrignani/razzia/domain/ledger"
)

// gameView builds the snapshot of the table seen by p. Every slice is a copy.
func (g *GameOrchestrator) gameView(p *ledger.Ledger) decision.GameView {
	seats := make([]decision.SeatView, len(g.players))
	for i, s := range g.players {
		top, _ := s.HighestCheque()
		seats[i] = decision.SeatView{
			Name:           s.Name(),
			HighestCheque:  top,
			AvailableCount: len(s.AvailableCheques()),
			Counts:         s.Counts(),
		}
	}
	return decision.GameView{
		Self:            p.Name(),
		Round:           g.round,
		RoundsRemaining: g.rules.Rounds - g.round,
		PolicemenLimit:  g.rules.PolicemenLimit(len(g.players)),
		DeckSize:        g.deck.Size(),
		OwnCheques:      p.AvailableCheques(),
		OwnCounts:       p.Counts(),
		Seats:           seats,
		Board: decision.BoardView{
			Cheque:    g.board.Cheque(),
			Cards:     g.board.Cards(),
			Counts:    g.board.CardCounts(),
			Policemen: g.board.NumPolicemen(),
		},
	}
}

func auctionView(a *auction.Auction) decision.AuctionView {
	v := decision.AuctionView{
		Mode:      a.Mode().String(),
		Initiator: a.Initiator().Name(),
		Cards:     a.Cards(),
		Cheque:    a.Cheque(),
	}
	if bid, bidder, ok := a.HighestBid(); ok {
		v.HighestBid = bid
		v.HighestBidder = bidder.Name()
	}
	return v
}

func playerView(p *ledger.Ledger) decision.PlayerView {
	return decision.PlayerView{
		Name:             p.Name(),
		AvailableCheques: p.AvailableCheques(),
		Counts:           p.Counts(),
	}
}
