package decision

import (
	"slices"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

// SeatView is what everyone at the table can see of one player.
type SeatView struct {
	Name string
	// HighestCheque is zero when the player has no cheque left this round.
	HighestCheque  catalog.Cheque
	AvailableCount int
	Counts         catalog.Counts
}

// BoardView is the public state of the board.
type BoardView struct {
	Cheque    catalog.Cheque
	Cards     []catalog.Card
	Counts    catalog.Counts
	Policemen int
}

// GameView is the table as seen by one player.
type GameView struct {
	Self            string
	Round           int
	RoundsRemaining int
	// PolicemenLimit is the policeman count that ends the round.
	PolicemenLimit int
	DeckSize       int
	OwnCheques     []catalog.Cheque
	OwnCounts      catalog.Counts
	Seats          []SeatView
	Board          BoardView
}

// Opponents returns every seat except the viewer's.
func (g GameView) Opponents() []SeatView {
	out := make([]SeatView, 0, len(g.Seats))
	for _, s := range g.Seats {
		if s.Name != g.Self {
			out = append(out, s)
		}
	}
	return out
}

// OpponentGuardBounds returns the fewest and most bodyguards held by an
// opponent. Without opponents both bounds are the viewer's own count.
func (g GameView) OpponentGuardBounds() (int, int) {
	opps := g.Opponents()
	if len(opps) == 0 {
		own := g.OwnCounts[catalog.Bodyguard]
		return own, own
	}
	lo, hi := opps[0].Counts[catalog.Bodyguard], opps[0].Counts[catalog.Bodyguard]
	for _, o := range opps[1:] {
		n := o.Counts[catalog.Bodyguard]
		lo, hi = min(lo, n), max(hi, n)
	}
	return lo, hi
}

// AuctionView is the state of a running auction.
type AuctionView struct {
	Mode      string
	Initiator string
	Cards     []catalog.Card
	Cheque    catalog.Cheque
	// HighestBid is zero while nobody has bid.
	HighestBid    catalog.Cheque
	HighestBidder string
}

// PlayerView is the private state of the player being asked to bid.
type PlayerView struct {
	Name             string
	AvailableCheques []catalog.Cheque
	Counts           catalog.Counts
}

// LowestChequeAbove returns the lowest available cheque beating bid, false if
// none does. A zero bid is beaten by any cheque.
func (p PlayerView) LowestChequeAbove(bid catalog.Cheque) (catalog.Cheque, bool) {
	var best catalog.Cheque
	for _, c := range p.AvailableCheques {
		if c > bid && (best == 0 || c < best) {
			best = c
		}
	}
	return best, best != 0
}

// Clone returns a deep copy, so a decider may keep a view past its call.
func (g GameView) Clone() GameView {
	g.OwnCheques = slices.Clone(g.OwnCheques)
	g.Seats = slices.Clone(g.Seats)
	g.Board.Cards = slices.Clone(g.Board.Cards)
	return g
}
