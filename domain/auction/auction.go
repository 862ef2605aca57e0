// Package auction implements the bidding state machine run over a snapshot of
// the board. An auction starts Open, collects strictly increasing bids and is
// settled either Resolved, when somebody bid, or Void.
package auction

import (
	"errors"
	"fmt"
	"slices"

	"github.com/luca-patrignani/razzia/domain/board"
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/ledger"
)

var (
	ErrChequeNotAvailable = errors.New("trying to bid a cheque that is not available")
	ErrBidTooLow          = errors.New("cheque is not able to outbid an existing bid")
	ErrNotOpen            = errors.New("auction is not open")
)

// Mode is what started an auction.
type Mode int

const (
	ByPlayer Mode = iota + 1
	ByFullBoard
	ByPoliceman
)

func (m Mode) String() string {
	switch m {
	case ByPlayer:
		return "by player"
	case ByFullBoard:
		return "by full board"
	case ByPoliceman:
		return "by policeman"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

type State int

const (
	Open State = iota
	Resolved
	Void
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Resolved:
		return "resolved"
	case Void:
		return "void"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type Auction struct {
	mode          Mode
	initiator     *ledger.Ledger
	cards         []catalog.Card
	cheque        catalog.Cheque
	highestBid    catalog.Cheque
	highestBidder *ledger.Ledger
	state         State
}

// New snapshots the board for an auction started by initiator.
func New(mode Mode, initiator *ledger.Ledger, b *board.Board) *Auction {
	return &Auction{
		mode:      mode,
		initiator: initiator,
		cards:     b.Cards(),
		cheque:    b.Cheque(),
	}
}

func (a *Auction) Mode() Mode                { return a.mode }
func (a *Auction) Initiator() *ledger.Ledger { return a.initiator }
func (a *Auction) State() State              { return a.state }
func (a *Auction) Cheque() catalog.Cheque    { return a.cheque }

// Cards returns a copy of the auctioned cards.
func (a *Auction) Cards() []catalog.Card { return slices.Clone(a.cards) }

// HighestBid returns the current highest bid and its bidder, or false if
// nobody has bid.
func (a *Auction) HighestBid() (catalog.Cheque, *ledger.Ledger, bool) {
	return a.highestBid, a.highestBidder, a.highestBidder != nil
}

// Mandated reports whether p must bid: only the initiator of an auction they
// started themselves.
func (a *Auction) Mandated(p *ledger.Ledger) bool {
	return a.mode == ByPlayer && p == a.initiator
}

// CanOutbid reports whether p holds a cheque that beats the current highest
// bid. Players that cannot are not asked.
func (a *Auction) CanOutbid(p *ledger.Ledger) bool {
	top, ok := p.HighestCheque()
	if !ok {
		return false
	}
	return a.highestBidder == nil || top > a.highestBid
}

// RecordBid validates and records a bid. It does not trust the caller: the
// bidder must hold the cheque and it must beat the current highest bid.
func (a *Auction) RecordBid(c catalog.Cheque, bidder *ledger.Ledger) error {
	if a.state != Open {
		return ErrNotOpen
	}
	if !bidder.HasChequeAvailable(c) {
		return fmt.Errorf("%w: %s by %s", ErrChequeNotAvailable, c, bidder.Name())
	}
	if a.highestBidder != nil && c <= a.highestBid {
		return fmt.Errorf("%w: %s against %s", ErrBidTooLow, c, a.highestBid)
	}
	a.highestBid = c
	a.highestBidder = bidder
	return nil
}

// Outcome describes how an auction was settled.
type Outcome struct {
	Mode   Mode
	State  State
	Winner string
	Bid    catalog.Cheque
	// Gained is the board cheque the winner received.
	Gained    catalog.Cheque
	Cards     []catalog.Card
	Discarded bool
}

// Settle closes the auction. The winner takes the snapshotted booty and the
// board cheque, and their bid becomes the new board cheque. Without bids a
// full-board auction discards the booty while other auctions leave it on the
// board for a later auction.
func (a *Auction) Settle(b *board.Board, round int) (Outcome, error) {
	if a.state != Open {
		return Outcome{}, ErrNotOpen
	}
	out := Outcome{Mode: a.mode, Cards: slices.Clone(a.cards)}
	if a.highestBidder == nil {
		a.state = Void
		out.State = Void
		if a.mode == ByFullBoard {
			b.DiscardBootyCards()
			out.Discarded = true
		}
		return out, nil
	}

	winner, bid := a.highestBidder, a.highestBid
	ordinal := winner.NumUnavailableCheques() + 1
	if err := winner.SpendCheque(bid); err != nil {
		return Outcome{}, err
	}
	taken, err := b.TakeBootyCards(a.cards)
	if err != nil {
		winner.ReturnCheque(bid)
		return Outcome{}, fmt.Errorf("board changed during auction: %w", err)
	}
	winner.GainCards(taken, round, bid.Value(), ordinal)
	gained := b.ReplaceCheque(bid)
	winner.AddUnavailableCheque(gained)

	a.state = Resolved
	out.State = Resolved
	out.Winner = winner.Name()
	out.Bid = bid
	out.Gained = gained
	return out, nil
}
