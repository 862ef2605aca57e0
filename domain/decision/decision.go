// Package decision defines the contract between the game and the
// decision-makers that play it, and the read-only views they decide on.
//
// Deciders never see mutable game state. Every call receives value snapshots
// built for that decision point; changing them has no effect on the game.
package decision

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

// Protocol faults. A decider that breaks its contract aborts the game; none of
// these are retried.
var (
	ErrMissingMandatedBid = errors.New("missing mandated bid")
	ErrUnknownAction      = errors.New("unexpected action")
	ErrUnsupportedAction  = errors.New("unsupported action")
)

// ActionType is what a player does on their turn.
type ActionType int

const (
	ActionDraw ActionType = iota + 1
	ActionPlayerAuction
	ActionTheft
)

func (a ActionType) String() string {
	switch a {
	case ActionDraw:
		return "draw"
	case ActionPlayerAuction:
		return "auction"
	case ActionTheft:
		return "theft"
	default:
		return fmt.Sprintf("ActionType(%d)", int(a))
	}
}

// Action is a turn decision. Cards is only meaningful for theft.
type Action struct {
	Type  ActionType
	Cards []catalog.Card
}

func Draw() Action          { return Action{Type: ActionDraw} }
func PlayerAuction() Action { return Action{Type: ActionPlayerAuction} }

func Theft(cards ...catalog.Card) Action {
	return Action{Type: ActionTheft, Cards: cards}
}

// Decider is the capability a seat needs to take part in a game.
type Decider interface {
	// Name identifies the player; it must be unique within a game.
	Name() string
	// Act chooses the action of a turn.
	Act(game GameView) Action
	// Bid returns the cheque to bid, or false to pass. When mandated is true a
	// pass is a protocol fault.
	Bid(game GameView, auction AuctionView, player PlayerView, mandated bool) (catalog.Cheque, bool)
	// Steal chooses the cards to take with a theft action.
	Steal(game GameView) []catalog.Card
}
