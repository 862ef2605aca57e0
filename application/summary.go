package application

import (
	"fmt"

	"github.com/luca-patrignani/razzia/domain/scoring"
)

// RoundEnd is the reason a round terminated.
type RoundEnd int

const (
	PolicemenLimit RoundEnd = iota + 1
	ChequesExhausted
	DeckExhausted
)

func (r RoundEnd) String() string {
	switch r {
	case PolicemenLimit:
		return "policemen limit"
	case ChequesExhausted:
		return "cheques exhausted"
	case DeckExhausted:
		return "deck exhausted"
	default:
		return fmt.Sprintf("RoundEnd(%d)", int(r))
	}
}

// RoundSummary records how a round went.
type RoundSummary struct {
	Round   int
	Reason  RoundEnd
	Starter string
	Turns   int
	// Auctions counts resolved auctions; VoidAuctions the ones nobody bid on.
	Auctions     int
	VoidAuctions int
	GuardMin     int
	GuardMax     int
	DeckLeft     int
	Scores       map[string]scoring.Breakdown
}
