package application

import (
	"fmt"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

// Rules holds the tunable constants of a game.
type Rules struct {
	Rounds int
	// FullBoard is the number of booty cards that starts an automatic auction.
	FullBoard int
	// Policemen ends a round; TwoSeatPolicemen replaces it in two-player games.
	Policemen        int
	TwoSeatPolicemen int
}

func DefaultRules() Rules {
	return Rules{
		Rounds:           catalog.GameRounds,
		FullBoard:        catalog.FullBoardCards,
		Policemen:        catalog.RoundEndPolicemen,
		TwoSeatPolicemen: catalog.RoundEndPolicemenTwoSeat,
	}
}

// PolicemenLimit returns the policeman count that ends a round.
func (r Rules) PolicemenLimit(players int) int {
	if players == 2 {
		return r.TwoSeatPolicemen
	}
	return r.Policemen
}

func (r Rules) validate() error {
	if r.Rounds < 1 {
		return fmt.Errorf("%w: %d rounds", ErrInvalidRules, r.Rounds)
	}
	if r.FullBoard < 1 {
		return fmt.Errorf("%w: full board at %d cards", ErrInvalidRules, r.FullBoard)
	}
	if r.Policemen < 1 || r.TwoSeatPolicemen < 1 {
		return fmt.Errorf("%w: round ends at %d/%d policemen", ErrInvalidRules, r.Policemen, r.TwoSeatPolicemen)
	}
	return nil
}
