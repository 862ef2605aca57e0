package agent

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/luca-patrignani/razzia/domain/decision"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

const (
	StrategyTrivial = "trivial"
	StrategySafe    = "safe"
	StrategyThief   = "thief"
	// StrategyMixed alternates trivial and safe seats.
	StrategyMixed = "mixed"
)

// DefaultRisk is the theft probability of the thief strategy.
const DefaultRisk = 0.5

// Strategies lists the names accepted by Seat.
func Strategies() []string {
	return []string{StrategyTrivial, StrategySafe, StrategyThief, StrategyMixed}
}

// Seat builds the decider of seat i for a strategy name.
func Seat(strategy string, i int, rng *rand.Rand) (decision.Decider, error) {
	name := fmt.Sprintf("Player %c", 'A'+i)
	switch strategy {
	case StrategyTrivial:
		return NewTrivial(name, rng), nil
	case StrategySafe:
		return NewSafeBidder(name), nil
	case StrategyThief:
		return NewThiefRisker(name, rng, DefaultRisk), nil
	case StrategyMixed:
		if i%2 == 0 {
			return NewTrivial(name, rng), nil
		}
		return NewSafeBidder(name), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, strategy)
	}
}

// Table seats n players of the same strategy.
func Table(strategy string, n int, rng *rand.Rand) ([]decision.Decider, error) {
	out := make([]decision.Decider, n)
	for i := range out {
		d, err := Seat(strategy, i, rng)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}
