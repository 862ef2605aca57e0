package scoring

import "github.com/luca-patrignani/razzia/domain/catalog"

// Forecast is a static estimate of the score a set of held cards is worth if
// no further cards are gained. The current round is scored on counts with the
// guard bounds widened to include the player's own count. Each remaining round
// repeats the bodyguard result, while cars and trinkets fall back to what an
// empty hand scores (0 and -5). Businesses are scored on the same counts even
// though they are only settled at game end.
func Forecast(counts catalog.Counts, oppGuardLo, oppGuardHi, roundsRemaining int) Breakdown {
	self := counts[catalog.Bodyguard]
	lo, hi := min(oppGuardLo, self), max(oppGuardHi, self)

	b := RoundBreakdown(counts, lo, hi)
	if roundsRemaining > 0 {
		b[Bodyguards] += roundsRemaining * b[Bodyguards]
		b[Trinkets] += roundsRemaining * trinketBaseline
	}
	b[Businesses] = BusinessScore(counts)
	return b
}

// MarginalCardScore is the change in Forecast from gaining one card.
func MarginalCardScore(counts catalog.Counts, card catalog.Card, oppGuardLo, oppGuardHi, roundsRemaining int) Breakdown {
	return MarginalCardsScore(counts, []catalog.Card{card}, oppGuardLo, oppGuardHi, roundsRemaining)
}

// MarginalCardsScore is the change in Forecast from gaining a batch of cards,
// such as the booty of an auction.
func MarginalCardsScore(counts catalog.Counts, cards []catalog.Card, oppGuardLo, oppGuardHi, roundsRemaining int) Breakdown {
	before := Forecast(counts, oppGuardLo, oppGuardHi, roundsRemaining)
	after := Forecast(counts.Add(cards...), oppGuardLo, oppGuardHi, roundsRemaining)
	return after.Sub(before)
}
