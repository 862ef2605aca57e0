package agent

import (
	"math/rand/v2"
	"slices"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
)

// ThiefRisker bids like SafeBidder but, holding a thief, tries to steal the
// most valuable card on the board with probability Risk.
type ThiefRisker struct {
	*SafeBidder
	rng  *rand.Rand
	Risk float64
}

func NewThiefRisker(name string, rng *rand.Rand, risk float64) *ThiefRisker {
	return &ThiefRisker{SafeBidder: NewSafeBidder(name), rng: rng, Risk: risk}
}

func (t *ThiefRisker) Act(g decision.GameView) decision.Action {
	if g.OwnCounts[catalog.Thief] == 0 || len(g.Board.Cards) == 0 {
		return decision.Draw()
	}
	if t.rng.Float64() >= t.Risk {
		return decision.Draw()
	}
	return decision.Theft(t.Steal(g)...)
}

// Steal picks the board card with the highest forecast gain, the first one on
// ties.
func (t *ThiefRisker) Steal(g decision.GameView) []catalog.Card {
	if len(g.Board.Cards) == 0 {
		return nil
	}
	cards := slices.Clone(g.Board.Cards)
	best, bestWorth := cards[0], t.Worth(g, cards[:1])
	for _, c := range cards[1:] {
		if w := t.Worth(g, []catalog.Card{c}); w > bestWorth {
			best, bestWorth = c, w
		}
	}
	return []catalog.Card{best}
}
