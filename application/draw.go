package application

import (
	"fmt"
	"strconv"

	"github.com/luca-patrignani/razzia/domain/auction"
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/ledger"
	"github.com/luca-patrignani/razzia/journal"
)

// draw resolves a draw by p. A policeman either ends the round, when it
// reaches the limit, or starts an auction; a booty card goes to the board and
// starts an auction when it fills the board.
func (g *GameOrchestrator) draw(p *ledger.Ledger) (turnResult, error) {
	card, err := g.deck.Draw()
	if err != nil {
		return turnResult{}, fmt.Errorf("%s draws: %w", p.Name(), err)
	}
	g.record(journal.KindDraw, p.Name(), map[string]string{
		"card": card.Name(),
		"deck": strconv.Itoa(g.deck.Size()),
	})
	g.logger.Debug("card drawn", "player", p.Name(), "card", card.Name(), "deck", g.deck.Size())

	if card == catalog.Policeman {
		g.board.AddPoliceman()
		limit := g.rules.PolicemenLimit(len(g.players))
		if g.board.NumPolicemen() >= limit {
			g.logger.Debug("policemen limit reached", "policemen", g.board.NumPolicemen(), "booty", g.board.NumCards())
			g.board.DiscardBootyCards()
			g.board.DiscardPolicemen()
			return turnResult{roundOver: true}, nil
		}
		return g.runAuction(auction.ByPoliceman, p)
	}

	if err := g.board.AddCard(card); err != nil {
		return turnResult{}, err
	}
	if g.board.NumCards() >= g.rules.FullBoard {
		return g.runAuction(auction.ByFullBoard, p)
	}
	return turnResult{}, nil
}
