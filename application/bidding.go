package application

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/luca-patrignani/razzia/domain/auction"
	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
	"github.com/luca-patrignani/razzia/domain/ledger"
	"github.com/luca-patrignani/razzia/journal"
)

// runAuction snapshots the board and asks every player once, starting after
// the initiator, who bids last. Players without cheques, or without a cheque
// beating the current bid, pass without being asked.
func (g *GameOrchestrator) runAuction(mode auction.Mode, initiator *ledger.Ledger) (turnResult, error) {
	a := auction.New(mode, initiator, g.board)
	g.logger.Debug("auction started", "mode", mode.String(), "initiator", initiator.Name(), "cards", len(a.Cards()), "cheque", a.Cheque().Value())

	for _, p := range g.order.OneCircleFromNext(initiator) {
		if p.OutOfCheques() {
			g.logger.Debug("bid passed, no cheques available", "player", p.Name())
			continue
		}
		if !a.CanOutbid(p) {
			g.logger.Debug("bid passed, cannot outbid", "player", p.Name(), "available", p.AvailableCheques())
			continue
		}
		mandated := a.Mandated(p)
		c, ok := g.deciders[p].Bid(g.gameView(p), auctionView(a), playerView(p), mandated)
		if !ok {
			if mandated {
				return turnResult{}, fmt.Errorf("%s: %w", p.Name(), decision.ErrMissingMandatedBid)
			}
			g.record(journal.KindPass, p.Name(), nil)
			g.logger.Debug("bid passed deliberately", "player", p.Name(), "available", p.AvailableCheques())
			continue
		}
		if err := a.RecordBid(c, p); err != nil {
			return turnResult{}, fmt.Errorf("bid by %s: %w", p.Name(), err)
		}
		g.record(journal.KindBid, p.Name(), map[string]string{"cheque": strconv.Itoa(c.Value())})
		g.logger.Debug("bid", "player", p.Name(), "cheque", c.Value())
	}

	out, err := a.Settle(g.board, g.round)
	if err != nil {
		return turnResult{}, fmt.Errorf("settle auction %s: %w", mode, err)
	}
	g.record(journal.KindAuction, out.Winner, map[string]string{
		"mode":      mode.String(),
		"state":     out.State.String(),
		"bid":       strconv.Itoa(out.Bid.Value()),
		"gained":    strconv.Itoa(out.Gained.Value()),
		"cards":     cardNames(out.Cards),
		"discarded": strconv.FormatBool(out.Discarded),
	})
	if out.State == auction.Void {
		g.logger.Debug("no bids", "mode", mode.String(), "discarded", out.Discarded)
		return turnResult{voidAuctions: 1}, nil
	}
	g.logger.Debug("auction won", "player", out.Winner, "bid", out.Bid.Value(), "gained", out.Gained.Value(), "cards", cardNames(out.Cards))
	return turnResult{auctions: 1}, nil
}

func cardNames(cards []catalog.Card) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name()
	}
	return strings.Join(names, ",")
}
