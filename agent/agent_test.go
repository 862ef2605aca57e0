package agent

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/decision"
	"github.com/luca-patrignani/razzia/random"
)

func auctionOf(n int, highest catalog.Cheque) decision.AuctionView {
	return decision.AuctionView{Cards: make([]catalog.Card, n), HighestBid: highest}
}

func wallet(cheques ...catalog.Cheque) decision.PlayerView {
	return decision.PlayerView{Name: "Alice", AvailableCheques: cheques}
}

func TestTrivialMandatedAlwaysBids(t *testing.T) {
	a := NewTrivial("Alice", random.New(1))
	for range 100 {
		c, ok := a.Bid(decision.GameView{}, auctionOf(0, 4), wallet(2, 5, 9), true)
		if !ok || c != 5 {
			t.Fatalf("expected a mandated bid of 5, got %v %v", c, ok)
		}
	}
}

func TestTrivialBidsMoreOnBiggerAuctions(t *testing.T) {
	a := NewTrivial("Alice", random.New(7))
	bids := func(cards int) int {
		n := 0
		for range 1000 {
			if _, ok := a.Bid(decision.GameView{}, auctionOf(cards, 0), wallet(2, 5, 9), false); ok {
				n++
			}
		}
		return n
	}
	if n := bids(0); n > 150 {
		t.Errorf("expected about 5%% bids on empty auctions, got %d/1000", n)
	}
	if n := bids(7); n < 850 {
		t.Errorf("expected about 95%% bids on full auctions, got %d/1000", n)
	}
}

func TestTrivialCannotOutbid(t *testing.T) {
	a := NewTrivial("Alice", random.New(1))
	if _, ok := a.Bid(decision.GameView{}, auctionOf(3, 9), wallet(2, 5), true); ok {
		t.Fatal("no cheque beats 9")
	}
}

func TestSafeBidderWorth(t *testing.T) {
	s := NewSafeBidder("Alice")
	g := decision.GameView{Self: "Alice", RoundsRemaining: 2, Seats: []decision.SeatView{{Name: "Alice"}, {Name: "Bob"}}}
	if _, ok := s.Bid(g, decision.AuctionView{}, wallet(2, 5), false); ok {
		t.Fatal("an empty auction is worth nothing")
	}
	a := decision.AuctionView{Cards: []catalog.Card{catalog.GoldCoin}, HighestBid: 2}
	c, ok := s.Bid(g, a, wallet(2, 5, 9), false)
	if !ok || c != 5 {
		t.Fatalf("expected a bid of 5 for a gold coin, got %v %v", c, ok)
	}
	s.Threshold = 4
	if _, ok := s.Bid(g, a, wallet(2, 5, 9), false); ok {
		t.Fatal("a gold coin is worth 3, below the threshold")
	}
	if c, ok := s.Bid(g, decision.AuctionView{}, wallet(2, 5), true); !ok || c != 2 {
		t.Fatalf("a mandated bid must be placed, got %v %v", c, ok)
	}
}

func TestThiefRiskerStealsOnlyWithThief(t *testing.T) {
	r := NewThiefRisker("Alice", random.New(1), 1)
	g := decision.GameView{
		Self:  "Alice",
		Seats: []decision.SeatView{{Name: "Alice"}, {Name: "Bob"}},
		Board: decision.BoardView{Cards: []catalog.Card{catalog.Car, catalog.GoldCoin}},
	}
	if a := r.Act(g); a.Type != decision.ActionDraw {
		t.Fatalf("expected a draw without thieves, got %s", a.Type)
	}
	g.OwnCounts[catalog.Thief] = 1
	a := r.Act(g)
	if a.Type != decision.ActionTheft {
		t.Fatalf("expected a theft, got %s", a.Type)
	}
	if len(a.Cards) != 1 || a.Cards[0] != catalog.GoldCoin {
		t.Fatalf("expected to steal the gold coin, got %v", a.Cards)
	}
	g.Board.Cards = nil
	if a := r.Act(g); a.Type != decision.ActionDraw {
		t.Fatalf("nothing to steal on an empty board, got %s", a.Type)
	}
}

func TestThiefRiskerNoRisk(t *testing.T) {
	r := NewThiefRisker("Alice", random.New(1), 0)
	g := decision.GameView{Board: decision.BoardView{Cards: []catalog.Card{catalog.Ring}}}
	g.OwnCounts[catalog.Thief] = 2
	for range 50 {
		if a := r.Act(g); a.Type != decision.ActionDraw {
			t.Fatalf("expected a draw with zero risk, got %s", a.Type)
		}
	}
}

func TestTable(t *testing.T) {
	rng := random.New(1)
	for _, s := range Strategies() {
		ds, err := Table(s, 4, rng)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
		if ds[0].Name() != "Player A" || ds[3].Name() != "Player D" {
			t.Fatalf("%s: unexpected names %s %s", s, ds[0].Name(), ds[3].Name())
		}
	}
	if _, ok := must(Seat(StrategyMixed, 1, rng)).(*SafeBidder); !ok {
		t.Fatal("odd seats of a mixed table are safe bidders")
	}
	if _, err := Seat("greedy", 0, rng); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("expected ErrUnknownStrategy, got %v", err)
	}
}

func must(d decision.Decider, err error) decision.Decider {
	if err != nil {
		panic(err)
	}
	return d
}
