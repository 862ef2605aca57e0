package analytics

import (
	"math"
	"slices"
	"testing"

	"github.com/luca-patrignani/razzia/domain/catalog"
	"github.com/luca-patrignani/razzia/domain/scoring"
)

// record scores one round with the given cards won in that round, then ends
// the game with the given cheques.
func record(t *testing.T, name string, cheques []catalog.Cheque, lo, hi int, cards ...catalog.Card) *scoring.Record {
	t.Helper()
	r := scoring.NewRecord(name)
	var held []*scoring.CardScore
	for _, c := range cards {
		held = append(held, scoring.NewCardScore(c, 1, 5, 1))
	}
	if _, err := r.ScoreRound(1, 0, 0, held); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.ScoreGameEnd(1, lo, hi, nil, cheques); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func TestWinners(t *testing.T) {
	game := map[string]*scoring.Record{
		"Alice": record(t, "Alice", []catalog.Cheque{5}, 5, 9, catalog.GoldCoin),
		"Bob":   record(t, "Bob", []catalog.Cheque{9}, 5, 9),
	}
	// Alice: -5 trinkets +3 guards +3 coin -5 cheques; Bob: -5 +3 +5.
	if w := Winners(game); !slices.Equal(w, []string{"Bob"}) {
		t.Fatalf("expected Bob to win, got %v", w)
	}
}

func TestWinnersTie(t *testing.T) {
	game := map[string]*scoring.Record{
		"Bob":   record(t, "Bob", []catalog.Cheque{5}, 5, 5),
		"Alice": record(t, "Alice", []catalog.Cheque{5}, 5, 5),
	}
	if w := Winners(game); !slices.Equal(w, []string{"Alice", "Bob"}) {
		t.Fatalf("expected a tie, got %v", w)
	}
}

func TestReport(t *testing.T) {
	r := NewReport()
	r.Add(map[string]*scoring.Record{
		"Alice": record(t, "Alice", []catalog.Cheque{5}, 5, 9, catalog.GoldCoin),
		"Bob":   record(t, "Bob", []catalog.Cheque{9}, 5, 9, catalog.Thief),
	})
	r.Add(map[string]*scoring.Record{
		"Alice": record(t, "Alice", []catalog.Cheque{9}, 5, 9, catalog.GoldCoin, catalog.GoldCoin),
		"Bob":   record(t, "Bob", []catalog.Cheque{5}, 5, 9),
	})
	r.AddAborted()

	if r.Games != 2 || r.Aborted != 1 || r.Ties != 0 {
		t.Fatalf("unexpected counters %d %d %d", r.Games, r.Aborted, r.Ties)
	}
	if r.Wins["Alice"] != 1 || r.Wins["Bob"] != 1 {
		t.Fatalf("unexpected wins %v", r.Wins)
	}
	if got := r.Players(); !slices.Equal(got, []string{"Alice", "Bob"}) {
		t.Fatalf("unexpected players %v", got)
	}
	if m, ok := r.CardMean(catalog.GoldCoin); !ok || math.Abs(m-3) > scoring.Tolerance {
		t.Fatalf("a gold coin is always worth 3, got %v", m)
	}
	if m, ok := r.CardsByRound[1][catalog.Thief].Mean(); !ok || math.Abs(m-2) > scoring.Tolerance {
		t.Fatalf("a thief is worth 2, got %v", m)
	}
	if _, ok := r.CardMean(catalog.Casino); ok {
		t.Fatal("a casino was never won")
	}
	if m, _ := r.Categories[scoring.GoldCoins].Mean(); m != 9.0/4 {
		t.Fatalf("expected 9/4 gold coin points per record, got %v", m)
	}
}
