package scoring

import (
	"errors"
	"math"
	"testing"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

func won(round int, cards ...catalog.Card) []*CardScore {
	out := make([]*CardScore, len(cards))
	for i, c := range cards {
		out[i] = NewCardScore(c, round, 5, 1)
	}
	return out
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < Tolerance }

func TestTrinketBonusTable(t *testing.T) {
	want := []int{-5, 0, 0, 5, 10, 15}
	for distinct, w := range want {
		if got := TrinketBonus(distinct); got != w {
			t.Errorf("distinct %d: expected %d, got %d", distinct, w, got)
		}
	}
}

func TestGuardAdjustment(t *testing.T) {
	cases := []struct {
		count, lo, hi, want int
	}{
		{0, 0, 3, -2},
		{3, 0, 3, 5},
		{2, 2, 2, 3},
		{1, 0, 3, 0},
	}
	for _, c := range cases {
		if got := GuardAdjustment(c.count, c.lo, c.hi); got != c.want {
			t.Errorf("GuardAdjustment(%d, %d, %d): expected %d, got %d", c.count, c.lo, c.hi, c.want, got)
		}
	}
}

func TestRoundBreakdown(t *testing.T) {
	counts := catalog.CountCards([]catalog.Card{
		catalog.Ring, catalog.Ring, catalog.Watch, catalog.Diamond,
		catalog.Bodyguard, catalog.Bodyguard,
		catalog.Car, catalog.Car, catalog.Car,
		catalog.Driver, catalog.Driver,
		catalog.Thief, catalog.GoldCoin,
	})
	b := RoundBreakdown(counts, 0, 2)
	want := Breakdown{Trinkets: 5, Bodyguards: 5, Cars: 3, Drivers: 2, GoldCoins: 3, Thieves: 2}
	if b != want {
		t.Fatalf("expected %v, got %v", want, b)
	}
}

func TestCarsNeedADriver(t *testing.T) {
	counts := catalog.CountCards([]catalog.Card{catalog.Car, catalog.Car})
	if b := RoundBreakdown(counts, 0, 0); b[Cars] != 0 {
		t.Fatalf("cars without a driver must score 0, got %d", b[Cars])
	}
}

func TestBusinessScore(t *testing.T) {
	cards := catalog.BusinessCards()
	cards = append(cards, catalog.Casino, catalog.Casino)
	if got := BusinessScore(catalog.CountCards(cards)); got != 15 {
		t.Fatalf("expected 7 + 3 + 5 = 15, got %d", got)
	}
	four := catalog.CountCards([]catalog.Card{catalog.Film, catalog.Film, catalog.Film, catalog.Film})
	if got := BusinessScore(four); got != 11 {
		t.Fatalf("expected 1 + 10 = 11, got %d", got)
	}
}

// TestScoreRoundAttribution checks per-card shares against the category totals.
func TestScoreRoundAttribution(t *testing.T) {
	r := NewRecord("A")
	cards := won(1,
		catalog.Ring, catalog.Ring, catalog.Watch, catalog.Diamond,
		catalog.Bodyguard, catalog.Bodyguard,
		catalog.Car, catalog.Car, catalog.Car,
		catalog.Driver, catalog.Driver,
		catalog.Thief, catalog.GoldCoin,
	)
	b, err := r.ScoreRound(1, 0, 2, cards)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Total() != 20 || r.Total() != 20 {
		t.Fatalf("expected round total 20, got %d (record %d)", b.Total(), r.Total())
	}
	if err := r.Reconcile(Tolerance); err != nil {
		t.Fatalf("reconcile: %v", err)
	}

	wantPoints := map[catalog.Card]float64{
		catalog.Ring:      10.0 / 3 / 2,
		catalog.Watch:     10.0 / 3,
		catalog.Diamond:   10.0 / 3,
		catalog.Bodyguard: 3.5,
		catalog.Car:       0.5,
		catalog.Driver:    1.75,
		catalog.Thief:     2,
		catalog.GoldCoin:  3,
	}
	for _, c := range cards {
		if !almostEqual(c.Points(), wantPoints[c.Card]) {
			t.Errorf("%s: expected %f points, got %f", c.Card.Name(), wantPoints[c.Card], c.Points())
		}
	}
	driver := cards[9]
	if !almostEqual(driver.PointsIn(Drivers), 1) || !almostEqual(driver.PointsIn(Cars), 0.75) {
		t.Errorf("driver split: drivers %f, cars %f", driver.PointsIn(Drivers), driver.PointsIn(Cars))
	}
}

// TestGuardAttributionBaseline covers every combination of low and high.
func TestGuardAttributionBaseline(t *testing.T) {
	cases := []struct {
		name     string
		count    int
		lo, hi   int
		perCard  float64
		category int
	}{
		{"low and high", 2, 2, 2, 5.0 / 2, 3},
		{"low only", 1, 1, 4, 0, -2},
		{"high only", 4, 0, 4, 7.0 / 4, 5},
		{"neither", 2, 0, 4, 1, 0},
		{"none held", 0, 0, 4, 0, -2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cards := make([]catalog.Card, c.count)
			for i := range cards {
				cards[i] = catalog.Bodyguard
			}
			r := NewRecord("A")
			held := won(1, cards...)
			b, err := r.ScoreRound(1, c.lo, c.hi, held)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b[Bodyguards] != c.category {
				t.Fatalf("expected category %d, got %d", c.category, b[Bodyguards])
			}
			for _, h := range held {
				if !almostEqual(h.Points(), c.perCard) {
					t.Errorf("expected %f per card, got %f", c.perCard, h.Points())
				}
			}
			if err := r.Reconcile(Tolerance); err != nil {
				t.Fatalf("reconcile: %v", err)
			}
		})
	}
}

func TestEmptyHandRound(t *testing.T) {
	r := NewRecord("A")
	b, err := r.ScoreRound(1, 0, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[Trinkets] != -5 || b[Bodyguards] != -2 {
		t.Fatalf("unexpected empty-hand breakdown %v", b)
	}
	if err := r.Reconcile(Tolerance); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !almostEqual(r.AdjustedCardScore(), -7) || r.CardPoints() != 0 {
		t.Fatalf("unexpected card scores: adjusted %f, cards %f", r.AdjustedCardScore(), r.CardPoints())
	}
}

func TestScoreGameEnd(t *testing.T) {
	r := NewRecord("A")
	cards := catalog.BusinessCards()
	cards = append(cards, catalog.Casino, catalog.Casino)
	held := won(1, cards...)
	if _, err := r.ScoreRound(1, 0, 0, held); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cheques := []catalog.Cheque{2, 6, 13}
	b, err := r.ScoreGameEnd(3, 21, 30, held, cheques)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b[Businesses] != 15 || b[Cheques] != -5 {
		t.Fatalf("unexpected game-end breakdown %v", b)
	}
	casino := (1 + 3.0/7 + 5) / 3
	film := 1 + 3.0/7
	for _, h := range held {
		want := film
		if h.Card == catalog.Casino {
			want = casino
		}
		if !almostEqual(h.PointsIn(Businesses), want) {
			t.Errorf("%s: expected %f, got %f", h.Card.Name(), want, h.PointsIn(Businesses))
		}
	}
	if len(r.Cheques()) != 3 {
		t.Fatalf("expected 3 scored cheques, got %d", len(r.Cheques()))
	}
	for _, cs := range r.Cheques() {
		if !almostEqual(cs.Points, -5.0/3) {
			t.Errorf("cheque %d: expected %f, got %f", cs.Cheque, -5.0/3, cs.Points)
		}
	}
	if !almostEqual(r.ChequePoints(), -5) {
		t.Fatalf("expected cheque points -5, got %f", r.ChequePoints())
	}
	if err := r.Reconcile(Tolerance); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !r.Final() {
		t.Fatal("record must be final after game-end scoring")
	}
	if _, err := r.ScoreRound(4, 0, 0, held); !errors.Is(err, ErrFinalized) {
		t.Fatalf("expected ErrFinalized, got %v", err)
	}
}

// TestPermanentCardsAccumulate scores the same bodyguards over two rounds.
func TestPermanentCardsAccumulate(t *testing.T) {
	r := NewRecord("A")
	held := won(1, catalog.Bodyguard, catalog.Bodyguard)
	if _, err := r.ScoreRound(1, 0, 2, held); err != nil {
		t.Fatal(err)
	}
	if _, err := r.ScoreRound(2, 2, 2, held); err != nil {
		t.Fatal(err)
	}
	if len(r.Cards()) != 2 {
		t.Fatalf("cards must be tracked once, got %d", len(r.Cards()))
	}
	if r.ByCategory()[Bodyguards] != 8 {
		t.Fatalf("expected 5 + 3 bodyguard points, got %d", r.ByCategory()[Bodyguards])
	}
	if len(r.Rounds()) != 2 {
		t.Fatalf("expected 2 round breakdowns, got %d", len(r.Rounds()))
	}
	if err := r.Reconcile(Tolerance); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
}

func TestForecast(t *testing.T) {
	counts := catalog.CountCards([]catalog.Card{
		catalog.Bodyguard, catalog.Bodyguard, catalog.Ring, catalog.Casino,
	})
	b := Forecast(counts, 0, 1, 2)
	// Guards: highest at 2 -> +5 now and in both remaining rounds.
	if b[Bodyguards] != 15 {
		t.Errorf("expected bodyguards 15, got %d", b[Bodyguards])
	}
	// Trinkets: one kind scores 0 now, then -5 per remaining round.
	if b[Trinkets] != -10 {
		t.Errorf("expected trinkets -10, got %d", b[Trinkets])
	}
	if b[Businesses] != 1 {
		t.Errorf("expected businesses 1, got %d", b[Businesses])
	}
}

func TestMarginalBoundsIncludeSelf(t *testing.T) {
	var counts catalog.Counts
	// Opponents hold 1 guard each: with none we are the fewest.
	m := MarginalCardScore(counts, catalog.Bodyguard, 1, 1, 0)
	// Before: count 0, bounds [0,1] -> -2. After: count 1, bounds [1,1] -> +3.
	if m[Bodyguards] != 5 {
		t.Fatalf("expected guard marginal 5, got %d", m[Bodyguards])
	}
}

// TestMarginalCategoryIndependence checks unrelated categories do not leak
// into each other's marginal value.
func TestMarginalCategoryIndependence(t *testing.T) {
	base := catalog.CountCards([]catalog.Card{catalog.Bodyguard, catalog.Ring, catalog.Watch})
	withTrinket := base.Add(catalog.Diamond)

	guardBefore := MarginalCardScore(base, catalog.Bodyguard, 1, 3, 1)
	guardAfter := MarginalCardScore(withTrinket, catalog.Bodyguard, 1, 3, 1)
	if guardBefore[Bodyguards] != 4 {
		t.Fatalf("expected guard marginal 4, got %d", guardBefore[Bodyguards])
	}
	if guardBefore[Bodyguards] != guardAfter[Bodyguards] {
		t.Fatalf("trinket changed guard marginal: %d vs %d", guardBefore[Bodyguards], guardAfter[Bodyguards])
	}

	trinket := MarginalCardScore(base, catalog.Diamond, 1, 3, 1)
	if trinket[Trinkets] != 5 {
		t.Fatalf("expected trinket marginal 5, got %d", trinket[Trinkets])
	}
	for _, cat := range Categories() {
		if cat != Trinkets && trinket[cat] != 0 {
			t.Errorf("trinket gain moved %s by %d", cat, trinket[cat])
		}
	}
}

func TestMarginalCardsScoreBatch(t *testing.T) {
	var counts catalog.Counts
	m := MarginalCardsScore(counts, []catalog.Card{catalog.Driver, catalog.Car, catalog.Car}, 0, 0, 0)
	if m[Drivers] != 1 || m[Cars] != 2 {
		t.Fatalf("unexpected batch marginal %v", m)
	}
}
