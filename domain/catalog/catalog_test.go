package catalog

import (
	"errors"
	"testing"
)

func TestTotalSupply(t *testing.T) {
	if got := TotalSupply(); got != 120 {
		t.Fatalf("expected total supply 120, got %d", got)
	}
}

func TestCategoryFlags(t *testing.T) {
	if n := len(TrinketCards()); n != 5 {
		t.Errorf("expected 5 trinket kinds, got %d", n)
	}
	if n := len(BusinessCards()); n != 7 {
		t.Errorf("expected 7 business kinds, got %d", n)
	}
	for _, c := range BusinessCards() {
		if c.Supply() != 4 || !c.IsPermanent() {
			t.Errorf("%s: expected 4 permanent copies", c.Name())
		}
	}
	for _, c := range TrinketCards() {
		if c.Supply() != 4 || c.IsPermanent() {
			t.Errorf("%s: expected 4 non-permanent copies", c.Name())
		}
	}
	if !Bodyguard.IsPermanent() || !Car.IsPermanent() {
		t.Error("bodyguards and cars must be permanent")
	}
	if Driver.IsPermanent() || Thief.IsPermanent() || GoldCoin.IsPermanent() {
		t.Error("drivers, thieves and gold coins are archived every round")
	}
	if Policeman.IsBooty() {
		t.Error("policeman is not a booty card")
	}
	if Card(0).Valid() || Card(NumCards).Valid() {
		t.Error("out of range kinds must be invalid")
	}
}

// TestStartingChequesDisjoint checks that no two seats share a cheque and the
// board cheque is never dealt.
func TestStartingChequesDisjoint(t *testing.T) {
	for n := MinPlayers; n <= MaxPlayers; n++ {
		sets, err := StartingCheques(n)
		if err != nil {
			t.Fatalf("players %d: %v", n, err)
		}
		if len(sets) != n {
			t.Fatalf("players %d: expected %d sets, got %d", n, n, len(sets))
		}
		seen := map[Cheque]bool{StartingCheque: true}
		for _, set := range sets {
			for _, c := range set {
				if seen[c] {
					t.Errorf("players %d: cheque %d dealt twice", n, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestStartingChequesReturnsCopies(t *testing.T) {
	a, _ := StartingCheques(4)
	a[0][0] = 16
	b, _ := StartingCheques(4)
	if b[0][0] != 2 {
		t.Fatalf("starting sets were mutated through a returned slice")
	}
}

func TestStartingChequesUnsupported(t *testing.T) {
	for _, n := range []int{0, 1, 6} {
		if _, err := StartingCheques(n); !errors.Is(err, ErrUnsupportedPlayerCount) {
			t.Errorf("players %d: expected ErrUnsupportedPlayerCount, got %v", n, err)
		}
	}
}

func TestCountsHelpers(t *testing.T) {
	counts := CountCards([]Card{Ring, Ring, Watch, Casino})
	if counts[Ring] != 2 || counts.Total() != 4 {
		t.Fatalf("unexpected counts %v", counts)
	}
	if d := counts.Distinct(TrinketCards()); d != 2 {
		t.Errorf("expected 2 distinct trinkets, got %d", d)
	}
	more := counts.Add(Diamond)
	if counts[Diamond] != 0 || more[Diamond] != 1 {
		t.Errorf("Add must not mutate the receiver")
	}
}

func TestNewCheque(t *testing.T) {
	if _, err := NewCheque(0); err == nil {
		t.Error("expected error for cheque 0")
	}
	if _, err := NewCheque(17); err == nil {
		t.Error("expected error for cheque 17")
	}
	c, err := NewCheque(9)
	if err != nil || c.Value() != 9 {
		t.Errorf("unexpected cheque %v, %v", c, err)
	}
	if top, ok := HighestCheque([]Cheque{3, 12, 7}); !ok || top != 12 {
		t.Errorf("expected highest 12, got %v", top)
	}
	if _, ok := HighestCheque(nil); ok {
		t.Error("empty list has no highest cheque")
	}
}
