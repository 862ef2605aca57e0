package catalog

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card is a card kind. The zero value is not a valid kind.
type Card uint8

const (
	Policeman Card = iota + 1
	Ring
	Watch
	Brooch
	Chain
	Diamond
	Bodyguard
	Car
	Driver
	Thief
	GoldCoin
	Casino
	Transportation
	Film
	HorseRacing
	RealEstate
	NightClub
	Restaurant
)

// NumCards is one past the highest card kind, handy for sizing count arrays.
const NumCards = int(Restaurant) + 1

type cardInfo struct {
	name      string
	supply    int
	trinket   bool
	business  bool
	permanent bool
}

var cardTable = [NumCards]cardInfo{
	Policeman:      {"Policeman", 21, false, false, false},
	Ring:           {"Ring", 4, true, false, false},
	Watch:          {"Watch", 4, true, false, false},
	Brooch:         {"Brooch", 4, true, false, false},
	Chain:          {"Chain", 4, true, false, false},
	Diamond:        {"Diamond", 4, true, false, false},
	Bodyguard:      {"Bodyguard", 16, false, false, true},
	Car:            {"Car", 16, false, false, true},
	Driver:         {"Driver", 10, false, false, false},
	Thief:          {"Thief", 6, false, false, false},
	GoldCoin:       {"GoldCoin", 3, false, false, false},
	Casino:         {"Casino", 4, false, true, true},
	Transportation: {"Transportation", 4, false, true, true},
	Film:           {"Film", 4, false, true, true},
	HorseRacing:    {"HorseRacing", 4, false, true, true},
	RealEstate:     {"RealEstate", 4, false, true, true},
	NightClub:      {"NightClub", 4, false, true, true},
	Restaurant:     {"Restaurant", 4, false, true, true},
}

var (
	allCards      []Card
	bootyCards    []Card
	trinketCards  []Card
	businessCards []Card
	totalSupply   int
)

func init() {
	for c := Policeman; c <= Restaurant; c++ {
		allCards = append(allCards, c)
		totalSupply += c.Supply()
		if c != Policeman {
			bootyCards = append(bootyCards, c)
		}
		if c.IsTrinket() {
			trinketCards = append(trinketCards, c)
		}
		if c.IsBusiness() {
			businessCards = append(businessCards, c)
		}
	}
}

// Valid reports whether c is one of the catalog kinds.
func (c Card) Valid() bool {
	return c >= Policeman && c <= Restaurant
}

// Supply returns the number of copies of the kind in a full deck.
func (c Card) Supply() int {
	if !c.Valid() {
		return 0
	}
	return cardTable[c].supply
}

func (c Card) IsTrinket() bool  { return c.Valid() && cardTable[c].trinket }
func (c Card) IsBusiness() bool { return c.Valid() && cardTable[c].business }

// IsPermanent reports whether cards of this kind stay with their owner across
// rounds instead of being archived after round scoring.
func (c Card) IsPermanent() bool { return c.Valid() && cardTable[c].permanent }

// IsBooty reports whether the card is displayed on the board when drawn.
func (c Card) IsBooty() bool { return c.Valid() && c != Policeman }

// Name returns the plain kind name without terminal styling.
func (c Card) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
	return cardTable[c].name
}

// String returns the kind name coloured by category for terminal output.
func (c Card) String() string {
	name := c.Name()
	switch {
	case !c.Valid():
		return name
	case c == Policeman:
		return pterm.LightBlue(name)
	case c.IsTrinket():
		return pterm.LightMagenta(name)
	case c.IsBusiness():
		return pterm.LightGreen(name)
	case c == GoldCoin:
		return pterm.LightYellow(name)
	default:
		return pterm.LightCyan(name)
	}
}

// AllCards returns every kind in catalog order.
func AllCards() []Card { return append([]Card(nil), allCards...) }

// BootyCards returns every kind except the policeman.
func BootyCards() []Card { return append([]Card(nil), bootyCards...) }

func TrinketCards() []Card  { return append([]Card(nil), trinketCards...) }
func BusinessCards() []Card { return append([]Card(nil), businessCards...) }

// TotalSupply is the number of cards in a complete deck.
func TotalSupply() int { return totalSupply }

// Counts is a per-kind card count indexed by Card.
type Counts [NumCards]int

// CountCards tallies cards by kind.
func CountCards(cards []Card) Counts {
	var counts Counts
	for _, c := range cards {
		counts[c]++
	}
	return counts
}

// Add returns a copy of the counts with one more copy of each given card.
func (c Counts) Add(cards ...Card) Counts {
	for _, card := range cards {
		c[card]++
	}
	return c
}

// Total returns the number of cards counted.
func (c Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// Distinct returns how many of the given kinds have at least one copy.
func (c Counts) Distinct(kinds []Card) int {
	n := 0
	for _, k := range kinds {
		if c[k] > 0 {
			n++
		}
	}
	return n
}
