// Package deck implements the shuffled draw pile of a game.
package deck

import (
	"errors"
	"math/rand/v2"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

// ErrDeckExhausted is returned when drawing from an empty deck. The round and
// policeman thresholds keep this from happening in a normal game, so it always
// signals an internal consistency fault.
var ErrDeckExhausted = errors.New("trying to draw from an empty deck")

// Deck is the remaining draw pile with a per-kind count of the cards left in it.
type Deck struct {
	cards  []catalog.Card
	counts catalog.Counts
}

// NewDeck builds a complete deck and shuffles it with rng.
func NewDeck(rng *rand.Rand) *Deck {
	cards := make([]catalog.Card, 0, catalog.TotalSupply())
	for _, c := range catalog.AllCards() {
		for i := 0; i < c.Supply(); i++ {
			cards = append(cards, c)
		}
	}
	d := &Deck{cards: cards, counts: catalog.CountCards(cards)}
	d.shuffle(rng)
	return d
}

// FromCards builds a deck that draws the given cards in order, first card first.
func FromCards(cards ...catalog.Card) *Deck {
	pile := make([]catalog.Card, len(cards))
	for i, c := range cards {
		pile[len(cards)-1-i] = c
	}
	return &Deck{cards: pile, counts: catalog.CountCards(cards)}
}

// Draw removes and returns the top card.
func (d *Deck) Draw() (catalog.Card, error) {
	if len(d.cards) == 0 {
		return 0, ErrDeckExhausted
	}
	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	d.counts[card]--
	return card, nil
}

// Size returns the number of cards left.
func (d *Deck) Size() int { return len(d.cards) }

// Empty reports whether the deck has no cards left.
func (d *Deck) Empty() bool { return len(d.cards) == 0 }

// Count returns how many cards of the kind are left.
func (d *Deck) Count(c catalog.Card) int { return d.counts[c] }

// Counts returns a copy of the remaining per-kind counts.
func (d *Deck) Counts() catalog.Counts { return d.counts }
