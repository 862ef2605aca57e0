// Package board holds the shared play area: the booty cards waiting for an
// auction, the displayed cheque, the policeman counter and the discard piles.
// Discarded cards never re-enter play.
package board

import (
	"fmt"
	"slices"
	"strings"

	"github.com/luca-patrignani/razzia/domain/catalog"
)

type Board struct {
	cheque             catalog.Cheque
	cards              []catalog.Card
	policemen          int
	discardedBooty     []catalog.Card
	discardedPolicemen int
}

// NewBoard returns an empty board displaying the given cheque.
func NewBoard(cheque catalog.Cheque) *Board {
	return &Board{cheque: cheque}
}

// AddCard displays a booty card.
func (b *Board) AddCard(c catalog.Card) error {
	if !c.IsBooty() {
		return fmt.Errorf("%s is not a booty card", c.Name())
	}
	b.cards = append(b.cards, c)
	return nil
}

// TakeBootyCards removes exactly the listed cards, one copy per entry. It
// fails without changing the board if any card is not displayed.
func (b *Board) TakeBootyCards(cards []catalog.Card) ([]catalog.Card, error) {
	remaining := slices.Clone(b.cards)
	for _, c := range cards {
		i := slices.Index(remaining, c)
		if i < 0 {
			return nil, fmt.Errorf("card %s is not on the board", c.Name())
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	b.cards = remaining
	return slices.Clone(cards), nil
}

// DiscardBootyCards moves every displayed booty card to the discard pile.
func (b *Board) DiscardBootyCards() {
	b.discardedBooty = append(b.discardedBooty, b.cards...)
	b.cards = nil
}

func (b *Board) AddPoliceman() { b.policemen++ }

// DiscardPolicemen moves the accumulated policemen to their discard pile.
func (b *Board) DiscardPolicemen() {
	b.discardedPolicemen += b.policemen
	b.policemen = 0
}

// ReplaceCheque displays a new cheque and returns the previous one.
func (b *Board) ReplaceCheque(c catalog.Cheque) catalog.Cheque {
	prev := b.cheque
	b.cheque = c
	return prev
}

// Cards returns a copy of the displayed booty cards.
func (b *Board) Cards() []catalog.Card { return slices.Clone(b.cards) }

// CardCounts returns the displayed booty cards counted by kind.
func (b *Board) CardCounts() catalog.Counts { return catalog.CountCards(b.cards) }

func (b *Board) NumCards() int                  { return len(b.cards) }
func (b *Board) NumPolicemen() int              { return b.policemen }
func (b *Board) NumDiscardedPolicemen() int     { return b.discardedPolicemen }
func (b *Board) NumDiscardedBooty() int         { return len(b.discardedBooty) }
func (b *Board) DiscardedBooty() []catalog.Card { return slices.Clone(b.discardedBooty) }
func (b *Board) Cheque() catalog.Cheque         { return b.cheque }

// NumAllCards returns every card the board accounts for, discards included.
func (b *Board) NumAllCards() int {
	return len(b.cards) + b.policemen + len(b.discardedBooty) + b.discardedPolicemen
}

func (b *Board) String() string {
	names := make([]string, len(b.cards))
	for i, c := range b.cards {
		names[i] = c.String()
	}
	var s strings.Builder
	fmt.Fprintf(&s, "cheque %d, policemen %d\n", b.cheque.Value(), b.policemen)
	fmt.Fprintf(&s, "%d booty cards: %s\n", len(b.cards), strings.Join(names, ", "))
	fmt.Fprintf(&s, "discarded %d policemen and %d booty cards", b.discardedPolicemen, len(b.discardedBooty))
	return s.String()
}
