package deck

import "math/rand/v2"

// shuffle permutes the pile in place. The draw order is fully determined by
// the generator state, which is what makes seeded games reproducible.
func (d *Deck) shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}
