package deck

import (
	"math/rand"
	"time"
)

// Deck is a continuously reshuffled rotation of 13 cards per player.
// Cards are drawn from the current permutation until it runs out,
// then the whole set is shuffled again.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand
}

// New creates a deck of 13*nplayers unique cards.
// A nil rng is replaced by a time seeded source.
func New(nplayers int, rng *rand.Rand) *Deck {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if nplayers < 0 {
		nplayers = 0
	}

	cards := make([]Card, 0, RanksPerSuit*nplayers)
	for i := 0; i < RanksPerSuit*nplayers; i++ {
		cards = append(cards, Card(i))
	}

	// the first Deal shuffles
	return &Deck{cards: cards, next: len(cards), rng: rng}
}

// Size returns the number of distinct cards in the deck.
func (d *Deck) Size() int {
	return len(d.cards)
}

// Remaining returns how many cards are left in the current permutation.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Shuffle starts a fresh permutation of the full card set.
func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
	d.next = 0
}

// Deal deals n cards, reshuffling whenever the rotation is exhausted.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 || len(d.cards) == 0 {
		return []Card{}
	}

	dealt := make([]Card, 0, n)
	for len(dealt) < n {
		if d.next >= len(d.cards) {
			d.Shuffle()
		}
		dealt = append(dealt, d.cards[d.next])
		d.next++
	}
	return dealt
}
