package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/tock/deck"
	"github.com/minaorangina/tock/protocol"
	"github.com/stretchr/testify/require"
)

// startedGame returns a reset game with a fixed seed.
func startedGame(t *testing.T, nplayers int, opts ...Option) *Tock {
	t.Helper()

	g, err := New(nplayers, append([]Option{WithSeed(1)}, opts...)...)
	require.NoError(t, err)
	_, err = g.Reset()
	require.NoError(t, err)
	return g
}

// boardGame returns a game with every pawn in the start grid and empty hands,
// ready for positions to be arranged by hand.
func boardGame(t *testing.T, nplayers int) *Tock {
	t.Helper()

	g := startedGame(t, nplayers)
	for _, p := range g.players {
		p.Locs = [PawnsPerPlayer]int{}
		p.Hand = []deck.Card{}
	}
	return g
}

// setTurn gives player idx the hand and recomputes its action space.
func setTurn(g *Tock, idx int, hand ...deck.Card) {
	g.players[idx].Hand = hand
	g.current = idx
	g.space = g.LegalActions(idx)
	g.state = awaitingAction
}

// stackedDealer deals from a fixed cycle of cards.
type stackedDealer struct {
	cards []deck.Card
	next  int
	calls []int
}

func (d *stackedDealer) Deal(n int) []deck.Card {
	d.calls = append(d.calls, n)
	dealt := make([]deck.Card, 0, n)
	for len(dealt) < n {
		dealt = append(dealt, d.cards[d.next%len(d.cards)])
		d.next++
	}
	return dealt
}

func withStackedDealer(d *stackedDealer) Option {
	return WithDealer(func(int, *rand.Rand) Dealer { return d })
}

// recordingDealer wraps a real deck and remembers every deal size.
type recordingDealer struct {
	*deck.Deck
	calls []int
}

func (d *recordingDealer) Deal(n int) []deck.Card {
	d.calls = append(d.calls, n)
	return d.Deck.Deal(n)
}

func cardsOf(actions []protocol.Action, hand []deck.Card) []deck.Card {
	cards := []deck.Card{}
	for _, a := range actions {
		cards = append(cards, hand[a.Card])
	}
	return cards
}
