package deck

import "fmt"

// RanksPerSuit is the number of ranks in one suit of a Tock deck.
const RanksPerSuit = 13

// Rank represents a rank in a deck of cards
type Rank int

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankNames = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return rankNames[r]
}

// Suit represents a suit in a deck of cards.
// Six player games use six suits, the last two repeat the red and black glyphs.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"♣", "♢", "♡", "♠", "♡", "♠"}

func (s Suit) String() string {
	if s < 0 || int(s) >= len(suitNames) {
		return "?"
	}
	return suitNames[s]
}

// Card is a card identifier in [0, 13*nplayers).
type Card int

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card(int(suit)*RanksPerSuit + int(rank))
}

// Rank returns a card's rank
func (c Card) Rank() Rank {
	return Rank(int(c) % RanksPerSuit)
}

// Suit returns a card's suit
func (c Card) Suit() Suit {
	return Suit(int(c) / RanksPerSuit)
}

// Value returns the face value of the card, 2 through 14 (Ace).
func (c Card) Value() int {
	return int(c.Rank()) + 2
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Suit(), c.Rank())
}
