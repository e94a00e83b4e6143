package game

import (
	"fmt"

	"github.com/minaorangina/tock/deck"
	"github.com/minaorangina/tock/protocol"
)

// Player holds the state of one seat
type Player struct {
	Offset int                 // absolute position of the player's start field
	Locs   [PawnsPerPlayer]int // relative position of each pawn
	Hand   []deck.Card
}

// NewPlayer puts all four pawns in the start grid.
func NewPlayer(offset int, hand []deck.Card) *Player {
	if hand == nil {
		hand = []deck.Card{}
	}
	return &Player{Offset: offset, Hand: hand}
}

// InStartGrid reports whether pawn has not entered the track yet.
func (p *Player) InStartGrid(pawn int) bool {
	return p.Locs[pawn] == StartGrid
}

// InHome reports whether pawn has reached home base.
func (p *Player) InHome(b Board, pawn int) bool {
	return p.Locs[pawn] == b.Home()
}

// OnGate reports whether one of the player's pawns is guarding its start field.
func (p *Player) OnGate() bool {
	for _, loc := range p.Locs {
		if loc == Gate {
			return true
		}
	}
	return false
}

// PawnsHome counts the pawns in home base.
func (p *Player) PawnsHome(b Board) int {
	n := 0
	for pawn := range p.Locs {
		if p.InHome(b, pawn) {
			n++
		}
	}
	return n
}

// RemoveCard drops the card at idx from the hand.
func (p *Player) RemoveCard(idx int) deck.Card {
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx:idx], p.Hand[idx+1:]...)
	return c
}

func (p *Player) view() protocol.PlayerView {
	hand := make([]deck.Card, len(p.Hand))
	copy(hand, p.Hand)
	return protocol.PlayerView{Offset: p.Offset, Locs: p.Locs, Hand: hand}
}

func (p *Player) String() string {
	return fmt.Sprintf("offset:%d | locs:%v | cards:%v", p.Offset, p.Locs, p.Hand)
}
