package game

import (
	"github.com/minaorangina/tock/deck"
	"github.com/minaorangina/tock/protocol"
)

const (
	// PlacesPerSegment is the number of track fields each player contributes.
	PlacesPerSegment = 16
	// PawnsPerPlayer is the number of pawns each player moves around the track.
	PawnsPerPlayer = protocol.Pawns

	// StartGrid is the relative position of a pawn that has not entered the track.
	StartGrid = 0
	// Gate is the relative position of a player's own start field.
	Gate = 1
)

// Board holds the circular geometry of a game.
// Relative positions are 0 (start grid), 1..Fields() (track) and Home().
// Absolute positions are track indices in [0, Fields()).
type Board struct {
	nplayers int
	nfields  int
}

// NewBoard returns the board for nplayers players.
func NewBoard(nplayers int) Board {
	return Board{nplayers: nplayers, nfields: nplayers * PlacesPerSegment}
}

// Fields returns the number of shared track fields.
func (b Board) Fields() int { return b.nfields }

// Home returns the home base sentinel.
func (b Board) Home() int { return b.nfields + 1 }

// Offset returns the absolute start field of player idx.
func (b Board) Offset(idx int) int { return idx * PlacesPerSegment }

func (b Board) mod(x int) int {
	m := x % b.nfields
	if m < 0 {
		m += b.nfields
	}
	return m
}

// Absolute converts a relative track position of the player starting at
// offset into an absolute board position.
func (b Board) Absolute(offset, relative int) int {
	return b.mod(offset + relative)
}

// Wrap normalises any position onto the relative track 1..Fields().
func (b Board) Wrap(x int) int {
	return b.mod(x-1) + 1
}

// Advance moves a pawn at relative position loc delta steps.
// Moving past the last field lands in home base; moving backwards past
// the gate wraps around to the far end of the track.
func (b Board) Advance(loc, delta int) int {
	if loc+delta > b.nfields {
		return b.Home()
	}
	return b.Wrap(loc + delta)
}

// OnTrack reports whether loc is a track position.
func (b Board) OnTrack(loc int) bool {
	return loc >= Gate && loc <= b.nfields
}

// onPath reports whether the absolute field lies on the path swept by a
// move of delta steps from absolute start. The start field is excluded and
// the destination included, in the direction of travel.
func (b Board) onPath(start, delta, field int) bool {
	switch {
	case delta > 0:
		d := b.mod(field - start)
		return d >= 1 && d <= delta
	case delta < 0:
		d := b.mod(start - field)
		return d >= 1 && d <= -delta
	}
	return false
}

// Distance returns how far card moves a pawn at relative position loc.
// A four moves back four fields, Kings only bring a pawn out of the start
// grid and Aces either bring one out or move it a single field.
func (b Board) Distance(card deck.Card, loc int) (int, bool) {
	rank := card.Rank()

	switch {
	case loc == StartGrid:
		if rank == deck.King || rank == deck.Ace {
			return 1, true
		}
		return 0, false

	case loc > b.nfields:
		return 0, false
	}

	switch rank {
	case deck.Four:
		return -4, true
	case deck.Ace:
		return 1, true
	case deck.King:
		return 0, false
	}
	return card.Value(), true
}
