package game

import (
	"github.com/minaorangina/tock/protocol"
	"go.uber.org/zap"
)

// validatePawn reports whether the pawn of p can move delta fields and, if
// execute is set, makes the move, sending captured pawns back to their
// start grid.
func (t *Tock) validatePawn(p *Player, pawn, delta int, execute bool) bool {
	loc := p.Locs[pawn]

	// nobody guards the way into home base
	if loc+delta > t.board.Fields() {
		if execute {
			p.Locs[pawn] = t.board.Home()
		}
		return true
	}

	start := t.board.Absolute(p.Offset, loc)
	stop := t.board.mod(start + delta)

	for _, other := range t.players {
		if other == p || !other.OnGate() {
			continue
		}
		gate := t.board.Absolute(other.Offset, Gate)
		if t.board.onPath(start, delta, gate) {
			return false
		}
	}

	if !execute {
		return true
	}

	for _, other := range t.players {
		if other == p {
			continue
		}
		for i, otherLoc := range other.Locs {
			if !t.board.OnTrack(otherLoc) {
				continue
			}
			if t.board.Absolute(other.Offset, otherLoc) == stop {
				other.Locs[i] = StartGrid
				t.logger.Debug("pawn captured",
					zap.Int("player", t.indexOf(other)),
					zap.Int("pawn", i),
					zap.Int("field", stop),
				)
			}
		}
	}

	p.Locs[pawn] = t.board.Advance(loc, delta)
	return true
}

// validateAction reports whether p may play action and plays it if execute is set.
func (t *Tock) validateAction(p *Player, action protocol.Action, execute bool) bool {
	if !action.Valid(len(p.Hand)) {
		return false
	}

	delta, ok := t.board.Distance(p.Hand[action.Card], p.Locs[action.Pawn])
	if !ok {
		return false
	}

	return t.validatePawn(p, action.Pawn, delta, execute)
}
