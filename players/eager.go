package players

import "github.com/minaorangina/tock/protocol"

// eagerValues ranks each card by how far it carries a pawn forward,
// indexed by rank. Fours move backwards, Kings only leave the start grid.
var eagerValues = [13]int{2, 3, -4, 5, 6, 7, 8, 9, 10, 11, 12, 0, 1}

// EagerPlayer always moves its most advanced pawn with its strongest card.
type EagerPlayer struct {
	id   string
	name string
}

func NewEagerPlayer(id, name string) *EagerPlayer {
	return &EagerPlayer{id: id, name: name}
}

func (p *EagerPlayer) ID() string {
	return p.id
}

func (p *EagerPlayer) Name() string {
	return p.name
}

func (p *EagerPlayer) Decide(obs protocol.Observation) protocol.Action {
	info := obs.Info
	if len(info.Space) == 0 || info.Player >= len(obs.Locs) {
		return protocol.Action{}
	}

	locs := obs.Locs[info.Player]
	best := info.Space[0]
	maxLoc, maxVal := -1, -5

	for _, action := range info.Space {
		if !action.Valid(len(info.Cards)) {
			continue
		}
		loc := locs[action.Pawn]
		val := eagerValues[info.Cards[action.Card].Rank()]
		if loc >= maxLoc && val > maxVal {
			maxLoc, maxVal, best = loc, val, action
		}
	}

	return best
}
