package players

import (
	"math/rand"
	"time"

	"github.com/minaorangina/tock/protocol"
)

// RandomPlayer picks uniformly from the legal actions.
type RandomPlayer struct {
	id   string
	name string
	rng  *rand.Rand
}

// NewRandomPlayer constructs a RandomPlayer. A nil rng is time seeded.
func NewRandomPlayer(id, name string, rng *rand.Rand) *RandomPlayer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &RandomPlayer{id: id, name: name, rng: rng}
}

func (p *RandomPlayer) ID() string {
	return p.id
}

func (p *RandomPlayer) Name() string {
	return p.name
}

func (p *RandomPlayer) Decide(obs protocol.Observation) protocol.Action {
	space := obs.Info.Space
	if len(space) == 0 {
		return protocol.Action{}
	}
	return space[p.rng.Intn(len(space))]
}
