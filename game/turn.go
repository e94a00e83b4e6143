package game

import (
	"fmt"

	"github.com/minaorangina/tock/protocol"
	"go.uber.org/zap"
)

// LegalActions lists every (card, pawn) pair the player at idx may play,
// card-major.
func (t *Tock) LegalActions(idx int) []protocol.Action {
	p := t.players[idx]
	space := []protocol.Action{}
	for card := range p.Hand {
		for pawn := 0; pawn < PawnsPerPlayer; pawn++ {
			a := protocol.Action{Card: card, Pawn: pawn}
			if t.validateAction(p, a, false) {
				space = append(space, a)
			}
		}
	}
	return space
}

// advanceTurn hands the turn to the next player, in seating order after
// from, who has at least one legal action. Players without one lose their
// hand. When nobody can move a new round is dealt.
func (t *Tock) advanceTurn(from int) error {
	n := len(t.players)
	idle := 0

	for idx := (from + 1) % n; ; idx = (idx + 1) % n {
		if space := t.LegalActions(idx); len(space) > 0 {
			t.current = idx
			t.space = space
			t.state = awaitingAction
			return nil
		}

		if len(t.players[idx].Hand) > 0 {
			t.logger.Debug("forced pass", zap.Int("player", idx), zap.Int("cards", len(t.players[idx].Hand)))
		}
		t.players[idx].Hand = t.players[idx].Hand[:0]

		if idx != from {
			continue
		}

		if idle >= t.maxIdleRounds {
			t.state = stalled
			t.space = nil
			t.logger.Error("engine stalled", zap.Int("round", t.round+1), zap.Int("idleRounds", idle))
			return fmt.Errorf("%w after %d rounds", ErrEngineStall, idle)
		}
		idle++
		t.nextRound()
	}
}

// nextRound deals every player a fresh hand following DealOrder.
func (t *Tock) nextRound() {
	t.state = roundEnd
	t.round++
	size := DealOrder[t.round%len(DealOrder)]
	for _, p := range t.players {
		p.Hand = t.dealer.Deal(size)
	}
	t.logger.Debug("new round", zap.Int("round", t.round+1), zap.Int("cards", size))
}
