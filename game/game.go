// Package game implements the rules of Tock: pawn movement on the shared
// circular track, captures, blocking, turn order, round dealing and the win
// condition.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/tock/deck"
	"github.com/minaorangina/tock/protocol"
	"go.uber.org/zap"
)

// DealOrder is the number of cards dealt to every player per round, cycling.
var DealOrder = [3]int{5, 4, 4}

const defaultMaxIdleRounds = 100

// Dealer hands out freshly drawn cards.
type Dealer interface {
	Deal(n int) []deck.Card
}

// Tock is a single game. It is not safe for concurrent use.
type Tock struct {
	board   Board
	players []*Player
	dealer  Dealer
	rng     *rand.Rand
	logger  *zap.Logger

	newDealer     func(nplayers int, rng *rand.Rand) Dealer
	maxIdleRounds int

	current    int
	space      []protocol.Action
	lastAction *protocol.Action
	round      int
	fallbacks  int
	state      State
}

// Option configures a game
type Option func(*Tock)

// WithSeed makes the game deterministic.
func WithSeed(seed int64) Option {
	return func(t *Tock) { t.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the source used for shuffling and fallback actions.
func WithRand(rng *rand.Rand) Option {
	return func(t *Tock) { t.rng = rng }
}

// WithLogger sets the logger. Games are silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tock) { t.logger = logger }
}

// WithMaxIdleRounds caps how many consecutive re-deals may leave every
// player without a legal action before the game reports ErrEngineStall.
func WithMaxIdleRounds(n int) Option {
	return func(t *Tock) { t.maxIdleRounds = n }
}

// WithDealer replaces the shuffled deck, one dealer per reset.
func WithDealer(fn func(nplayers int, rng *rand.Rand) Dealer) Option {
	return func(t *Tock) { t.newDealer = fn }
}

// New constructs a game for 2, 4 or 6 players. Call Reset to start it.
func New(nplayers int, opts ...Option) (*Tock, error) {
	if nplayers != 2 && nplayers != 4 && nplayers != 6 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidPlayerCount, nplayers)
	}

	t := &Tock{
		board:         NewBoard(nplayers),
		maxIdleRounds: defaultMaxIdleRounds,
		state:         notStarted,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	if t.newDealer == nil {
		t.newDealer = func(nplayers int, rng *rand.Rand) Dealer {
			return deck.New(nplayers, rng)
		}
	}

	return t, nil
}

// Reset starts a fresh game: a new deck, every pawn in its start grid and
// the first round dealt.
func (t *Tock) Reset() (protocol.Observation, error) {
	nplayers := t.board.nplayers

	t.round = 0
	t.fallbacks = 0
	t.lastAction = nil
	t.dealer = t.newDealer(nplayers, t.rng)

	t.players = make([]*Player, nplayers)
	for i := range t.players {
		t.players[i] = NewPlayer(t.board.Offset(i), t.dealer.Deal(DealOrder[0]))
	}
	t.state = awaitingAction

	if err := t.advanceTurn(nplayers - 1); err != nil {
		return t.observation(), err
	}

	t.logger.Info("game reset",
		zap.Int("players", nplayers),
		zap.Int("fields", t.board.Fields()),
		zap.Int("first", t.current),
	)
	return t.observation(), nil
}

// Step plays action for the player to move. An action outside the current
// legal action space is replaced by one chosen uniformly at random from it.
func (t *Tock) Step(action protocol.Action) (protocol.Observation, error) {
	switch {
	case t.state == notStarted:
		return protocol.Observation{}, ErrNotStarted
	case t.state.Terminal():
		return t.observation(), ErrGameOver
	}

	if !t.legal(action) {
		fallback := t.space[t.rng.Intn(len(t.space))]
		t.logger.Debug("illegal action replaced",
			zap.Int("player", t.current),
			zap.Any("requested", action),
			zap.Any("played", fallback),
		)
		action = fallback
		t.fallbacks++
	}

	p := t.players[t.current]
	t.validateAction(p, action, true)
	p.RemoveCard(action.Card)
	t.lastAction = &action

	if winner := t.Winner(); winner != protocol.NoWinner {
		t.state = gameOver
		t.space = nil
		t.logger.Info("game over", zap.Int("winner", winner), zap.Int("round", t.round+1))
		return t.observation(), nil
	}

	if err := t.advanceTurn(t.current); err != nil {
		return t.observation(), err
	}
	return t.observation(), nil
}

// Winner returns the index of the player with all pawns in home base, or
// protocol.NoWinner.
func (t *Tock) Winner() int {
	for i, p := range t.players {
		if p.PawnsHome(t.board) == PawnsPerPlayer {
			return i
		}
	}
	return protocol.NoWinner
}

// Done reports whether the game has finished.
func (t *Tock) Done() bool { return t.state.Terminal() }

// State returns the lifecycle state.
func (t *Tock) State() State { return t.state }

// Board returns the geometry of the game.
func (t *Tock) Board() Board { return t.board }

// Current returns the index of the player to move.
func (t *Tock) Current() int { return t.current }

// Round returns the 1-based round number.
func (t *Tock) Round() int { return t.round + 1 }

// Observation returns the observation for the current state without changing it.
func (t *Tock) Observation() protocol.Observation { return t.observation() }

// Snapshot returns a read-only copy of the game for renderers.
func (t *Tock) Snapshot() protocol.Snapshot {
	s := protocol.Snapshot{
		Fields:  t.board.Fields(),
		Players: make([]protocol.PlayerView, len(t.players)),
		Current: t.current,
		Round:   t.round + 1,
	}
	for i, p := range t.players {
		s.Players[i] = p.view()
	}
	return s
}

func (t *Tock) legal(action protocol.Action) bool {
	for _, a := range t.space {
		if a == action {
			return true
		}
	}
	return false
}

func (t *Tock) indexOf(p *Player) int {
	for i, other := range t.players {
		if other == p {
			return i
		}
	}
	return -1
}

func (t *Tock) observation() protocol.Observation {
	obs := protocol.Observation{
		Locs: make([][protocol.Pawns]int, len(t.players)),
		Done: t.state == gameOver,
		Info: protocol.Info{
			Player:    t.current,
			Cards:     []deck.Card{},
			Space:     make([]protocol.Action, len(t.space)),
			Round:     t.round + 1,
			Winner:    t.Winner(),
			Fallbacks: t.fallbacks,
		},
	}
	for i, p := range t.players {
		obs.Locs[i] = p.Locs
	}
	copy(obs.Info.Space, t.space)
	if t.current < len(t.players) {
		obs.Info.Cards = append(obs.Info.Cards, t.players[t.current].Hand...)
	}
	if t.lastAction != nil {
		a := *t.lastAction
		obs.Info.Action = &a
	}
	return obs
}
