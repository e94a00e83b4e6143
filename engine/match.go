package engine

import (
	"context"
	"errors"
	"sync"

	"github.com/minaorangina/tock/game"
	"github.com/minaorangina/tock/players"
	"github.com/minaorangina/tock/protocol"
	"go.uber.org/zap"
)

var (
	ErrStepLimit = errors.New("step limit reached without a winner")
	ErrNoPlayers = errors.New("a match needs players")
)

// MatchOpts configures a Match
type MatchOpts struct {
	ID            string
	Players       players.Players
	Seed          int64 // 0 seeds from the clock
	MaxSteps      int   // 0 means no limit
	MaxIdleRounds int   // 0 keeps the game's default
	Logger        *zap.Logger
}

// Result summarises a finished match
type Result struct {
	Winner    int `json:"winner"`
	Steps     int `json:"steps"`
	Rounds    int `json:"rounds"`
	Fallbacks int `json:"fallbacks"`
}

// Match seats one players.Player per seat at a game and plays it out.
// It is safe for concurrent use.
type Match struct {
	id       string
	players  players.Players
	logger   *zap.Logger
	maxSteps int

	mu        sync.Mutex
	game      *game.Tock
	playState PlayState
	steps     int
	obs       protocol.Observation
}

// NewMatch constructs a match and deals the first round
func NewMatch(opts MatchOpts) (*Match, error) {
	if len(opts.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if opts.ID == "" {
		opts.ID = players.NewID()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	logger := opts.Logger.With(zap.String("match", opts.ID))

	gameOpts := []game.Option{game.WithLogger(logger)}
	if opts.Seed != 0 {
		gameOpts = append(gameOpts, game.WithSeed(opts.Seed))
	}
	if opts.MaxIdleRounds > 0 {
		gameOpts = append(gameOpts, game.WithMaxIdleRounds(opts.MaxIdleRounds))
	}

	g, err := game.New(len(opts.Players), gameOpts...)
	if err != nil {
		return nil, err
	}

	obs, err := g.Reset()
	if err != nil {
		return nil, err
	}

	return &Match{
		id:       opts.ID,
		players:  opts.Players,
		logger:   logger,
		maxSteps: opts.MaxSteps,
		game:     g,
		obs:      obs,
	}, nil
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Players() players.Players {
	return m.players
}

func (m *Match) PlayState() PlayState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playState
}

// Steps returns the number of actions played so far.
func (m *Match) Steps() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.steps
}

// Observation returns the latest observation.
func (m *Match) Observation() protocol.Observation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.obs
}

func (m *Match) Snapshot() protocol.Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.game.Snapshot()
}

// Result summarises the match so far.
func (m *Match) Result() Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result()
}

// Step plays action for the player to move. A nil action lets the player
// seated there decide.
func (m *Match) Step(action *protocol.Action) (protocol.Observation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.game.Done() {
		return m.obs, game.ErrGameOver
	}

	seat := m.obs.Info.Player
	var a protocol.Action
	if action != nil {
		a = *action
	} else {
		a = m.players[seat].Decide(m.obs)
	}

	obs, err := m.game.Step(a)
	m.obs = obs
	m.steps++
	m.playState = InProgress
	if m.game.Done() {
		m.playState = Finished
	}

	if err != nil {
		m.logger.Error("step failed", zap.Int("step", m.steps), zap.Error(err))
		return obs, err
	}

	m.logger.Debug("step",
		zap.Int("step", m.steps),
		zap.Int("player", seat),
		zap.Any("action", obs.Info.Action),
		zap.Int("next", obs.Info.Player),
	)
	if obs.Done {
		m.logger.Info("match won",
			zap.String("winner", m.players[obs.Info.Winner].Name()),
			zap.Int("steps", m.steps),
			zap.Int("round", obs.Info.Round),
		)
	}
	return obs, nil
}

// Play lets the seated players play until the match is won. onStep, if
// set, sees every observation; an error from it stops play.
func (m *Match) Play(ctx context.Context, onStep func(protocol.Observation) error) (Result, error) {
	for {
		if err := ctx.Err(); err != nil {
			return m.Result(), err
		}

		m.mu.Lock()
		done, steps := m.game.Done(), m.steps
		m.mu.Unlock()

		if done {
			return m.Result(), nil
		}
		if m.maxSteps > 0 && steps >= m.maxSteps {
			m.logger.Warn("step limit reached", zap.Int("steps", steps))
			return m.Result(), ErrStepLimit
		}

		obs, err := m.Step(nil)
		if err != nil {
			return m.Result(), err
		}

		if onStep != nil {
			if err := onStep(obs); err != nil {
				return m.Result(), err
			}
		}
	}
}

// Close releases any resources held by the seated players.
func (m *Match) Close() {
	for _, p := range m.players {
		if c, ok := p.(interface{ Close() }); ok {
			c.Close()
		}
	}
}

func (m *Match) result() Result {
	return Result{
		Winner:    m.obs.Info.Winner,
		Steps:     m.steps,
		Rounds:    m.obs.Info.Round,
		Fallbacks: m.obs.Info.Fallbacks,
	}
}
