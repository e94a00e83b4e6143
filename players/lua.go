package players

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/tock/protocol"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

const decideFn = "decide"

var (
	ErrNoDecideFunc = errors.New("script does not define a decide function")
	ErrBadLuaChoice = errors.New("decide did not return an index into the action space")
)

// LuaPlayer delegates its decisions to a Lua script defining
//
//	function decide(obs) ... end
//
// obs carries player, round, locs, cards, values and space; space entries
// are {card=, pawn=} tables with 0-based indices as used by Step. decide
// returns the 1-based position of the chosen entry in obs.space.
type LuaPlayer struct {
	id     string
	name   string
	logger *zap.Logger

	mu    sync.Mutex
	state *lua.LState
}

// NewLuaPlayer loads script and checks that it defines decide.
func NewLuaPlayer(id, name, script string, logger *zap.Logger) (*LuaPlayer, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	L := lua.NewState()
	if err := L.DoString(script); err != nil {
		L.Close()
		return nil, fmt.Errorf("loading script: %w", err)
	}
	if L.GetGlobal(decideFn).Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoDecideFunc
	}

	return &LuaPlayer{id: id, name: name, logger: logger, state: L}, nil
}

func (p *LuaPlayer) ID() string {
	return p.id
}

func (p *LuaPlayer) Name() string {
	return p.name
}

// Decide runs the script. A script error or an out of range choice falls
// back to the first legal action.
func (p *LuaPlayer) Decide(obs protocol.Observation) protocol.Action {
	space := obs.Info.Space
	if len(space) == 0 {
		return protocol.Action{}
	}

	idx, err := p.choose(obs)
	if err != nil {
		p.logger.Warn("lua player failed to decide",
			zap.String("player", p.name),
			zap.Error(err),
		)
		return space[0]
	}
	return space[idx]
}

// Close releases the Lua state.
func (p *LuaPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Close()
}

func (p *LuaPlayer) choose(obs protocol.Observation) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.state.CallByParam(lua.P{
		Fn:      p.state.GetGlobal(decideFn),
		NRet:    1,
		Protect: true,
	}, p.observationTable(obs))
	if err != nil {
		return 0, err
	}

	ret := p.state.Get(-1)
	p.state.Pop(1)

	n, ok := ret.(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%w: got %s", ErrBadLuaChoice, ret.Type())
	}
	idx := int(n) - 1
	if idx < 0 || idx >= len(obs.Info.Space) {
		return 0, fmt.Errorf("%w: got %d of %d", ErrBadLuaChoice, int(n), len(obs.Info.Space))
	}
	return idx, nil
}

func (p *LuaPlayer) observationTable(obs protocol.Observation) *lua.LTable {
	L := p.state
	t := L.NewTable()
	t.RawSetString("player", lua.LNumber(obs.Info.Player))
	t.RawSetString("round", lua.LNumber(obs.Info.Round))

	locs := L.NewTable()
	for _, pawns := range obs.Locs {
		row := L.NewTable()
		for _, loc := range pawns {
			row.Append(lua.LNumber(loc))
		}
		locs.Append(row)
	}
	t.RawSetString("locs", locs)

	cards := L.NewTable()
	values := L.NewTable()
	for _, c := range obs.Info.Cards {
		cards.Append(lua.LString(c.String()))
		values.Append(lua.LNumber(c.Value()))
	}
	t.RawSetString("cards", cards)
	t.RawSetString("values", values)

	space := L.NewTable()
	for _, a := range obs.Info.Space {
		entry := L.NewTable()
		entry.RawSetString("card", lua.LNumber(a.Card))
		entry.RawSetString("pawn", lua.LNumber(a.Pawn))
		space.Append(entry)
	}
	t.RawSetString("space", space)

	return t
}
