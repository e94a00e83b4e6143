package server

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/tock/players"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

const (
	defaultPlayers = 4

	policyRandom = "random"
	policyEager  = "eager"
	policyLua    = "lua"
)

var (
	ErrUnknownPolicy   = errors.New("unknown policy")
	ErrMissingScript   = errors.New("lua policy needs a script")
	ErrTooManyPolicies = errors.New("more policies than players")
)

func NewID() string {
	return uuid.NewV4().String()
}

// newPlayers seats one player per seat. Seats without a policy play randomly.
func newPlayers(req NewGameReq, logger *zap.Logger) (players.Players, error) {
	n := req.Players
	if n == 0 {
		n = defaultPlayers
	}
	if len(req.Policies) > n {
		return nil, fmt.Errorf("%w: %d policies for %d players", ErrTooManyPolicies, len(req.Policies), n)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ps := players.Players{}
	for i := 0; i < n; i++ {
		policy := policyRandom
		if i < len(req.Policies) {
			policy = req.Policies[i]
		}

		id := players.NewID()
		name := fmt.Sprintf("%s %d", policy, i+1)

		switch policy {
		case policyRandom:
			ps = append(ps, players.NewRandomPlayer(id, name, rand.New(rand.NewSource(seed+int64(i)))))
		case policyEager:
			ps = append(ps, players.NewEagerPlayer(id, name))
		case policyLua:
			if req.Script == "" {
				closePlayers(ps)
				return nil, ErrMissingScript
			}
			p, err := players.NewLuaPlayer(id, name, req.Script, logger)
			if err != nil {
				closePlayers(ps)
				return nil, err
			}
			ps = append(ps, p)
		default:
			closePlayers(ps)
			return nil, fmt.Errorf("%w %q", ErrUnknownPolicy, policy)
		}
	}
	return ps, nil
}

func closePlayers(ps players.Players) {
	for _, p := range ps {
		if c, ok := p.(interface{ Close() }); ok {
			c.Close()
		}
	}
}
