package engine

import (
	"bytes"
	"sync"
	"testing"

	"github.com/minaorangina/tock/players"
	"github.com/stretchr/testify/require"
)

// TestBuffer is used in tests for io
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}

func eagerPlayers(n int) players.Players {
	ps := players.Players{}
	for i := 0; i < n; i++ {
		ps = append(ps, players.NewEagerPlayer(players.NewID(), "Eager"))
	}
	return ps
}

func newTestMatch(t *testing.T, opts MatchOpts) *Match {
	t.Helper()

	if opts.Seed == 0 {
		opts.Seed = 7
	}
	m, err := NewMatch(opts)
	require.NoError(t, err)
	return m
}
