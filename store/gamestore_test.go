package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/minaorangina/tock/engine"
	utils "github.com/minaorangina/tock/internal"
	"github.com/minaorangina/tock/players"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatch(t *testing.T, gameID string) *engine.Match {
	t.Helper()

	m, err := engine.NewMatch(engine.MatchOpts{ID: gameID, Players: players.SomePlayers(2, 1), Seed: 1})
	require.NoError(t, err)
	return m
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("Constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.matches == nil {
			t.Error("matches was nil")
		}
	})

	t.Run("prevents duplicate game IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		m := newMatch(t, "thisISAnID")

		err := str.AddMatch(m)
		utils.AssertNoError(t, err)

		err = str.AddMatch(m)
		assert.ErrorIs(t, err, ErrGameExists)
	})

	t.Run("Can retrieve an existing game", func(t *testing.T) {
		m := newMatch(t, "some-game-id")
		str := NewInMemoryGameStore(m)

		got, err := str.FindMatch("some-game-id")
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, got, m)
	})

	t.Run("Handles a non-existent game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		m, err := str.FindMatch("fake-id")

		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrUnknownGameID)
	})

	t.Run("Can remove a game", func(t *testing.T) {
		str := NewInMemoryGameStore(newMatch(t, "a"), newMatch(t, "b"))

		utils.AssertNoError(t, str.RemoveMatch("a"))
		utils.AssertDeepEqual(t, str.Matches(), []string{"b"})

		assert.ErrorIs(t, str.RemoveMatch("a"), ErrUnknownGameID)
	})

	t.Run("Lists games in order", func(t *testing.T) {
		str := NewInMemoryGameStore(newMatch(t, "c"), newMatch(t, "a"), newMatch(t, "b"))
		utils.AssertDeepEqual(t, str.Matches(), []string{"a", "b", "c"})
	})

	t.Run("Handles concurrent access", func(t *testing.T) {
		str := NewInMemoryGameStore()

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			m := newMatch(t, fmt.Sprintf("game-%02d", i))
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = str.AddMatch(m)
				_, _ = str.FindMatch(m.ID())
				_ = str.Matches()
			}()
		}
		wg.Wait()

		assert.Len(t, str.Matches(), 20)
	})
}
