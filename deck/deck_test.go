package deck

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestDeck(t *testing.T) {
	for _, nplayers := range []int{2, 4, 6} {
		d := New(nplayers, seeded(1))
		assert.Equal(t, RanksPerSuit*nplayers, d.Size())
	}
}

func TestDeal(t *testing.T) {
	t.Run("deals exactly n cards", func(t *testing.T) {
		d := New(2, seeded(7))
		for _, n := range []int{5, 4, 4, 1, 0} {
			assert.Len(t, d.Deal(n), n)
		}
	})

	t.Run("negative n deals nothing", func(t *testing.T) {
		d := New(2, seeded(7))
		assert.Empty(t, d.Deal(-1))
	})

	t.Run("no card repeats within one pass", func(t *testing.T) {
		for _, nplayers := range []int{2, 4, 6} {
			d := New(nplayers, seeded(int64(nplayers)))
			seen := map[Card]struct{}{}

			// deal the whole pass in round sized chunks
			for dealt := 0; dealt < d.Size(); {
				n := 5
				if d.Size()-dealt < n {
					n = d.Size() - dealt
				}
				for _, c := range d.Deal(n) {
					_, dup := seen[c]
					require.False(t, dup, "card %d dealt twice", c)
					require.True(t, c >= 0 && int(c) < d.Size())
					seen[c] = struct{}{}
				}
				dealt += n
			}
			assert.Len(t, seen, d.Size())
			assert.Equal(t, 0, d.Remaining())
		}
	})

	t.Run("reshuffles mid deal", func(t *testing.T) {
		d := New(2, seeded(3))
		first := d.Deal(d.Size() - 2)
		assert.Equal(t, 2, d.Remaining())

		cards := d.Deal(5)
		require.Len(t, cards, 5)
		assert.Equal(t, d.Size()-3, d.Remaining())

		// the two cards left over from the first pass complete it
		pass := map[Card]struct{}{}
		for _, c := range append(first, cards[:2]...) {
			pass[c] = struct{}{}
		}
		assert.Len(t, pass, d.Size())
	})

	t.Run("same seed deals the same cards", func(t *testing.T) {
		a, b := New(4, seeded(99)), New(4, seeded(99))
		assert.Equal(t, a.Deal(30), b.Deal(30))
	})

	t.Run("empty deck never blocks", func(t *testing.T) {
		d := New(0, seeded(1))
		assert.Empty(t, d.Deal(3))
	})
}
