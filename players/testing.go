package players

import (
	"fmt"
	"math/rand"
)

var names = []string{"Harry", "Sally", "Hermione", "Neville", "Heloise", "Horatio"}

// APlayer returns a seeded random player
func APlayer(id, name string) Player {
	return NewRandomPlayer(id, name, rand.New(rand.NewSource(1)))
}

// SomePlayers returns n random players, each seeded from seed.
func SomePlayers(n int, seed int64) Players {
	ps := Players{}
	for i := 0; i < n; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(names) {
			name = names[i]
		}
		ps = append(ps, NewRandomPlayer(NewID(), name, rand.New(rand.NewSource(seed+int64(i)))))
	}
	return ps
}
