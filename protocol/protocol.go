// Package protocol defines the values exchanged between the rule engine,
// the players that choose actions and anything that observes a game.
package protocol

import "github.com/minaorangina/tock/deck"

// Pawns is the number of pawns each player owns.
const Pawns = 4

// NoWinner is reported while the game is still being played.
const NoWinner = -1

// Action plays the card at index Card of the current hand on pawn Pawn.
type Action struct {
	Card int `json:"card"`
	Pawn int `json:"pawn"`
}

// Valid reports whether the action is within bounds for a hand of handLen cards.
func (a Action) Valid(handLen int) bool {
	return a.Card >= 0 && a.Card < handLen && a.Pawn >= 0 && a.Pawn < Pawns
}

// Info describes the player to move and what they may do.
type Info struct {
	Player    int         `json:"player"`
	Cards     []deck.Card `json:"cards"`
	Space     []Action    `json:"space"`
	Action    *Action     `json:"action"`
	Round     int         `json:"round"`
	Winner    int         `json:"winner"`
	Fallbacks int         `json:"fallbacks"`
}

// Observation is returned by every reset and step.
// Locs holds the relative position of every pawn, per player.
type Observation struct {
	Locs   [][Pawns]int `json:"locs"`
	Reward *float64     `json:"reward"`
	Done   bool         `json:"done"`
	Info   Info         `json:"info"`
}

// PlayerView is a read-only copy of one player's state.
type PlayerView struct {
	Offset int         `json:"offset"`
	Locs   [Pawns]int  `json:"locs"`
	Hand   []deck.Card `json:"hand"`
}

// Snapshot is what renderers consume. It is a copy, mutating it has no
// effect on the game.
type Snapshot struct {
	Fields  int          `json:"fields"`
	Players []PlayerView `json:"players"`
	Current int          `json:"current"`
	Round   int          `json:"round"`
}
