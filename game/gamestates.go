package game

// State represents where the game is in its lifecycle
type State int

const (
	notStarted State = iota
	awaitingAction
	roundEnd
	gameOver
	stalled
)

var stateNames = map[State]string{
	notStarted:     "NotStarted",
	awaitingAction: "AwaitingAction",
	roundEnd:       "RoundEnd",
	gameOver:       "GameOver",
	stalled:        "Stalled",
}

func (s State) String() string {
	return stateNames[s]
}

// Terminal reports whether no further actions are accepted.
func (s State) Terminal() bool {
	return s == gameOver || s == stalled
}
