package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrInvalidPlayerCount   = fmt.Errorf("%w: number of players must be 2, 4 or 6", ErrInvalidConfiguration)
	ErrNotStarted           = errors.New("game has not been reset")
	ErrGameOver             = errors.New("game is already over")
	ErrEngineStall          = errors.New("engine stalled: no player can move after re-dealing")
)
