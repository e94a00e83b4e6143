package engine

// PlayState represents the state of the current match
// Idle -> dealt but no action played yet
// InProgress -> actions are being played
// Finished -> won or stalled
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
)

func (ps PlayState) String() string {
	switch ps {
	case Idle:
		return "idle"
	case InProgress:
		return "inProgress"
	case Finished:
		return "finished"
	}
	return ""
}
