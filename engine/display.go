package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/tock/protocol"
)

const rule = "=======================================\n"

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Display writes a text dump of the board. The player to move is marked
// with an arrow.
func Display(w io.Writer, s protocol.Snapshot) {
	SendText(w, rule)
	SendText(w, "         Current Game State\n")
	SendText(w, rule)
	for i, p := range s.Players {
		marker := " "
		if i == s.Current {
			marker = ">"
		}
		SendText(w, "%s Player:%d | %s\n", marker, i, buildPlayerText(p, s.Fields))
	}
	SendText(w, "round: %d\n", s.Round)
	SendText(w, rule)
}

func buildPlayerText(p protocol.PlayerView, fields int) string {
	locs := make([]string, len(p.Locs))
	for i, loc := range p.Locs {
		switch {
		case loc == 0:
			locs[i] = "S"
		case loc > fields:
			locs[i] = "H"
		default:
			locs[i] = fmt.Sprint(loc)
		}
	}

	cards := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		cards[i] = c.String()
	}

	return fmt.Sprintf("offset:%d | locs:[%s] | cards:[%s]",
		p.Offset, strings.Join(locs, " "), strings.Join(cards, " "))
}

// DisplayResult writes who won and how long it took.
func DisplayResult(w io.Writer, names []string, r Result) {
	if r.Winner == protocol.NoWinner || r.Winner >= len(names) {
		SendText(w, "No winner after %d steps (round %d)\n", r.Steps, r.Rounds)
		return
	}
	SendText(w, "%s wins after %d steps in round %d!\n", names[r.Winner], r.Steps, r.Rounds)
	if r.Fallbacks > 0 {
		SendText(w, "%d illegal actions were replaced\n", r.Fallbacks)
	}
}
