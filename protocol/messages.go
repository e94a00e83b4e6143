package protocol

import (
	"encoding/json"
	"fmt"
)

// Cmd represents a command sent to observers of a game
type Cmd int

const (
	Null Cmd = iota
	Start
	Turn
	GameOver
	Error
)

var CmdNames = map[Cmd]string{
	Null:     "Null",
	Start:    "Start",
	Turn:     "Turn",
	GameOver: "GameOver",
	Error:    "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":     Null,
	"Start":    Start,
	"Turn":     Turn,
	"GameOver": GameOver,
	"Error":    Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	cmd, ok := NameToCmd[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	*c = cmd
	return nil
}

// OutboundMessage is a message from a running game to an observer
type OutboundMessage struct {
	GameID      string       `json:"gameID"`
	Command     Cmd          `json:"command"`
	Step        int          `json:"step"`
	Observation *Observation `json:"observation,omitempty"`
	Error       string       `json:"error,omitempty"`
}
