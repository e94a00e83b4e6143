package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/tock/engine"
	"github.com/minaorangina/tock/game"
	"github.com/minaorangina/tock/protocol"
	"github.com/minaorangina/tock/store"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Players  int      `json:"players"`
	Seed     int64    `json:"seed"`
	Policies []string `json:"policies"`
	Script   string   `json:"script"`
}

type NewGameRes struct {
	GameID      string               `json:"game_id"`
	Players     []string             `json:"players"`
	Observation protocol.Observation `json:"observation"`
}

type GetGameRes struct {
	GameID      string               `json:"game_id"`
	Status      string               `json:"status"`
	Steps       int                  `json:"steps"`
	Observation protocol.Observation `json:"observation"`
}

type StepReq struct {
	Card int `json:"card"`
	Pawn int `json:"pawn"`
}

type StepRes struct {
	GameID      string               `json:"game_id"`
	Step        int                  `json:"step"`
	Observation protocol.Observation `json:"observation"`
}

// GameServer is a game server
type GameServer struct {
	store         store.GameStore
	logger        *zap.Logger
	maxSteps      int
	maxIdleRounds int
	http.Server
}

// Option configures a GameServer
type Option func(*GameServer)

// WithLimits caps the matches the server creates.
func WithLimits(maxSteps, maxIdleRounds int) Option {
	return func(g *GameServer) {
		g.maxSteps = maxSteps
		g.maxIdleRounds = maxIdleRounds
	}
}

// NewServer creates a new GameServer
func NewServer(s store.GameStore, logger *zap.Logger, opts ...Option) *GameServer {
	g := new(GameServer)
	if logger == nil {
		logger = zap.NewNop()
	}

	router := http.NewServeMux()
	router.Handle("/new", http.HandlerFunc(g.HandleNewGame))
	router.Handle("/game/", http.HandlerFunc(g.HandleGame))
	router.Handle("/ws", http.HandlerFunc(g.HandleWS))

	g.store = s
	g.logger = logger
	g.Handler = router

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		g.writeParseError(err, w)
		return
	}

	ps, err := newPlayers(data, g.logger)
	if err != nil {
		g.writeError(w, http.StatusBadRequest, err)
		return
	}

	match, err := engine.NewMatch(engine.MatchOpts{
		ID:            NewID(),
		Players:       ps,
		Seed:          data.Seed,
		MaxSteps:      g.maxSteps,
		MaxIdleRounds: g.maxIdleRounds,
		Logger:        g.logger,
	})
	if err != nil {
		closePlayers(ps)
		g.writeError(w, statusFor(err), err)
		return
	}

	if err := g.store.AddMatch(match); err != nil {
		match.Close()
		g.writeError(w, http.StatusInternalServerError, err)
		return
	}

	g.logger.Info("game created",
		zap.String("game_id", match.ID()),
		zap.Strings("players", ps.Names()),
	)

	g.writeJSON(w, http.StatusCreated, NewGameRes{
		GameID:      match.ID(),
		Players:     ps.Names(),
		Observation: match.Observation(),
	})
}

// HandleGame serves GET /game/{id}, DELETE /game/{id} and POST /game/{id}/step
func (g *GameServer) HandleGame(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/game/"), "/")
	gameID := parts[0]
	if gameID == "" {
		g.writeError(w, http.StatusBadRequest, errors.New("missing game ID"))
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		g.handleFindGame(w, gameID)
	case len(parts) == 1 && r.Method == http.MethodDelete:
		g.handleRemoveGame(w, gameID)
	case len(parts) == 2 && parts[1] == "step" && r.Method == http.MethodPost:
		g.handleStep(w, r, gameID)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (g *GameServer) handleFindGame(w http.ResponseWriter, gameID string) {
	match, err := g.store.FindMatch(gameID)
	if err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}

	g.writeJSON(w, http.StatusOK, GetGameRes{
		GameID:      gameID,
		Status:      match.PlayState().String(),
		Steps:       match.Steps(),
		Observation: match.Observation(),
	})
}

func (g *GameServer) handleRemoveGame(w http.ResponseWriter, gameID string) {
	match, err := g.store.FindMatch(gameID)
	if err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}

	if err := g.store.RemoveMatch(gameID); err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}
	match.Close()

	w.WriteHeader(http.StatusNoContent)
}

func (g *GameServer) handleStep(w http.ResponseWriter, r *http.Request, gameID string) {
	match, err := g.store.FindMatch(gameID)
	if err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}

	// an empty body lets the seated player decide
	var action *protocol.Action
	var data StepReq
	err = json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	switch {
	case err == io.EOF:
	case err != nil:
		g.writeParseError(err, w)
		return
	default:
		action = &protocol.Action{Card: data.Card, Pawn: data.Pawn}
	}

	obs, err := match.Step(action)
	if err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}

	g.writeJSON(w, http.StatusOK, StepRes{
		GameID:      gameID,
		Step:        match.Steps(),
		Observation: obs,
	})
}

// HandleWS plays the game out, streaming every observation
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		g.writeError(w, http.StatusBadRequest, errors.New("missing game ID"))
		return
	}

	match, err := g.store.FindMatch(gameID)
	if err != nil {
		g.writeError(w, statusFor(err), err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied
		g.logger.Warn("could not upgrade to websocket", zap.Error(err))
		return
	}
	defer conn.Close()

	g.stream(conn, match)
}

func (g *GameServer) stream(conn *websocket.Conn, match *engine.Match) {
	logger := g.logger.With(zap.String("game_id", match.ID()))

	send := func(cmd protocol.Cmd, obs *protocol.Observation, errMsg string) error {
		return conn.WriteJSON(protocol.OutboundMessage{
			GameID:      match.ID(),
			Command:     cmd,
			Step:        match.Steps(),
			Observation: obs,
			Error:       errMsg,
		})
	}

	obs := match.Observation()
	if err := send(protocol.Start, &obs, ""); err != nil {
		logger.Warn("could not send to observer", zap.Error(err))
		return
	}

	result, err := match.Play(context.Background(), func(obs protocol.Observation) error {
		return send(protocol.Turn, &obs, "")
	})
	if err != nil && !errors.Is(err, game.ErrGameOver) {
		logger.Warn("stream ended early", zap.Error(err))
		_ = send(protocol.Error, nil, err.Error())
		return
	}

	final := match.Observation()
	if err := send(protocol.GameOver, &final, ""); err != nil {
		logger.Warn("could not send to observer", zap.Error(err))
		return
	}
	logger.Info("stream finished", zap.Int("winner", result.Winner), zap.Int("steps", result.Steps))

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, fmt.Sprintf("winner %d", result.Winner)))
}

func (g *GameServer) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		g.logger.Error("could not marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func (g *GameServer) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		g.logger.Error("request failed", zap.Error(err))
	} else {
		g.logger.Debug("bad request", zap.Int("status", status), zap.Error(err))
	}
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

func (g *GameServer) writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		g.writeError(w, http.StatusBadRequest, errors.New("Missing body"))
		return
	}
	g.writeError(w, http.StatusBadRequest, fmt.Errorf("could not parse body: %w", err))
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUnknownGameID):
		return http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, game.ErrInvalidConfiguration),
		errors.Is(err, engine.ErrNoPlayers):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
