package server

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/tock/engine"
	utils "github.com/minaorangina/tock/internal"
	"github.com/minaorangina/tock/players"
	"github.com/minaorangina/tock/store"
	"github.com/stretchr/testify/require"
)

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newStepRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/step", bytes.NewBuffer(data))
	return request
}

// newServerWithMatch returns a GameServer holding one seeded match
func newServerWithMatch(t *testing.T, gameID string, nplayers int) (*GameServer, *engine.Match) {
	t.Helper()

	match, err := engine.NewMatch(engine.MatchOpts{
		ID:      gameID,
		Players: players.SomePlayers(nplayers, 1),
		Seed:    1,
	})
	require.NoError(t, err)

	return NewServer(store.NewInMemoryGameStore(match), nil), match
}

func decode(t *testing.T, body *bytes.Buffer, v interface{}) {
	t.Helper()

	bodyBytes, err := ioutil.ReadAll(body)
	utils.AssertNoError(t, err)

	if err := json.Unmarshal(bodyBytes, v); err != nil {
		t.Fatalf("could not unmarshal json: %s", err.Error())
	}
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, resp, err := websocket.DefaultDialer.Dial(url, nil)

	if err != nil {
		body, _ := ioutil.ReadAll(resp.Body)
		t.Fatalf("could not open a ws connection on %s, code %d: %s, %v", url, resp.StatusCode, body, err)
	}
	if ws == nil {
		t.Fatal("unexpected nil websocket conn")
	}

	return ws
}

// newTestServer starts and returns a new server.
// The caller must call close to shut it down.
func newTestServer(s store.GameStore) *httptest.Server {
	return httptest.NewServer(NewServer(s, nil))
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
