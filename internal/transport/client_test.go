package transport

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kevlar-tabletop/citadels/internal/engine"
	"github.com/kevlar-tabletop/citadels/internal/lobby"
	"github.com/kevlar-tabletop/citadels/internal/persistence"
)

func newTestDeps() ServerDeps {
	return ServerDeps{
		Lobby: lobby.NewManager(),
		Games: engine.NewManager(),
		Log:   persistence.NewMemoryActionLog(),
	}
}

func newTestClient(hub *Hub, deps ServerDeps) *Client {
	c := &Client{
		hub:         hub,
		send:        make(chan []byte, 16),
		deps:        deps,
		seatsByGame: make(map[string]string),
	}
	hub.register <- c
	return c
}

func drain(t *testing.T, c *Client) {
	t.Helper()
	for {
		select {
		case <-c.send:
		case <-time.After(50 * time.Millisecond):
			return
		}
	}
}

func TestLobbyThenStartGameCreatesEngineGame(t *testing.T) {
	deps := newTestDeps()
	hub := NewHub()
	go hub.Run()

	host := newTestClient(hub, deps)
	guest := newTestClient(hub, deps)

	host.handleCreateGame(mustJSON(t, createGamePayload{Name: "Test Match", MaxPlayers: 2, Creator: "p1"}))
	drain(t, host)
	drain(t, guest)

	games := deps.Lobby.ListGames()
	if len(games) != 1 {
		t.Fatalf("got %d open lobbies, want 1", len(games))
	}
	gameID := games[0].ID

	guest.handleJoinGame(mustJSON(t, joinGamePayload{GameID: gameID, PlayerID: "p2", Name: "p2"}))
	drain(t, host)
	drain(t, guest)

	host.handleStartGame(mustJSON(t, startGamePayload{GameID: gameID}))

	if _, ok := deps.Lobby.GetGame(gameID); ok {
		t.Fatalf("lobby %s should be removed once the game starts", gameID)
	}
	g, ok := deps.Games.GetGame(gameID)
	if !ok {
		t.Fatalf("expected engine.Manager to hold game %s after start_game", gameID)
	}
	if len(g.Players) != 2 {
		t.Fatalf("got %d seated players, want 2", len(g.Players))
	}

	if _, _, err := deps.Log.LoadGame(t.Context(), gameID); err != nil {
		t.Fatalf("LoadGame after start: %v", err)
	}

	for _, c := range []*Client{host, guest} {
		select {
		case msg := <-c.send:
			var env map[string]any
			if err := json.Unmarshal(msg, &env); err != nil {
				t.Fatalf("broadcast message not valid JSON: %v", err)
			}
			if env["type"] != "game_state_update" {
				t.Fatalf("got message type %v, want game_state_update", env["type"])
			}
		case <-time.After(500 * time.Millisecond):
			t.Fatalf("timed out waiting for game_state_update broadcast")
		}
	}
}

func TestPerformActionRejectsUnseatedPlayer(t *testing.T) {
	deps := newTestDeps()
	hub := NewHub()
	go hub.Run()
	c := newTestClient(hub, deps)

	c.handlePerformAction(mustJSON(t, performActionPayload{GameID: "nonexistent"}))

	select {
	case msg := <-c.send:
		var env map[string]any
		_ = json.Unmarshal(msg, &env)
		if env["type"] != "action_rejected" {
			t.Fatalf("got %v, want action_rejected", env["type"])
		}
		payload, _ := env["payload"].(map[string]any)
		if payload["error"] != "unauthorized" {
			t.Fatalf("got error %v, want unauthorized", payload["error"])
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for action_rejected")
	}
}

func mustJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return b
}
