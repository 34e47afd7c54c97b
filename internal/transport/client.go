package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/kevlar-tabletop/citadels/internal/engine"
	"github.com/kevlar-tabletop/citadels/internal/lobby"
	"github.com/kevlar-tabletop/citadels/internal/persistence"
	"github.com/kevlar-tabletop/citadels/internal/prng"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512 * 1024
)

var (
	newline = []byte{'\n'}
	space   = []byte{' '}
)

// Client is a middleman between one websocket connection and the hub.
type Client struct {
	hub *Hub

	conn *websocket.Conn
	send chan []byte
	id   string

	deps ServerDeps

	// seatsByGame maps a game ID to the player ID this connection is
	// authenticated as within that game's lobby.
	seatsByGame map[string]string
}

type inboundMsg struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type createGamePayload struct {
	Name       string `json:"name"`
	MaxPlayers int    `json:"maxPlayers"`
	Creator    string `json:"creator"`
}

type joinGamePayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId"`
	Name     string `json:"name"`
}

type startGamePayload struct {
	GameID string `json:"gameId"`
}

type performActionPayload struct {
	GameID           string        `json:"gameId"`
	ActionID         string        `json:"actionId,omitempty"`
	ExpectedRevision *int          `json:"expectedRevision,omitempty"`
	Action           engine.Action `json:"action"`
}

type getGameStatePayload struct {
	GameID   string `json:"gameId"`
	PlayerID string `json:"playerId,omitempty"`
}

type lobbyStateMsg struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func (c *Client) bindSeat(gameID, playerID string) {
	if c.seatsByGame == nil {
		c.seatsByGame = make(map[string]string)
	}
	c.seatsByGame[gameID] = playerID
}

func (c *Client) seatForGame(gameID string) string {
	if c.seatsByGame == nil {
		return ""
	}
	return c.seatsByGame[gameID]
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		_ = c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error: %v", err)
			}
			break
		}
		message = bytes.TrimSpace(bytes.ReplaceAll(message, newline, space))

		var env inboundMsg
		if err := json.Unmarshal(message, &env); err != nil {
			log.Printf("received non-JSON message from %s: %s", c.id, string(message))
			continue
		}
		c.handleInboundMessage(env)
	}
}

func (c *Client) handleInboundMessage(env inboundMsg) {
	switch env.Type {
	case "list_games":
		games := c.deps.Lobby.ListGames()
		out, _ := json.Marshal(lobbyStateMsg{Type: "lobby_state", Payload: games})
		c.send <- out

	case "create_game":
		c.handleCreateGame(env.Payload)

	case "join_game":
		c.handleJoinGame(env.Payload)

	case "start_game":
		c.handleStartGame(env.Payload)

	case "get_game_state":
		c.handleGetGameState(env.Payload)

	case "perform_action":
		c.handlePerformAction(env.Payload)

	default:
		log.Printf("unknown message type: %s", env.Type)
	}
}

func (c *Client) handleCreateGame(payload json.RawMessage) {
	var p createGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("create_game payload error: %v", err)
		return
	}
	if p.MaxPlayers <= 0 {
		p.MaxPlayers = 5
	}
	meta := c.deps.Lobby.CreateGame(p.Name, p.MaxPlayers)
	if p.Creator != "" {
		if err := c.deps.Lobby.JoinGame(meta.ID, p.Creator, p.Creator); err != nil {
			c.sendError("create_game_failed")
			return
		}
		c.bindSeat(meta.ID, p.Creator)
		c.hub.JoinGame(c, meta.ID)
		createdMsg, _ := json.Marshal(map[string]any{
			"type":    "game_created",
			"payload": map[string]string{"gameId": meta.ID, "playerId": p.Creator},
		})
		c.send <- createdMsg
	}
	c.broadcastLobbyState()
}

func (c *Client) handleJoinGame(payload json.RawMessage) {
	var p joinGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("join_game payload error: %v", err)
		return
	}
	if err := c.deps.Lobby.JoinGame(p.GameID, p.PlayerID, p.Name); err != nil {
		out, _ := json.Marshal(map[string]any{"type": "error", "payload": err.Error()})
		c.send <- out
		return
	}

	c.bindSeat(p.GameID, p.PlayerID)
	c.hub.JoinGame(c, p.GameID)

	successMsg, _ := json.Marshal(map[string]any{
		"type":    "game_joined",
		"payload": map[string]string{"gameId": p.GameID, "playerId": p.PlayerID},
	})
	c.send <- successMsg
	c.broadcastLobbyState()
}

func (c *Client) broadcastLobbyState() {
	games := c.deps.Lobby.ListGames()
	out, _ := json.Marshal(lobbyStateMsg{Type: "lobby_state", Payload: games})
	c.hub.broadcast <- out
}

// handleStartGame closes a lobby and hands it to internal/engine.Manager:
// it draws roles and unique districts from the lobby's GameConfig under a
// fresh seed, starts the game, and persists its setup record.
func (c *Client) handleStartGame(payload json.RawMessage) {
	var p startGamePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("start_game payload error: %v", err)
		return
	}

	meta, ok := c.deps.Lobby.GetGame(p.GameID)
	if !ok {
		c.sendError("game_not_found")
		return
	}
	if c.seatForGame(p.GameID) == "" {
		c.sendError("not_in_game")
		return
	}
	if len(meta.Players) < 2 {
		c.sendError("not_enough_players")
		return
	}

	seed := time.Now().UnixNano()
	rng := prng.New(seed)

	roles, err := meta.Config.SelectRoles(rng, len(meta.Players))
	if err != nil {
		log.Printf("select roles for %s: %v", p.GameID, err)
		c.sendError("role_selection_failed")
		return
	}
	districts := meta.Config.SelectUniqueDistricts(rng)

	players := make([]engine.LobbyPlayer, len(meta.Players))
	for i, pl := range meta.Players {
		players[i] = engine.LobbyPlayer{ID: pl.ID, Name: pl.Name}
	}

	if _, err := c.deps.Games.CreateGame(p.GameID, players, roles, districts, seed); err != nil {
		log.Printf("create game %s: %v", p.GameID, err)
		c.sendError("create_game_failed")
		return
	}

	if c.deps.Log != nil {
		record := persistence.GameRecord{ID: p.GameID, Seed: seed, Players: players, CreatedAt: time.Now()}
		if err := c.deps.Log.CreateGame(context.Background(), record); err != nil {
			log.Printf("persist game %s: %v", p.GameID, err)
		}
	}

	c.deps.Lobby.RemoveGame(p.GameID)
	c.broadcastGameState(p.GameID)
}

func (c *Client) handleGetGameState(payload json.RawMessage) {
	var p getGameStatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		log.Printf("get_game_state payload error: %v", err)
		return
	}
	if c.seatForGame(p.GameID) == "" && p.PlayerID != "" {
		c.bindSeat(p.GameID, p.PlayerID)
	}
	c.hub.JoinGame(c, p.GameID)
	c.sendGameStateTo(p.GameID, c.seatForGame(p.GameID))
}

func (c *Client) handlePerformAction(payload json.RawMessage) {
	var req performActionPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		log.Printf("perform_action payload error: %v", err)
		c.sendActionRejected("", "invalid_action_payload", "invalid action payload")
		return
	}
	if req.GameID == "" {
		c.sendActionRejected(req.ActionID, "missing_game_id", "missing game id")
		return
	}

	playerID := c.seatForGame(req.GameID)
	if playerID == "" {
		c.sendActionRejected(req.ActionID, "unauthorized", "you are not seated in this game")
		return
	}

	expectedRevision := -1
	if req.ExpectedRevision != nil {
		expectedRevision = *req.ExpectedRevision
	}

	result, err := c.deps.Games.PerformWithMeta(req.GameID, req.Action, engine.ActionMeta{
		ActionID:         req.ActionID,
		ExpectedRevision: expectedRevision,
		PlayerID:         playerID,
	})
	if err != nil {
		if mismatch, ok := err.(*engine.RevisionMismatchError); ok {
			c.sendActionRejected(req.ActionID, "revision_mismatch", mismatch.Error(), map[string]any{
				"expectedRevision": mismatch.Expected,
				"currentRevision":  mismatch.Current,
			})
			return
		}
		c.sendActionRejected(req.ActionID, "action_rejected", err.Error())
		return
	}

	acceptedMsg, _ := json.Marshal(map[string]any{
		"type": "action_accepted",
		"payload": map[string]any{
			"actionId":    req.ActionID,
			"newRevision": result.Revision,
			"duplicate":   result.Duplicate,
		},
	})
	c.send <- acceptedMsg

	if !result.Duplicate && c.deps.Log != nil {
		entry := persistence.LoggedAction{
			Revision:  result.Revision,
			PlayerID:  playerID,
			Action:    req.Action,
			AppliedAt: time.Now(),
		}
		if err := c.deps.Log.LogAction(context.Background(), req.GameID, entry); err != nil {
			log.Printf("log action for %s: %v", req.GameID, err)
		}
	}

	c.broadcastGameState(req.GameID)
}

// broadcastGameState sends every subscriber of a game room its own
// player-redacted view; unlike a single shared snapshot, each connection
// sees only its own hand.
func (c *Client) broadcastGameState(gameID string) {
	g, ok := c.deps.Games.GetGame(gameID)
	if !ok {
		return
	}
	h := c.hub
	h.mu.RLock()
	subscribers := make([]*Client, 0, len(h.gameSubscribers[gameID]))
	for client := range h.gameSubscribers[gameID] {
		subscribers = append(subscribers, client)
	}
	h.mu.RUnlock()

	for _, client := range subscribers {
		view := g.ViewFor(client.seatForGame(gameID))
		msg, _ := json.Marshal(map[string]any{"type": "game_state_update", "payload": view})
		h.mu.RLock()
		h.sendToClientLocked(client, msg)
		h.mu.RUnlock()
	}
}

func (c *Client) sendGameStateTo(gameID, playerID string) {
	g, ok := c.deps.Games.GetGame(gameID)
	if !ok {
		c.sendError("game_not_found")
		return
	}
	view := g.ViewFor(playerID)
	msg, _ := json.Marshal(map[string]any{"type": "game_state_update", "payload": view})
	c.send <- msg
}

func (c *Client) sendError(code string) {
	msg, _ := json.Marshal(map[string]any{"type": "error", "payload": code})
	c.send <- msg
}

func (c *Client) sendActionRejected(actionID, code, message string, extras ...map[string]any) {
	payload := map[string]any{
		"actionId": actionID,
		"error":    code,
		"message":  message,
	}
	if len(extras) > 0 {
		for k, v := range extras[0] {
			payload[k] = v
		}
	}
	msg, _ := json.Marshal(map[string]any{"type": "action_rejected", "payload": payload})
	c.send <- msg
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			if err := c.handleWriteMessage(message, ok); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.handlePing(); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleWriteMessage(message []byte, ok bool) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if !ok {
		_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
		return errClosedChannel
	}

	w, err := c.conn.NextWriter(websocket.TextMessage)
	if err != nil {
		return err
	}
	_, _ = w.Write(message)

	n := len(c.send)
	for i := 0; i < n; i++ {
		_, _ = w.Write(newline)
		_, _ = w.Write(<-c.send)
	}

	return w.Close()
}

func (c *Client) handlePing() error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

var errClosedChannel = errors.New("send channel closed")
