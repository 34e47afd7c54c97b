package transport

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/kevlar-tabletop/citadels/internal/engine"
	"github.com/kevlar-tabletop/citadels/internal/lobby"
	"github.com/kevlar-tabletop/citadels/internal/persistence"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development.
		// TODO: restrict this once a browser client ships.
		return true
	},
}

// ServerDeps holds the subsystems a Client needs to serve lobby and game
// requests.
type ServerDeps struct {
	Lobby *lobby.Manager
	Games *engine.Manager
	Log   persistence.ActionLogger
}

// ServeWs upgrades an HTTP request to a websocket connection and starts the
// client's read/write pumps.
func ServeWs(hub *Hub, deps ServerDeps, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	clientID := r.RemoteAddr
	client := &Client{
		hub:         hub,
		conn:        conn,
		send:        make(chan []byte, 256),
		id:          clientID,
		deps:        deps,
		seatsByGame: make(map[string]string),
	}
	client.hub.register <- client

	go client.writePump()
	go client.readPump()
}
