package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"github.com/kevlar-tabletop/citadels/internal/engine"
	"github.com/kevlar-tabletop/citadels/internal/lobby"
	"github.com/kevlar-tabletop/citadels/internal/persistence"
	"github.com/kevlar-tabletop/citadels/internal/transport"
)

func main() {
	hub := transport.NewHub()
	go hub.Run()

	gameMgr := engine.NewManager()
	lobbyMgr := lobby.NewManager()

	actionLog := newActionLog()

	deps := transport.ServerDeps{
		Lobby: lobbyMgr,
		Games: gameMgr,
		Log:   actionLog,
	}

	router := mux.NewRouter()

	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		transport.ServeWs(hub, deps, w, r)
	})

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	router.Use(corsMiddleware)

	addr := ":8080"
	log.Printf("citadels server starting on %s", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}

// newActionLog connects to Postgres when CITADELS_DATABASE_URL is set,
// falling back to an in-memory log for local development.
func newActionLog() persistence.ActionLogger {
	connStr := os.Getenv("CITADELS_DATABASE_URL")
	if connStr == "" {
		log.Printf("CITADELS_DATABASE_URL not set, using in-memory action log")
		return persistence.NewMemoryActionLog()
	}

	ctx := context.Background()
	store, err := persistence.ConnectPostgres(ctx, connStr)
	if err != nil {
		log.Printf("connect to postgres: %v, falling back to in-memory action log", err)
		return persistence.NewMemoryActionLog()
	}
	if err := store.InitSchema(ctx); err != nil {
		log.Fatalf("init schema: %v", err)
	}
	return store
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
