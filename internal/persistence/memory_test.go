package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/kevlar-tabletop/citadels/internal/catalogue"
	"github.com/kevlar-tabletop/citadels/internal/engine"
)

func TestMemoryActionLogRoundTripsActions(t *testing.T) {
	m := NewMemoryActionLog()
	ctx := context.Background()
	record := GameRecord{
		ID:      "g1",
		Seed:    42,
		Players: []engine.LobbyPlayer{{ID: "a", Name: "Alice"}, {ID: "b", Name: "Bob"}},
	}
	if err := m.CreateGame(ctx, record); err != nil {
		t.Fatalf("CreateGame: %v", err)
	}

	entry := LoggedAction{
		Revision:  1,
		PlayerID:  "a",
		Action:    engine.Action{Tag: catalogue.DraftPick, Role: catalogue.Assassin},
		AppliedAt: time.Now(),
	}
	if err := m.LogAction(ctx, "g1", entry); err != nil {
		t.Fatalf("LogAction: %v", err)
	}

	gotRecord, actions, err := m.LoadGame(ctx, "g1")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if gotRecord.Seed != 42 {
		t.Fatalf("Seed = %d, want 42", gotRecord.Seed)
	}
	if len(actions) != 1 || actions[0].Action.Tag != catalogue.DraftPick {
		t.Fatalf("actions = %+v, want one DraftPick", actions)
	}
}

func TestMemoryActionLogIgnoresDuplicateRevision(t *testing.T) {
	m := NewMemoryActionLog()
	ctx := context.Background()
	_ = m.CreateGame(ctx, GameRecord{ID: "g1", Seed: 1})

	entry := LoggedAction{Revision: 1, PlayerID: "a", Action: engine.Action{Tag: catalogue.EndTurn}}
	if err := m.LogAction(ctx, "g1", entry); err != nil {
		t.Fatalf("LogAction: %v", err)
	}
	if err := m.LogAction(ctx, "g1", entry); err != nil {
		t.Fatalf("LogAction (duplicate): %v", err)
	}
	_, actions, _ := m.LoadGame(ctx, "g1")
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1 after a duplicate revision", len(actions))
	}
}

func TestMemoryActionLogRejectsActionForUnknownGame(t *testing.T) {
	m := NewMemoryActionLog()
	err := m.LogAction(context.Background(), "missing", LoggedAction{Revision: 1})
	if err == nil {
		t.Fatalf("expected an error logging against an unknown game")
	}
}
