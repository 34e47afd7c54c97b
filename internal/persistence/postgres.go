package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kevlar-tabletop/citadels/internal/engine"
)

// PostgresActionLog is the production ActionLogger, backed by two tables:
// one row per game for its immutable setup, one row per applied action.
type PostgresActionLog struct {
	pool *pgxpool.Pool
}

var _ ActionLogger = (*PostgresActionLog)(nil)

// ConnectPostgres opens a pooled connection and verifies it with a ping.
func ConnectPostgres(ctx context.Context, connStr string) (*PostgresActionLog, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	log.Println("connected to Postgres action log")
	return &PostgresActionLog{pool: pool}, nil
}

// Close releases the connection pool.
func (s *PostgresActionLog) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema loads and executes schema.sql, creating the action log tables
// if they don't already exist.
func (s *PostgresActionLog) InitSchema(ctx context.Context) error {
	schemaBytes, err := os.ReadFile("internal/persistence/schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema file: %w", err)
	}
	if _, err := s.pool.Exec(ctx, string(schemaBytes)); err != nil {
		return fmt.Errorf("failed to execute schema migrations: %w", err)
	}
	return nil
}

func (s *PostgresActionLog) CreateGame(ctx context.Context, record GameRecord) error {
	players, err := json.Marshal(record.Players)
	if err != nil {
		return fmt.Errorf("marshal players: %w", err)
	}
	const sql = `
		INSERT INTO games (id, seed, players, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING;
	`
	_, err = s.pool.Exec(ctx, sql, record.ID, record.Seed, players, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", record.ID, err)
	}
	return nil
}

func (s *PostgresActionLog) LogAction(ctx context.Context, gameID string, entry LoggedAction) error {
	payload, err := json.Marshal(entry.Action)
	if err != nil {
		return fmt.Errorf("marshal action: %w", err)
	}
	const sql = `
		INSERT INTO game_actions (game_id, revision, player_id, action, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (game_id, revision) DO NOTHING;
	`
	_, err = s.pool.Exec(ctx, sql, gameID, entry.Revision, entry.PlayerID, payload, entry.AppliedAt)
	if err != nil {
		return fmt.Errorf("insert action for game %s revision %d: %w", gameID, entry.Revision, err)
	}
	return nil
}

func (s *PostgresActionLog) LoadGame(ctx context.Context, gameID string) (GameRecord, []LoggedAction, error) {
	var record GameRecord
	var playersJSON []byte
	const gameSQL = `SELECT id, seed, players, created_at FROM games WHERE id = $1;`
	row := s.pool.QueryRow(ctx, gameSQL, gameID)
	if err := row.Scan(&record.ID, &record.Seed, &playersJSON, &record.CreatedAt); err != nil {
		return GameRecord{}, nil, fmt.Errorf("load game %s: %w", gameID, err)
	}
	if err := json.Unmarshal(playersJSON, &record.Players); err != nil {
		return GameRecord{}, nil, fmt.Errorf("unmarshal players for game %s: %w", gameID, err)
	}

	const actionsSQL = `
		SELECT revision, player_id, action, applied_at
		FROM game_actions
		WHERE game_id = $1
		ORDER BY revision ASC;
	`
	rows, err := s.pool.Query(ctx, actionsSQL, gameID)
	if err != nil {
		return GameRecord{}, nil, fmt.Errorf("load actions for game %s: %w", gameID, err)
	}
	defer rows.Close()

	var entries []LoggedAction
	for rows.Next() {
		var entry LoggedAction
		var payload []byte
		if err := rows.Scan(&entry.Revision, &entry.PlayerID, &payload, &entry.AppliedAt); err != nil {
			return GameRecord{}, nil, fmt.Errorf("scan action for game %s: %w", gameID, err)
		}
		var action engine.Action
		if err := json.Unmarshal(payload, &action); err != nil {
			return GameRecord{}, nil, fmt.Errorf("unmarshal action for game %s revision %d: %w", gameID, entry.Revision, err)
		}
		entry.Action = action
		entries = append(entries, entry)
	}
	return record, entries, nil
}
