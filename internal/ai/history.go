package ai

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
)

// HistoryEntry is one recorded generation. Input and result are stored as
// raw jsonb so each tool keeps its own shape.
type HistoryEntry struct {
	ID         int             `db:"id" json:"id"`
	UserEmail  string          `db:"user_email" json:"user_email"`
	ToolName   string          `db:"tool_name" json:"tool_name"`
	InputData  json.RawMessage `db:"input_data" json:"input_data"`
	ResultData json.RawMessage `db:"result_data" json:"result_data"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
}

type HistoryRepository interface {
	Insert(ctx context.Context, userEmail, toolName string, input, result any) (*HistoryEntry, error)
	ListByEmail(ctx context.Context, userEmail string, limit int) ([]HistoryEntry, error)
}

type historyRepository struct {
	db *sqlx.DB
}

func NewHistoryRepository(db *sqlx.DB) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) Insert(ctx context.Context, userEmail, toolName string, input, result any) (*HistoryEntry, error) {
	inputJSON, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}

	var entry HistoryEntry
	err = r.db.GetContext(ctx, &entry, `
		INSERT INTO ai_history (user_email, tool_name, input_data, result_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_email, tool_name, input_data, result_data, created_at`,
		userEmail, toolName, inputJSON, resultJSON,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *historyRepository) ListByEmail(ctx context.Context, userEmail string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	var entries []HistoryEntry
	err := r.db.SelectContext(ctx, &entries, `
		SELECT id, user_email, tool_name, input_data, result_data, created_at
		FROM ai_history
		WHERE user_email = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userEmail, limit,
	)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
