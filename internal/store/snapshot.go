package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// stateRepo implements StateRepo on the learner_state table.
type stateRepo struct {
	db *sql.DB
}

func (r *stateRepo) LoadMastery(ctx context.Context) (*MasterySnapshot, error) {
	var data string
	err := r.db.QueryRowContext(ctx,
		"SELECT data FROM learner_state WHERE key = ?", masteryStateKey,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load mastery state: %w", err)
	}

	var snap MasterySnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("decode mastery state: %w", err)
	}
	return &snap, nil
}

func (r *stateRepo) SaveMastery(ctx context.Context, snap *MasterySnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode mastery state: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO learner_state (key, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		masteryStateKey, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save mastery state: %w", err)
	}
	return nil
}

func (r *stateRepo) ClearMastery(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM learner_state WHERE key = ?", masteryStateKey)
	if err != nil {
		return fmt.Errorf("clear mastery state: %w", err)
	}
	return nil
}
