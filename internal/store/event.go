package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo on the answer_events table.
type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	correct := 0
	if data.Correct {
		correct = 1
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO answer_events (session_id, item_id, item_kind, selected, correct, response_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.ItemID, data.ItemKind, data.Selected, correct,
		data.ResponseMs, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionActivity, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT session_id, COUNT(*), SUM(correct), MIN(created_at)
		FROM answer_events
		GROUP BY session_id
		ORDER BY MIN(created_at) DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var result []SessionActivity
	for rows.Next() {
		var sa SessionActivity
		var startedAt string
		if err := rows.Scan(&sa.SessionID, &sa.Answered, &sa.Correct, &startedAt); err != nil {
			return nil, fmt.Errorf("scan session activity: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, startedAt); err == nil {
			sa.StartedAt = t
		}
		result = append(result, sa)
	}
	return result, rows.Err()
}
