package store

import (
	"context"
	"time"
)

// masteryStateKey is the fixed learner_state key holding the serialized
// mastery mapping. The engine persists exactly one such record.
const masteryStateKey = "mastery"

// MasteryRecordData is the serialized form of one item's mastery record.
type MasteryRecordData struct {
	TimesAnswered  int     `json:"times_answered"`
	CorrectCount   int     `json:"correct_count"`
	IncorrectCount int     `json:"incorrect_count"`
	AvgResponseMs  float64 `json:"avg_response_ms"`
	LastAnsweredAt string  `json:"last_answered_at,omitempty"` // RFC3339
	LastSelected   int     `json:"last_selected"`
	LastCorrect    bool    `json:"last_correct"`
}

// MasterySnapshot captures the full mastery state: one record per item
// ever answered, keyed by item ID.
type MasterySnapshot struct {
	Version int                           `json:"version"`
	Records map[string]*MasteryRecordData `json:"records"`
}

// StateRepo persists the learner's mastery state under a fixed key.
type StateRepo interface {
	// LoadMastery returns the stored mastery snapshot, or (nil, nil)
	// if none has been saved yet.
	LoadMastery(ctx context.Context) (*MasterySnapshot, error)

	// SaveMastery overwrites the stored mastery snapshot.
	SaveMastery(ctx context.Context, snap *MasterySnapshot) error

	// ClearMastery removes the stored mastery snapshot.
	ClearMastery(ctx context.Context) error
}

// AnswerEventData captures a single recorded answer.
type AnswerEventData struct {
	SessionID  string
	ItemID     string
	ItemKind   string
	Selected   int
	Correct    bool
	ResponseMs int
}

// SessionActivity summarizes one session's recorded answers.
type SessionActivity struct {
	SessionID string
	Answered  int
	Correct   int
	StartedAt time.Time
}

// EventRepo provides append access to answer events and aggregate queries
// over them for the stats surfaces.
type EventRepo interface {
	// AppendAnswer records one answered item.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// RecentSessions returns per-session activity, most recent first.
	RecentSessions(ctx context.Context, limit int) ([]SessionActivity, error)
}
