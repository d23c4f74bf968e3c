package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
	"github.com/akira/toeprep/internal/session"
	"github.com/akira/toeprep/internal/store"
)

// recordingEventRepo captures appended events for assertions.
type recordingEventRepo struct {
	events []store.AnswerEventData
}

func (r *recordingEventRepo) AppendAnswer(ctx context.Context, data store.AnswerEventData) error {
	r.events = append(r.events, data)
	return nil
}

func (r *recordingEventRepo) RecentSessions(ctx context.Context, limit int) ([]store.SessionActivity, error) {
	return nil, nil
}

func testEngine(events store.EventRepo) *Engine {
	items := []content.Item{
		{ID: "v-1", Kind: content.KindVocab, Prompt: "p1", Options: []string{"a", "b"}, Answer: 0, Difficulty: content.DifficultyEasy},
		{ID: "v-2", Kind: content.KindVocab, Prompt: "p2", Options: []string{"a", "b"}, Answer: 1, Difficulty: content.DifficultyEasy},
		{ID: "g-1", Kind: content.KindGrammar, Prompt: "p3", Options: []string{"a", "b"}, Answer: 0, Difficulty: content.DifficultyMedium},
	}
	repo := content.NewRepository(nil, items)
	return New(Options{
		Repo:    repo,
		Tracker: mastery.NewTracker(nil, nil),
		Events:  events,
	})
}

func TestEngine_FullDrill(t *testing.T) {
	events := &recordingEventRepo{}
	eng := testEngine(events)

	require.True(t, eng.StartSession(content.KindAny, content.DifficultyAny, 3))
	assert.Equal(t, session.StateInProgress, eng.SessionState())

	// v-1: correct.
	cur, ok := eng.CurrentItem()
	require.True(t, ok)
	assert.Equal(t, content.ItemID("v-1"), cur.Item.ID)
	res, ok := eng.SubmitAnswer(0)
	require.True(t, ok)
	assert.True(t, res.Correct)
	assert.True(t, eng.CurrentAnswered())

	// Submitting again at the same position is refused.
	_, ok = eng.SubmitAnswer(1)
	assert.False(t, ok)

	// v-2: wrong.
	require.True(t, eng.NextItem())
	res, ok = eng.SubmitAnswer(0)
	require.True(t, ok)
	assert.False(t, res.Correct)
	assert.Equal(t, 1, res.CorrectOption)

	// g-1: correct; advancing past it fails, signalling completion.
	require.True(t, eng.NextItem())
	_, ok = eng.SubmitAnswer(0)
	require.True(t, ok)
	assert.False(t, eng.NextItem())

	sum := eng.EndSession()
	require.NotNil(t, sum)
	assert.Equal(t, 3, sum.Answered)
	assert.Equal(t, 2, sum.Correct)
	assert.Equal(t, 1, sum.Incorrect)
	assert.True(t, sum.Completed)
	assert.Equal(t, session.StateCompleted, eng.SessionState())

	// Every accepted submission produced one history event.
	require.Len(t, events.events, 3)
	assert.Equal(t, sum.SessionID, events.events[0].SessionID)
	assert.Equal(t, "v-2", events.events[1].ItemID)
	assert.False(t, events.events[1].Correct)
}

func TestEngine_StartSessionNoEligibleItems(t *testing.T) {
	eng := testEngine(nil)
	assert.False(t, eng.StartSession(content.KindComprehension, content.DifficultyAny, 10))
	assert.Equal(t, session.StateNotStarted, eng.SessionState())
}

func TestEngine_StartSessionDiscardsPriorRun(t *testing.T) {
	eng := testEngine(nil)

	require.True(t, eng.StartSession(content.KindVocab, content.DifficultyAny, 2))
	_, ok := eng.SubmitAnswer(0)
	require.True(t, ok)

	require.True(t, eng.StartSession(content.KindVocab, content.DifficultyAny, 2))
	stats := eng.SessionStats()
	assert.Zero(t, stats.Correct)
	assert.Zero(t, stats.Incorrect)
	assert.False(t, eng.CurrentAnswered())
}

func TestEngine_OverallStats(t *testing.T) {
	eng := testEngine(nil)

	stats := eng.OverallStats()
	assert.Equal(t, 3, stats.TotalItems)
	assert.Zero(t, stats.AnsweredItems)
	assert.Zero(t, stats.EstimatedScore)

	require.True(t, eng.StartSession(content.KindVocab, content.DifficultyAny, 2))
	eng.SubmitAnswer(0) // v-1 correct
	eng.NextItem()
	eng.SubmitAnswer(0) // v-2 wrong
	eng.EndSession()

	stats = eng.OverallStats()
	assert.Equal(t, 2, stats.AnsweredItems)
	assert.Equal(t, 1, stats.TotalCorrect)
	assert.Equal(t, 1, stats.TotalIncorrect)
	assert.InDelta(t, 50.0, stats.OverallAccuracy, 0.01)
	assert.Greater(t, stats.EstimatedScore, 0)
}

func TestEngine_WeakAreaRepetition(t *testing.T) {
	eng := testEngine(nil)

	// Miss v-2 repeatedly; the next vocab drill must lead with it.
	require.True(t, eng.StartSession(content.KindVocab, content.DifficultyAny, 2))
	eng.SubmitAnswer(0) // v-1 correct
	eng.NextItem()
	eng.SubmitAnswer(0) // v-2 wrong
	eng.EndSession()

	require.True(t, eng.StartSession(content.KindVocab, content.DifficultyAny, 1))
	cur, ok := eng.CurrentItem()
	require.True(t, ok)
	assert.Equal(t, content.ItemID("v-2"), cur.Item.ID)
}

func TestEngine_ResetProgress(t *testing.T) {
	eng := testEngine(nil)

	require.True(t, eng.StartSession(content.KindAny, content.DifficultyAny, 3))
	eng.SubmitAnswer(0)
	eng.EndSession()

	eng.ResetProgress()

	stats := eng.OverallStats()
	assert.Zero(t, stats.AnsweredItems)
	assert.Zero(t, stats.TotalCorrect)
	assert.Zero(t, stats.EstimatedScore)
	_, found := eng.MasteryOf("v-1")
	assert.False(t, found)
}

func TestEngine_RecentSessionsWithoutEvents(t *testing.T) {
	eng := testEngine(nil)
	assert.Nil(t, eng.RecentSessions(context.Background(), 5))
}
