// Package engine composes the content repository, mastery tracker, session
// generator, session state machine and score estimator behind the surface
// the presentation layer consumes. The engine is constructed once and passed
// by reference; nothing here relies on ambient lookup.
package engine

import (
	"context"
	"fmt"
	"os"

	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/mastery"
	"github.com/akira/toeprep/internal/score"
	"github.com/akira/toeprep/internal/session"
	"github.com/akira/toeprep/internal/store"
)

// Options holds the engine's dependencies. Repo and Tracker are required;
// Events is optional and disables answer history when nil.
type Options struct {
	Repo    *content.Repository
	Tracker *mastery.Tracker
	Events  store.EventRepo
}

// OverallStats is the aggregate view derived from the tracker on demand.
type OverallStats struct {
	TotalItems      int
	AnsweredItems   int
	TotalCorrect    int
	TotalIncorrect  int
	OverallAccuracy float64 // Percent, 0-100
	EstimatedScore  int     // Motivational approximation, not a certified score
}

// Engine is the single entry point for the drill screens and CLI.
// All operations run to completion before another can interleave; the
// engine has no internal parallelism.
type Engine struct {
	repo      *content.Repository
	tracker   *mastery.Tracker
	generator *session.Generator
	estimator *score.Estimator
	events    store.EventRepo
	machine   *session.Machine
}

// New wires an engine from its dependencies.
func New(opts Options) *Engine {
	return &Engine{
		repo:      opts.Repo,
		tracker:   opts.Tracker,
		generator: session.NewGenerator(opts.Repo, opts.Tracker),
		estimator: score.NewEstimator(opts.Repo, opts.Tracker),
		events:    opts.Events,
		machine:   session.NewMachine(opts.Repo, opts.Tracker),
	}
}

// Repo exposes the catalog for read-only presentation needs.
func (e *Engine) Repo() *content.Repository {
	return e.repo
}

// StartSession generates a weak-area-first sequence matching the filters
// and starts a run over it. It reports false when no items are eligible;
// any prior unfinished run's counters are discarded.
func (e *Engine) StartSession(kind content.Kind, difficulty content.Difficulty, count int) bool {
	seq := e.generator.Generate(kind, difficulty, count)
	if len(seq) == 0 {
		return false
	}
	e.machine = session.NewMachine(e.repo, e.tracker)
	return e.machine.Start(seq)
}

// CurrentItem returns the item at the session cursor.
func (e *Engine) CurrentItem() (session.Current, bool) {
	return e.machine.Current()
}

// CurrentAnswered reports whether the item at the cursor was already
// submitted this run.
func (e *Engine) CurrentAnswered() bool {
	return e.machine.Answered()
}

// SubmitAnswer submits a choice for the current item, recording it into
// the tracker and the answer history. Invalid calls (no active session,
// out-of-range option, already-answered position) report false and leave
// all state unchanged.
func (e *Engine) SubmitAnswer(selected int) (session.AnswerResult, bool) {
	cur, ok := e.machine.Current()
	if !ok {
		return session.AnswerResult{}, false
	}
	res, ok := e.machine.Answer(selected)
	if !ok {
		return session.AnswerResult{}, false
	}
	e.appendAnswerEvent(cur, selected, res)
	return res, true
}

// NextItem moves the cursor forward; false at the last item is the
// completion signal.
func (e *Engine) NextItem() bool {
	return e.machine.Advance()
}

// PreviousItem moves the cursor backward.
func (e *Engine) PreviousItem() bool {
	return e.machine.Retreat()
}

// SessionState returns the session lifecycle state.
func (e *Engine) SessionState() session.State {
	return e.machine.State()
}

// SessionStats returns the active run's counters.
func (e *Engine) SessionStats() session.Stats {
	return e.machine.Stats()
}

// EndSession completes the run, even mid-sequence, and returns its summary.
func (e *Engine) EndSession() *session.Summary {
	return e.machine.End()
}

// OverallStats recomputes the aggregate view from the tracker.
func (e *Engine) OverallStats() OverallStats {
	correct, incorrect := e.tracker.Totals()
	stats := OverallStats{
		TotalItems:     e.repo.Len(),
		AnsweredItems:  e.tracker.AnsweredCount(),
		TotalCorrect:   correct,
		TotalIncorrect: incorrect,
		EstimatedScore: e.estimator.Estimate(),
	}
	if correct+incorrect > 0 {
		stats.OverallAccuracy = float64(correct) / float64(correct+incorrect) * 100
	}
	return stats
}

// MasteryOf exposes an item's record for post-session review.
func (e *Engine) MasteryOf(id content.ItemID) (mastery.Record, bool) {
	return e.tracker.Record(id)
}

// ResetProgress clears all mastery records and their persisted state.
func (e *Engine) ResetProgress() {
	e.tracker.Reset()
}

// RecentSessions returns per-session answer history, most recent first.
// Without an event repo it returns nothing.
func (e *Engine) RecentSessions(ctx context.Context, limit int) []store.SessionActivity {
	if e.events == nil {
		return nil
	}
	activity, err := e.events.RecentSessions(ctx, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: query session history: %v\n", err)
		return nil
	}
	return activity
}

// appendAnswerEvent records the answer into history. Failures degrade the
// same way snapshot saves do: logged, never propagated.
func (e *Engine) appendAnswerEvent(cur session.Current, selected int, res session.AnswerResult) {
	if e.events == nil {
		return
	}
	err := e.events.AppendAnswer(context.Background(), store.AnswerEventData{
		SessionID:  e.machine.ID(),
		ItemID:     string(cur.Item.ID),
		ItemKind:   string(cur.Item.Kind),
		Selected:   selected,
		Correct:    res.Correct,
		ResponseMs: res.ResponseMs,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: append answer event: %v\n", err)
	}
}
