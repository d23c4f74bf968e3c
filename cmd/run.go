package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/akira/toeprep/internal/app"
	"github.com/akira/toeprep/internal/content"
	"github.com/akira/toeprep/internal/engine"
	"github.com/akira/toeprep/internal/mastery"
	"github.com/akira/toeprep/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, wires the engine, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	eng, closeStore, err := buildEngine(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	return app.Run(eng)
}

// buildEngine assembles the engine behind every command. The store is
// optional: when it cannot be opened the app still runs, in-memory only.
func buildEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	repo := content.Load(os.Getenv("TOEPREP_BANK"))

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: open store: %v\n", err)
		fmt.Fprintln(os.Stderr, "Progress will not be saved this run.")
		eng := engine.New(engine.Options{
			Repo:    repo,
			Tracker: mastery.NewTracker(nil, nil),
		})
		return eng, func() {}, nil
	}

	stateRepo := st.StateRepo()
	snap, err := stateRepo.LoadMastery(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load mastery state: %v, starting fresh\n", err)
		snap = nil
	}

	eng := engine.New(engine.Options{
		Repo:    repo,
		Tracker: mastery.NewTracker(snap, stateRepo),
		Events:  st.EventRepo(),
	})
	return eng, func() { st.Close() }, nil
}
