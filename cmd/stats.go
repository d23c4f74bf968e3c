package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

const recentSessionLimit = 10

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show overall progress and recent drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, closeStore, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		overall := eng.OverallStats()
		fmt.Printf("Items answered:   %d of %d\n", overall.AnsweredItems, overall.TotalItems)
		fmt.Printf("Correct answers:  %d\n", overall.TotalCorrect)
		fmt.Printf("Wrong answers:    %d\n", overall.TotalIncorrect)
		fmt.Printf("Overall accuracy: %.0f%%\n", overall.OverallAccuracy)
		fmt.Printf("Estimated score:  %d / 495\n", overall.EstimatedScore)

		recent := eng.RecentSessions(context.Background(), recentSessionLimit)
		if len(recent) == 0 {
			return nil
		}

		fmt.Println("\nRecent drills:")
		for _, s := range recent {
			fmt.Printf("  %s  %2d answered, %2d correct\n",
				s.StartedAt.Local().Format("2006-01-02 15:04"), s.Answered, s.Correct)
		}
		return nil
	},
}
