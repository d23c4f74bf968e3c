package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all saved progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Print("This erases all saved progress. Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		line, _ := reader.ReadString('\n')
		if strings.ToLower(strings.TrimSpace(line)) != "y" {
			fmt.Println("Aborted.")
			return nil
		}

		eng, closeStore, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer closeStore()

		eng.ResetProgress()
		fmt.Println("Progress cleared.")
		return nil
	},
}
