package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "quickadd",
	Short:   "Natural language task line parser",
	Long:    `Quickadd reads one line of natural task-entry text ("Call mom tomorrow at 5pm remind me 15 min before #family") and splits it into a clean title plus structured markers: due date, reminder, recurrence, priority, location, tags, folder, description and effort.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(detectCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
