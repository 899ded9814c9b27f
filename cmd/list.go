package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/taskman-cli/taskman/internal/ui"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tasks",
	Long:    `List every task in the store in the order it appears on disk. A missing store file simply means there are no tasks yet.`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		taskStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		tasks, err := taskStore.List()
		if err != nil {
			PrintError("Error: Could not read the task store.", err)
			return nil
		}

		if len(tasks) == 0 {
			fmt.Println("No tasks found. Create one using 'add' command.")
			return nil
		}

		ui.RenderTaskList(os.Stdout, tasks)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
