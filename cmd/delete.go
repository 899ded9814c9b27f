package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete <task_id>",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a task",
	Long: `Delete the task with the given id. Its id is never reused: new tasks
always get one more than the highest id ever stored.`,
	Example: `  taskman delete 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseTaskID(args[0])
		if err != nil {
			return err
		}

		taskStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		found, err := taskStore.Delete(id)
		if err != nil {
			PrintError("Error: Could not update the task store.", err)
			return nil
		}

		if !found {
			fmt.Printf("Task ID %d not found.\n", id)
			return nil
		}
		fmt.Printf("Task ID %d deleted.\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
