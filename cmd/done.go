package cmd

import "github.com/spf13/cobra"

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done <task_id>",
	Aliases: []string{"d", "finish", "complete"},
	Short:   "Mark a task as done",
	Long:    `Mark the task with the given id as completed. Marking an already completed task done again is harmless.`,
	Example: `  taskman done 3`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetStatus(args, true)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
