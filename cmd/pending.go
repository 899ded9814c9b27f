package cmd

import "github.com/spf13/cobra"

// pendingCmd represents the pending command
var pendingCmd = &cobra.Command{
	Use:     "pending <task_id>",
	Aliases: []string{"undone", "reopen"},
	Short:   "Mark a task as pending again",
	Long:    `Mark the task with the given id as pending, undoing a previous done.`,
	Example: `  taskman pending 3`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetStatus(args, false)
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd)
}
