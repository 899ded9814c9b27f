package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taskman-cli/taskman/models"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <description>...",
	Aliases: []string{"a", "new"},
	Short:   "Add a new pending task",
	Long: `Add a new task to the store. All arguments are joined with single
spaces into the description, so quoting is optional.

A description must fit on one line and is capped at 256 bytes; longer
descriptions are rejected, not truncated. Commas are allowed and are
stored verbatim.`,
	Example: `  taskman add Buy milk
  taskman add "Call the dentist about Tuesday"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		if err := models.ValidateDescription(description); err != nil {
			return err
		}

		taskStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the task store.", err)
		}
		defer func() { _ = taskStore.Close() }()

		task, err := taskStore.Add(description)
		if err != nil {
			// An unwritable store is reported, not a crash.
			PrintError("Error: Could not write to the task store.", err)
			return nil
		}

		fmt.Printf("Task added: ID %d - %q\n", task.ID, task.Description)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
