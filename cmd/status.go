package cmd

import "fmt"

// runSetStatus marks the task identified by the single argument as done or
// pending. A task id that does not exist in the store is a normal
// outcome, reported on stdout with a zero exit.
func runSetStatus(args []string, completed bool) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	taskStore, err := GetStore()
	if err != nil {
		HandleFatalError("Error: Could not initialize the task store.", err)
	}
	defer func() { _ = taskStore.Close() }()

	found, err := taskStore.SetStatus(id, completed)
	if err != nil {
		PrintError("Error: Could not update the task store.", err)
		return nil
	}

	if !found {
		fmt.Printf("Task ID %d not found.\n", id)
		return nil
	}

	label := "PENDING"
	if completed {
		label = "DONE"
	}
	fmt.Printf("Task ID %d marked as %s.\n", id, label)
	return nil
}
