package cmd

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTaskID parses a task id from a command argument. Ids are positive
// integers; anything else is a usage error.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q: please provide a positive integer", arg)
	}
	return id, nil
}
