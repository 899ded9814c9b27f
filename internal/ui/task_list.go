// Package ui renders taskman output for the terminal.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/taskman-cli/taskman/models"
)

const ruleWidth = 54

// RenderTaskList writes the task listing to w: a rule, one row per task
// with a cyan id and a green DONE or yellow PENDING marker, and a
// closing rule. Rows appear in the order given, which is on-disk order.
func RenderTaskList(w io.Writer, tasks []models.Task) {
	rule := StyleHeader.Render(strings.Repeat("-", ruleWidth))
	fmt.Fprintln(w, rule)
	for _, t := range tasks {
		style := StylePending
		if t.Completed {
			style = StyleDone
		}
		status := style.Render(fmt.Sprintf("%-10s", "["+t.StatusLabel()+"]"))
		fmt.Fprintf(w, "%s Status: %s Description: %s\n",
			StyleID.Render(fmt.Sprintf("ID: %-4d", t.ID)), status, t.Description)
	}
	fmt.Fprintln(w, rule)
}
