package store

import "github.com/taskman-cli/taskman/models"

// TaskStore defines the interface for task persistence.
// Ids are positive integers assigned monotonically by the store and are
// never reused after deletion.
type TaskStore interface {
	// NextID returns the id the next added task will receive: one more
	// than the highest id currently on disk, or 1 for an empty or
	// missing store.
	NextID() (int, error)

	// Add appends a new pending task with the given description and
	// returns the stored record. The description must fit on one line
	// and stay within models.MaxDescriptionLen bytes.
	Add(description string) (models.Task, error)

	// List returns all well-formed records in on-disk order. A missing
	// store file yields an empty slice, not an error.
	List() ([]models.Task, error)

	// SetStatus sets the completion flag of the record with the given
	// id. It reports whether the id was found; not-found is a normal
	// outcome, not an error.
	SetStatus(id int, completed bool) (bool, error)

	// Delete removes the record with the given id. It reports whether
	// the id was found; not-found is a normal outcome, not an error.
	Delete(id int) (bool, error)

	// Close releases any resources held by the store, such as file
	// locks. It should be called when the store is no longer needed.
	Close() error
}
