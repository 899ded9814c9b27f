package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// MaxDescriptionLen is the byte cap on a task description. Descriptions
// over the cap are rejected at add time rather than truncated.
const MaxDescriptionLen = 256

// Task represents one record of the store: a numeric id, a free-form
// description, and a completion flag.
type Task struct {
	ID          int    `validate:"required,gt=0"`
	Description string `validate:"required,max=256"`
	Completed   bool
}

// StatusLabel returns the display label for the task's completion flag.
func (t Task) StatusLabel() string {
	if t.Completed {
		return "DONE"
	}
	return "PENDING"
}

// global validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s interface{}) error {
	if validate == nil {
		// Safeguard for tests running in isolation.
		validate = validator.New()
	}
	err := validate.Struct(s)
	if err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMessages []string
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
		}
		return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
	}
	return nil
}

// ValidateDescription checks the constraints the line format imposes on
// descriptions: non-empty, no newline characters (a record is exactly one
// line), and at most MaxDescriptionLen bytes.
//
// Embedded commas are allowed. The store's decoder splits on the first two
// commas only, so commas inside a description survive a round trip, but
// other tools parsing the file naively may mis-split such lines.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description must not be empty")
	}
	if strings.ContainsAny(description, "\r\n") {
		return fmt.Errorf("description must not contain newline characters")
	}
	if len(description) > MaxDescriptionLen {
		return fmt.Errorf("description is %d bytes; the maximum is %d", len(description), MaxDescriptionLen)
	}
	return nil
}

// NewTask builds a pending task with the given id and description.
func NewTask(id int, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Completed:   false,
	}
}
