package models

import (
	"strings"
	"testing"
)

func TestTask_ValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name:    "valid pending task",
			task:    NewTask(1, "buy milk"),
			wantErr: false,
		},
		{
			name:    "valid completed task",
			task:    Task{ID: 42, Description: "ship it", Completed: true},
			wantErr: false,
		},
		{
			name:    "zero id",
			task:    Task{ID: 0, Description: "x"},
			wantErr: true,
		},
		{
			name:    "negative id",
			task:    Task{ID: -3, Description: "x"},
			wantErr: true,
		},
		{
			name:    "empty description",
			task:    Task{ID: 1, Description: ""},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantErr     bool
	}{
		{"plain", "buy milk", false},
		{"with commas", "eggs, flour, and milk", false},
		{"exactly at cap", strings.Repeat("a", MaxDescriptionLen), false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"newline", "line one\nline two", true},
		{"carriage return", "a\rb", true},
		{"over cap", strings.Repeat("a", MaxDescriptionLen+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.description)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDescription(%q) error = %v, wantErr %v", tt.description, err, tt.wantErr)
			}
		})
	}
}

func TestTask_StatusLabel(t *testing.T) {
	if got := (Task{Completed: false}).StatusLabel(); got != "PENDING" {
		t.Errorf("StatusLabel pending: got %q", got)
	}
	if got := (Task{Completed: true}).StatusLabel(); got != "DONE" {
		t.Errorf("StatusLabel done: got %q", got)
	}
}
