package cmd

import "testing"

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseTaskID(tt.arg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTaskID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("parseTaskID(%q): got %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}
