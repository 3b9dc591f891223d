package logger

import (
	"testing"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantError bool
	}{
		{"valid debug", "debug", false},
		{"valid info", "info", false},
		{"valid warn", "warn", false},
		{"invalid level", "notalevel", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Initialize(tt.level)
			if (err != nil) != tt.wantError {
				t.Errorf("Initialize(%q) error = %v, wantError %v", tt.level, err, tt.wantError)
			}
		})
	}
}

func TestInitialize_ReplacesGlobal(t *testing.T) {
	if err := Initialize("info"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Log == nil {
		t.Fatal("global logger was not set")
	}
	if !Log.Core().Enabled(0) { // InfoLevel
		t.Error("info level should be enabled")
	}
}
