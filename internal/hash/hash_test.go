package hash

import (
	"testing"
)

func TestCalculateHash(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		key       string
		wantEmpty bool
	}{
		{"empty key", "data", "", true},
		{"empty data", "", "key", false},
		{"normal", "data", "key", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHash(tt.data, tt.key)
			if tt.wantEmpty && got != "" {
				t.Errorf("CalculateHash(%q, %q) = %q, want empty string", tt.data, tt.key, got)
			}
			if !tt.wantEmpty && got == "" {
				t.Errorf("CalculateHash(%q, %q) = empty, want non-empty", tt.data, tt.key)
			}
		})
	}
}

func TestCalculateHash_Deterministic(t *testing.T) {
	if CalculateHash("payload", "key") != CalculateHash("payload", "key") {
		t.Error("same input produced different hashes")
	}
	if CalculateHash("payload", "key") == CalculateHash("payload", "other") {
		t.Error("different keys produced the same hash")
	}
}
