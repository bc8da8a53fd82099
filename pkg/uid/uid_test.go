package uid

import "testing"

func TestGenerateTokenID(t *testing.T) {
	a, err := GenerateTokenID()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	b, _ := GenerateTokenID()
	if len(a) != 32 {
		t.Errorf("Expected 32 hex characters, got %d", len(a))
	}
	if a == b {
		t.Error("Expected distinct IDs")
	}
}

func TestGenerateConnectionID(t *testing.T) {
	if id := GenerateConnectionID(); len(id) != 16 {
		t.Errorf("Expected 16 hex characters, got %q", id)
	}
}
