package mathx

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(uint32(5), 50, 60000); got != 50 {
		t.Errorf("Clamp(5) = %d, want 50", got)
	}
	if got := Clamp(uint32(750), 50, 60000); got != 750 {
		t.Errorf("Clamp(750) = %d, want 750", got)
	}
	if got := Clamp(uint32(100000), 50, 60000); got != 60000 {
		t.Errorf("Clamp(100000) = %d, want 60000", got)
	}
	// Swapped bounds behave the same.
	if got := Clamp(7, 10, 1); got != 7 {
		t.Errorf("Clamp swapped bounds = %d, want 7", got)
	}
}
