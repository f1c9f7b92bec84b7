package swar

import "testing"

// UnalignedLoadsOK is purely informational and must never panic or depend
// on call order; it's read repeatedly from config.go.
func TestUnalignedLoadsOKStable(t *testing.T) {
	first := UnalignedLoadsOK()
	for i := 0; i < 100; i++ {
		if UnalignedLoadsOK() != first {
			t.Fatalf("UnalignedLoadsOK changed between calls")
		}
	}
}
