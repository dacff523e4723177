package main

import "testing"

// TestRun_Version verifies that the full dependency graph wires up and the
// version command succeeds.
func TestRun_Version(t *testing.T) {
	if code := run([]string{"version"}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

// TestRun_UnknownCommand verifies that command errors map to a non-zero exit.
func TestRun_UnknownCommand(t *testing.T) {
	if code := run([]string{"bogus"}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
