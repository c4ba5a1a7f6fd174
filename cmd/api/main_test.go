package main

import "testing"

func TestRun_StartupFailureReturnsExitCode(t *testing.T) {
	t.Setenv("REGISTRY_DATABASE_URL", "")
	t.Setenv("DYNAMODB_ENDPOINT", "http://127.0.0.1:1")
	t.Setenv("LOG_LEVEL", "error")

	if code := run(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
}
