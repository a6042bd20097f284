package main

import (
	"os"
	"path/filepath"
	"testing"
)

// getBinaryPath returns the path to the interview_agent binary for testing.
// CLI tests exec the compiled binary rather than calling command funcs
// directly, so they are skipped when it has not been built yet.
func getBinaryPath(t *testing.T) string {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", "interview_agent")
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'go build -o bin/interview_agent ./cmd/interview_agent'", binaryPath)
	}

	return binaryPath
}
