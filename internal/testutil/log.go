package testutil

import (
	"testing"

	"github.com/loglens/loglens/internal/eventlog"
)

// MustParseLog parses the plain-text trace format, failing the test on
// error. Keeps fixture logs readable inline in test files.
func MustParseLog(t *testing.T, text string) *eventlog.Log {
	t.Helper()

	log, err := eventlog.ParseText(text)
	if err != nil {
		t.Fatalf("parse fixture log: %v", err)
	}
	return log
}
