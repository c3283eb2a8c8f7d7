package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-doodle/internal/storage"
)

func TestHistoryHint(t *testing.T) {
	tests := []struct {
		name     string
		dbPath   string
		wantHint bool
	}{
		{"default in-memory database", storage.MemoryPath, true},
		{"empty path", "", true},
		{"file database", "~/.doodle/runs.db", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hint := historyHint(tc.dbPath)
			if got := hint != ""; got != tc.wantHint {
				t.Fatalf("historyHint(%q) = %q", tc.dbPath, hint)
			}
			if tc.wantHint && !strings.Contains(hint, "--db") {
				t.Errorf("hint should name the --db flag: %q", hint)
			}
		})
	}
}

func TestScoresDefaultsToInMemoryDatabase(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("db")
	if flag == nil {
		t.Fatal("--db flag missing")
	}
	if historyHint(flag.DefValue) == "" {
		t.Error("running scores without --db should print a hint")
	}
}
