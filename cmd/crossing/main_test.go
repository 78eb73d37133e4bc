package main

import (
	"io"
	"path/filepath"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"ada", 12, "ada"},
		{"exactlytwelv", 12, "exactlytwelv"},
		{"a-very-long-player-name", 12, "a-very-long~"},
		{"ПриветМир!!", 6, "Приве~"},
	}
	for _, tc := range tests {
		if got := truncate(tc.in, tc.n); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, expected %q", tc.in, tc.n, got, tc.want)
		}
	}
}

func TestUnknownDifficultyRejected(t *testing.T) {
	old := flagDifficulty
	t.Cleanup(func() { flagDifficulty = old })

	flagDifficulty = "nightmare"
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err == nil {
		t.Error("expected an error for an unknown difficulty")
	}

	flagDifficulty = "hard"
	if err := rootCmd.PersistentPreRunE(rootCmd, nil); err != nil {
		t.Errorf("hard rejected: %v", err)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	oldFile, oldLevel := flagLogFile, flagLogLevel
	t.Cleanup(func() { flagLogFile, flagLogLevel = oldFile, oldLevel })

	flagLogFile = ""
	flagLogLevel = "loud"
	if _, _, err := newLogger(io.Discard); err == nil {
		t.Error("expected an error for an unknown level")
	}

	flagLogFile = filepath.Join(t.TempDir(), "crossing.log")
	flagLogLevel = "debug"
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer closeLog()
	logger.Debug("written to file")
}
