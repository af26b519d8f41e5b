package tui

import (
	"path/filepath"
	"testing"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" {
		t.Errorf("Address = %q, expected :23234", cfg.Address)
	}
	if cfg.GameID != "pacmaze" {
		t.Errorf("GameID = %q, expected pacmaze", cfg.GameID)
	}
	if cfg.TickRate <= 0 {
		t.Errorf("TickRate = %d, expected positive", cfg.TickRate)
	}
}

func TestNewSSHServerRejectsUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")

	if _, err := NewSSHServer(cfg, nil); err == nil {
		t.Error("expected error for unregistered game")
	}
}
