package config

import (
	"os"
	"testing"
)

func TestLoadEnvDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	for _, k := range []string{"PACMAZE_DB", "PACMAZE_FPS", "PACMAZE_LOG_LEVEL", "PACMAZE_SSH_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	env := LoadEnv()
	if env.FPS != 30 {
		t.Errorf("FPS = %d, expected 30", env.FPS)
	}
	if env.LogLevel != "info" {
		t.Errorf("LogLevel = %q, expected info", env.LogLevel)
	}
	if env.DBPath != "" {
		t.Errorf("DBPath = %q, expected empty", env.DBPath)
	}
}

func TestLoadEnvFromDotEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PACMAZE_FPS", "")
	os.Unsetenv("PACMAZE_FPS")
	t.Setenv("PACMAZE_LOG_LEVEL", "")
	os.Unsetenv("PACMAZE_LOG_LEVEL")
	t.Setenv("PACMAZE_DB", "")
	os.Unsetenv("PACMAZE_DB")

	if err := os.WriteFile(".env", []byte("PACMAZE_FPS=60\nPACMAZE_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	env := LoadEnv()
	if env.FPS != 60 {
		t.Errorf("FPS = %d, expected 60", env.FPS)
	}
	if env.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, expected debug", env.LogLevel)
	}
}

func TestGetEnvIntInvalid(t *testing.T) {
	t.Setenv("PACMAZE_TEST_INT", "abc")
	if got := getEnvInt("PACMAZE_TEST_INT", 7); got != 7 {
		t.Errorf("getEnvInt = %d, expected 7", got)
	}
}
