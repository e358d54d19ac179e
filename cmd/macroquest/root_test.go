package macroquest

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	out := runCommand(t, "--help")
	if out == "" {
		t.Fatal("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroquest.db")
	for i := 0; i < 2; i++ {
		runCommand(t, "--db", path, "init")
	}
}

func TestLogMealAndProgressFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroquest.db")
	runCommand(t, "--db", path, "init")

	out := runCommand(t, "--db", path, "log", "meal", "--name", "Chicken bowl", "--calories", "550")
	if !strings.Contains(out, "Logged \"Chicken bowl\"") {
		t.Fatalf("unexpected log output: %s", out)
	}
	if !strings.Contains(out, "Achievement unlocked") {
		t.Fatalf("expected first-meal unlock announcement, got: %s", out)
	}

	out = runCommand(t, "--db", path, "progress")
	if !strings.Contains(out, "Level 1") {
		t.Fatalf("unexpected progress output: %s", out)
	}
	if !strings.Contains(out, "Meals: 1") {
		t.Fatalf("expected meal counter in output: %s", out)
	}
}

func TestScanCommandFlagsBannedIngredients(t *testing.T) {
	out := runCommand(t, "scan", "Water, Red 40, Titanium Dioxide (E171)")
	if !strings.Contains(out, "Safety score: 70/100") {
		t.Fatalf("expected score 70, got: %s", out)
	}
	if !strings.Contains(out, "Red 40") || !strings.Contains(out, "Titanium Dioxide") {
		t.Fatalf("expected both flags in output: %s", out)
	}
}

func TestWeightCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroquest.db")
	runCommand(t, "--db", path, "init")
	runCommand(t, "--db", path, "weight", "log", "180", "--unit", "lbs")

	out := runCommand(t, "--db", path, "weight", "progress")
	if !strings.Contains(out, "Starting: 180.0 lbs") {
		t.Fatalf("unexpected weight progress output: %s", out)
	}
}

func TestConfigRoundTripCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macroquest.db")
	runCommand(t, "--db", path, "config", "set", "calorie_budget", "1800")

	out := runCommand(t, "--db", path, "config", "get", "calorie_budget")
	if !strings.Contains(out, "1800") {
		t.Fatalf("expected 1800, got: %s", out)
	}
}
