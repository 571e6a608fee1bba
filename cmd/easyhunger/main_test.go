package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/easy-hunger/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInitWritesDefaultsOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	if _, err := execute(t, "--config-dir", dir, "config", "init"); err != nil {
		t.Fatalf("config init: %v", err)
	}
	for _, name := range []string{config.ModFile, config.BiomesFile, config.FoodsFile, config.DrinksFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("expected %s written: %v", name, err)
		}
	}
	if _, err := execute(t, "--config-dir", dir, "config", "init"); err == nil {
		t.Fatalf("expected second init without --force to fail")
	}
	if _, err := execute(t, "--config-dir", dir, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}
	if _, err := execute(t, "--config-dir", dir, "config", "check"); err != nil {
		t.Fatalf("config check: %v", err)
	}
}

func TestItemCommandNormalizesAndSuggests(t *testing.T) {
	out, err := execute(t, "--config-dir", t.TempDir(), "item", "*Waterskin:Filled_Water", "Food_Bred")
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if !strings.Contains(out, "Waterskin") || !strings.Contains(out, "25") {
		t.Fatalf("expected waterskin drink value in output:\n%s", out)
	}
	if !strings.Contains(out, "did you mean Food_Bread?") {
		t.Fatalf("expected a suggestion for the typo:\n%s", out)
	}
}

func TestBiomeCommandExplainsMatch(t *testing.T) {
	out, err := execute(t, "--config-dir", t.TempDir(), "biome", "Dunes_Desert_Red", "Nowhere")
	if err != nil {
		t.Fatalf("biome: %v", err)
	}
	for _, want := range []string{"keyword Desert", "x2.00", "default"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if _, err := execute(t, "--config-dir", t.TempDir(), "biome"); err == nil {
		t.Fatalf("expected an error without queries")
	}
}

func TestSimulateRunsAndResumes(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "sim.db")
	args := []string{"--config-dir", dir, "--log-level", "error", "simulate", "--db", db, "--players", "2", "--duration", "10m", "--seed", "3"}

	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	if !strings.Contains(out, "Simulated 10m0s of game time") {
		t.Fatalf("unexpected summary:\n%s", out)
	}

	out, err = execute(t, args...)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if !strings.Contains(out, "Simulated 20m0s of game time") {
		t.Fatalf("expected the tick counter to resume:\n%s", out)
	}
}

func TestSimulateRejectsNonPositiveInterval(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "sim.db")
	for _, interval := range []string{"0", "-1s"} {
		_, err := execute(t, "--config-dir", dir, "--log-level", "error", "simulate", "--db", db, "--interval", interval, "--duration", "1s")
		if err == nil || !strings.Contains(err.Error(), "--interval") {
			t.Fatalf("interval %s: expected an interval error, got %v", interval, err)
		}
	}
}

func TestInvalidEnvironmentFailsCommand(t *testing.T) {
	t.Setenv("EASYHUNGER_BIOME_MODIFIERS", "sometimes")
	if _, err := execute(t, "--config-dir", t.TempDir(), "biome", "Desert"); err == nil {
		t.Fatalf("expected an error for an unparsable environment")
	}
}

func TestParseXZ(t *testing.T) {
	pos, err := parseXZ("12.5, -3")
	if err != nil || pos.X != 12.5 || pos.Z != -3 {
		t.Fatalf("parseXZ: %+v err=%v", pos, err)
	}
	if _, err := parseXZ("12"); err == nil {
		t.Fatalf("expected error for a single coordinate")
	}
}
