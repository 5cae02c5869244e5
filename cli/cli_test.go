package cli

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p, err := Parse(fs, []string{"w1.red", "w2.red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Config.CoreSize != DefaultCoreSize || p.Config.Rounds != DefaultRounds {
		t.Fatalf("unexpected defaults: %+v", p.Config)
	}
	if p.Warrior1ID != 1 || p.Warrior2ID != 2 {
		t.Fatalf("unexpected default ids: %d, %d", p.Warrior1ID, p.Warrior2ID)
	}
	if p.Warrior1Path != "w1.red" || p.Warrior2Path != "w2.red" {
		t.Fatalf("unexpected warrior paths: %q, %q", p.Warrior1Path, p.Warrior2Path)
	}
}

func TestParseRejectsWrongFileCount(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := Parse(fs, []string{"only-one.red"})
	if err == nil {
		t.Fatal("expected error for wrong number of warrior files")
	}
	if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestParseRejectsInvalidConfig(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := Parse(fs, []string{"-core=1", "w1.red", "w2.red"})
	if err == nil {
		t.Fatal("expected error for core size below minimum")
	}
}

func TestParseOverridesFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p, err := Parse(fs, []string{"-core=2000", "-rounds=5", "-seed=42", "-1988", "w1.red", "w2.red"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Config.CoreSize != 2000 || p.Config.Rounds != 5 || p.Config.Seed != 42 || !p.Config.Use1988Rules {
		t.Fatalf("flag overrides not applied: %+v", p.Config)
	}
}

func TestReadWarrior(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "imp.red")
	if err := os.WriteFile(path, []byte("MOV.I $0, $1\n"), 0o644); err != nil {
		t.Fatalf("test setup failed: %v", err)
	}
	src, err := ReadWarrior(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if src != "MOV.I $0, $1\n" {
		t.Fatalf("unexpected contents: %q", src)
	}
}

func TestReadWarriorMissingFile(t *testing.T) {
	_, err := ReadWarrior("/nonexistent/path/does-not-exist.red")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
