package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/theirongolddev/refi/internal/model"
)

func useTempConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv(EnvConfigPath, path)
	return path
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	useTempConfig(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Fatal("Exists() = true for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := useTempConfig(t)

	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.Profile.RollClosingCosts = true
	cfg.Profile.Current.OriginationYear = model.Int(2019)
	cfg.Profile.New.CashIn = nil

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatalf("config not written to %s", path)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_PartialProfileLeavesFieldsUnset(t *testing.T) {
	path := useTempConfig(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	data := strings.Join([]string{
		`[profile.new]`,
		`rate = 4.25`,
		`term = 15`,
	}, "\n")
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want default", cfg.Appearance.Theme)
	}
	in := cfg.Profile.Input()
	if in.Current.OriginalAmount != nil {
		t.Errorf("OriginalAmount = %v, want unset", *in.Current.OriginalAmount)
	}
	if in.New.Rate == nil || *in.New.Rate != 4.25 {
		t.Errorf("New.Rate = %v, want 4.25", in.New.Rate)
	}
	if in.New.Term == nil || *in.New.Term != 15 {
		t.Errorf("New.Term = %v, want 15", in.New.Term)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := useTempConfig(t)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[appearance\ntheme ="), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("err = %v, want parsing config prefix", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("a failed load should still return defaults")
	}
}

func TestProfileInputRoundTrip(t *testing.T) {
	p := DefaultConfig().Profile
	p.New.OriginationYear = model.Int(2026)
	if got := ProfileFromInput(p.Input()); !reflect.DeepEqual(got, p) {
		t.Fatalf("ProfileFromInput(Input()) = %+v, want %+v", got, p)
	}
}

func TestPath_XDG(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if want := filepath.Join(dir, "refi", "config.toml"); Path() != want {
		t.Fatalf("Path() = %q, want %q", Path(), want)
	}
}
