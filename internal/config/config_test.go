package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("scoring:\n  top_n: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Scoring.TopN != 2 {
		t.Fatalf("top_n: got=%d want=2", cfg.Scoring.TopN)
	}
	if cfg.Scoring.RequiredWeight != 2 || cfg.Scoring.ConfidenceFloor != 35 {
		t.Fatalf("defaults lost: %+v", cfg.Scoring)
	}
	if cfg.Matching.BasePercent != 60 {
		t.Fatalf("matching.base_percent: got=%d want=60", cfg.Matching.BasePercent)
	}
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()
	if err := Validate(Default()); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
		wantOK  bool
	}{
		{name: "ok", mutate: func(*Config) {}, wantOK: true},
		{name: "bad port", mutate: func(c *Config) { c.App.Port = 0 }, wantErr: "app.port"},
		{name: "bad timezone", mutate: func(c *Config) { c.App.Timezone = "Mars/Olympus" }, wantErr: "app.timezone"},
		{name: "negative weight", mutate: func(c *Config) { c.Scoring.GrowthWeight = -1 }, wantErr: "weights"},
		{name: "floor above ceiling", mutate: func(c *Config) { c.Scoring.ConfidenceFloor = 90; c.Scoring.ConfidenceCeiling = 80 }, wantErr: "confidence bounds"},
		{name: "zero sample", mutate: func(c *Config) { c.Matching.SampleSize = 0 }, wantErr: "matching.sample_size"},
		{name: "zero threshold", mutate: func(c *Config) { c.Analytics.DuplicateSessionThreshold = 0 }, wantErr: "duplicate_session_threshold"},
		{name: "log mode", mutate: func(c *Config) { c.App.LogMode = " PROD " }, wantOK: true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(&cfg)
			out, vr := NormalizeAndValidate(cfg)
			if vr.OK() != tc.wantOK {
				t.Fatalf("ok: got=%v want=%v errors=%v", vr.OK(), tc.wantOK, vr.Errors)
			}
			if tc.wantErr != "" && !strings.Contains(strings.Join(vr.Errors, "\n"), tc.wantErr) {
				t.Fatalf("errors %v do not mention %q", vr.Errors, tc.wantErr)
			}
			if tc.name == "log mode" && out.App.LogMode != "prod" {
				t.Fatalf("log mode not normalized: got=%q", out.App.LogMode)
			}
		})
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yml")

	cfg := Default()
	cfg.Matching.SampleSize = 7
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	// second save leaves a backup of the first
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("save again: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Fatalf("expected backup file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Matching.SampleSize != 7 {
		t.Fatalf("sample_size: got=%d want=7", got.Matching.SampleSize)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.Scoring.TopN = 0
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("expected validation error")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("invalid config must not be written: %v", err)
	}
}

func TestValidateTopNBounds(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		topN int
		ok   bool
	}{
		{0, false},
		{1, true},
		{3, true},
		{4, false},
	} {
		cfg := Default()
		cfg.Scoring.TopN = tc.topN
		_, vr := NormalizeAndValidate(cfg)
		if vr.OK() != tc.ok {
			t.Fatalf("top_n=%d: got ok=%v want=%v (%v)", tc.topN, vr.OK(), tc.ok, vr.Errors)
		}
	}
}

func TestEnsureUserConfig(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	// no default file on disk: falls back to Default()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "missing.yml"))
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Port != Default().App.Port {
		t.Fatalf("port: got=%d want=%d", cfg.App.Port, Default().App.Port)
	}

	// existing file is left untouched
	if err := os.WriteFile(path, []byte("app:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureUserConfig(dir, filepath.Join(dir, "missing.yml")); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	cfg, _ = Load(path)
	if cfg.App.Port != 9000 {
		t.Fatalf("user config overwritten: port=%d", cfg.App.Port)
	}
}

func TestOverlayCatalog(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	cat := DefaultCatalog()
	if err := OverlayCatalog(&cat, filepath.Join(dir, "none.yml")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}
	if len(cat.CareerPaths) != 4 || len(cat.Counselors) != 3 {
		t.Fatalf("built-in seed changed: careers=%d counselors=%d", len(cat.CareerPaths), len(cat.Counselors))
	}

	path := filepath.Join(dir, "catalog.yml")
	body := "career_paths:\n  - title: SRE\n    required_skills: [Go, Kubernetes]\n    category: Infrastructure\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := OverlayCatalog(&cat, path); err != nil {
		t.Fatalf("overlay: %v", err)
	}
	if len(cat.CareerPaths) != 1 || cat.CareerPaths[0].Title != "SRE" {
		t.Fatalf("career paths not replaced: %+v", cat.CareerPaths)
	}
	if len(cat.Counselors) != 3 {
		t.Fatalf("counselors should keep the seed when the file omits them: got=%d", len(cat.Counselors))
	}
	if got := cat.CareerPaths[0].Domain().RequiredSkills; len(got) != 2 || got[1] != "Kubernetes" {
		t.Fatalf("required skills: got=%v", got)
	}
}
