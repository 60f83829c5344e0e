package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"markbookctl/pkg/grades"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "markbookctl-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Load with no existing file gives the defaults
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg.TimeZone != "America/Denver" || len(cfg.ProgramGroups) != 2 {
		t.Fatalf("expected default config, got %+v", cfg)
	}

	// 2. Modify and Save the config
	cfg.Username = "student1"
	cfg.TimeZone = "America/Edmonton"
	cfg.ProgramGroups = []grades.ProgramGroup{{Name: "science", Courses: []string{"Chemistry 20", "Physics 20 AP"}}}
	cfg.RestrictedCourses = []string{"Chemistry 20"}
	cfg.RestrictedUsers = []string{"student1"}
	cfg.AccentColor = "42"

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	configPath := filepath.Join(tempDir, ".markbookctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigPartialFileGetsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".markbookctl.json")
	if err := os.WriteFile(configPath, []byte(`{"username": "student1"}`), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load partial config: %v", err)
	}
	if cfg.Username != "student1" || cfg.TimeZone != "America/Denver" || cfg.Alias("CAD1") != "CAD 1" {
		t.Errorf("expected defaults to fill the gaps, got %+v", cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "markbookctl-config-err-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".markbookctl.json")
	err = os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := Default()
	cfg.TimeZone = "Mars/Olympus_Mons"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected unknown time zone to be rejected")
	}

	cfg = Default()
	cfg.ProgramGroups = append(cfg.ProgramGroups, grades.ProgramGroup{Name: "empty"})
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected a group without courses to be rejected")
	}

	cfg = Default()
	cfg.BaseURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected an invalid base URL to be rejected")
	}
}

func TestLoadEnvApply(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil { // no stray .env file
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("MARKBOOK_SESSION", "abc123")
	t.Setenv("MARKBOOK_USER", "student2")
	t.Setenv("MARKBOOK_TIME_ZONE", "UTC")
	t.Setenv("MARKBOOK_BASE_URL", "http://localhost:9999")

	env, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv failed: %v", err)
	}
	if env.Session != "abc123" || env.LogLevel != "info" {
		t.Errorf("unexpected env: %+v", env)
	}

	cfg := Default()
	cfg.Apply(env)
	if cfg.Username != "student2" || cfg.TimeZone != "UTC" || cfg.BaseURL != "http://localhost:9999" {
		t.Errorf("env was not applied: %+v", cfg)
	}

	loc, err := cfg.Location()
	if err != nil || loc.String() != "UTC" {
		t.Errorf("expected UTC location, got %v (%v)", loc, err)
	}
}
