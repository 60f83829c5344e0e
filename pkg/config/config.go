package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"markbookctl/pkg/grades"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	BaseURL           string                `json:"base_url,omitempty" validate:"omitempty,url"`
	Username          string                `json:"username,omitempty"`
	TimeZone          string                `json:"time_zone,omitempty" validate:"required"`
	ProgramGroups     []grades.ProgramGroup `json:"program_groups,omitempty" validate:"dive"`
	RestrictedCourses []string              `json:"restricted_courses,omitempty"`
	RestrictedUsers   []string              `json:"restricted_users,omitempty"`
	Aliases           map[string]string     `json:"aliases,omitempty"`
	AccentColor       string                `json:"accent_color,omitempty"`
}

// Env holds per-invocation settings that never get written to disk.
// Variables are MARKBOOK_SESSION, MARKBOOK_USER, MARKBOOK_TIME_ZONE, MARKBOOK_BASE_URL and MARKBOOK_LOG_LEVEL.
type Env struct {
	Session  string `split_words:"true"`
	User     string `split_words:"true"`
	TimeZone string `split_words:"true"`
	BaseURL  string `split_words:"true"`
	LogLevel string `split_words:"true" default:"info"`
}

var validate = validator.New()

// Default returns the configuration used when no file exists yet
func Default() *AppConfig {
	return &AppConfig{
		TimeZone: "America/Denver",
		ProgramGroups: []grades.ProgramGroup{
			{
				Name: "programming",
				Courses: []string{
					"Computer Science 2",
					"Files & File Structures 1",
					"Second Language Programming 1",
					"Iterative Algorithms 1",
					"Object\u00adoriented Programming 1",
					"Computer Programming 25",
				},
			},
			{
				Name: "robotics",
				Courses: []string{
					"CAD1",
					"Electro Assembly 1",
					"Robotics applications",
					"Introductory Robotics",
				},
			},
		},
		Aliases: map[string]string{
			"English Language Arts 20-1 (AP Lang.)": "English 20 AP Lang.",
			"Mathematics 30-1 Pre-AP":               "Math 30 Pre-AP",
			"Social Studies 20-1":                   "GH 20",
			"CAD1":                                  "CAD 1",
			"Robotics applications":                 "Robotics Applications",
			"Computer Programming 25":               "Programming 25",
			"Files & File Structures 1":             "File Structures 1",
			"Second Language Programming 1":         "C++ Language",
			"Iterative Algorithms 1":                "Algorithms 1",
			"Object\u00adoriented Programming 1":    "OOP 1",
		},
	}
}

// getConfigPath returns the absolute path to ~/.markbookctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".markbookctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns the defaults if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	cfg.fillDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// fillDefaults sets the fields a hand-written file may leave out
func (c *AppConfig) fillDefaults() {
	def := Default()
	if c.TimeZone == "" {
		c.TimeZone = def.TimeZone
	}
	if c.ProgramGroups == nil {
		c.ProgramGroups = def.ProgramGroups
	}
	if c.Aliases == nil {
		c.Aliases = def.Aliases
	}
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks field constraints and that the time zone exists
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid config: unknown time zone %q: %w", c.TimeZone, err)
	}
	return nil
}

// LoadEnv reads MARKBOOK_* variables, loading a .env file from the working directory first if present
func LoadEnv() (*Env, error) {
	_ = godotenv.Load()

	var env Env
	if err := envconfig.Process("markbook", &env); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return &env, nil
}

// Apply overlays non-empty environment values onto the file configuration
func (c *AppConfig) Apply(env *Env) {
	if env == nil {
		return
	}
	if env.User != "" {
		c.Username = env.User
	}
	if env.TimeZone != "" {
		c.TimeZone = env.TimeZone
	}
	if env.BaseURL != "" {
		c.BaseURL = env.BaseURL
	}
}

// Location resolves the reference time zone used for "updated today"
func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("could not load timezone: %w", err)
	}
	return loc, nil
}

// GradeSettings returns the aggregator lookup tables
func (c *AppConfig) GradeSettings() grades.Settings {
	return grades.Settings{
		Groups:            c.ProgramGroups,
		RestrictedCourses: c.RestrictedCourses,
		RestrictedUsers:   c.RestrictedUsers,
	}
}

// Alias returns the display name for a course, or "" when none is configured
func (c *AppConfig) Alias(name string) string {
	return c.Aliases[name]
}
