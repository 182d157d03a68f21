package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zwiftstate/zwiftstate-go/pkg/zwiftstate"
)

// FileConfig is the YAML configuration accepted via --config. Override
// fields are pointers so an explicit 0 in the file is honored and an
// omitted key means "derive from files".
type FileConfig struct {
	InstallDir  string `yaml:"install_dir"`
	VersionFile string `yaml:"version_file"`
	LogFile     string `yaml:"log_file"`
	PrefsFile   string `yaml:"prefs_file"`

	Overrides struct {
		GameVersion *string `yaml:"game_version"`
		FlagID      *uint32 `yaml:"flag_id"`
		PlayerID    *uint32 `yaml:"player_id"`
		SportID     *uint32 `yaml:"sport_id"`
		WorldID     *uint32 `yaml:"world_id"`
		CourseID    *uint32 `yaml:"course_id"`
	} `yaml:"overrides"`
}

// LoadFileConfig reads and parses a YAML config file.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return &cfg, nil
}

// Options converts the file configuration into monitor options.
func (c *FileConfig) Options() []zwiftstate.Option {
	var opts []zwiftstate.Option

	if c.InstallDir != "" {
		opts = append(opts, zwiftstate.WithInstallDir(c.InstallDir))
	}
	if c.VersionFile != "" {
		opts = append(opts, zwiftstate.WithVersionFile(c.VersionFile))
	}
	if c.LogFile != "" {
		opts = append(opts, zwiftstate.WithLogFile(c.LogFile))
	}
	if c.PrefsFile != "" {
		opts = append(opts, zwiftstate.WithPrefsFile(c.PrefsFile))
	}

	if c.Overrides.GameVersion != nil {
		opts = append(opts, zwiftstate.WithGameVersion(*c.Overrides.GameVersion))
	}
	if c.Overrides.FlagID != nil {
		opts = append(opts, zwiftstate.WithFlagID(*c.Overrides.FlagID))
	}
	if c.Overrides.PlayerID != nil {
		opts = append(opts, zwiftstate.WithPlayerID(*c.Overrides.PlayerID))
	}
	if c.Overrides.SportID != nil {
		opts = append(opts, zwiftstate.WithSportID(*c.Overrides.SportID))
	}
	if c.Overrides.WorldID != nil {
		opts = append(opts, zwiftstate.WithWorldID(*c.Overrides.WorldID))
	}
	if c.Overrides.CourseID != nil {
		opts = append(opts, zwiftstate.WithCourseID(*c.Overrides.CourseID))
	}

	return opts
}
