package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "MVNTESTER"

// Settings holds the tool configuration. Every field has a default, so a
// configuration file is optional.
type Settings struct {
	Maven      MavenSettings      `mapstructure:"maven"`
	Repository RepositorySettings `mapstructure:"repository"`
	Scan       ScanSettings       `mapstructure:"scan"`
	Workspace  WorkspaceSettings  `mapstructure:"workspace"`
	Report     ReportSettings     `mapstructure:"report"`
}

// MavenSettings describes how the build tool is invoked.
type MavenSettings struct {
	Command       string        `mapstructure:"command"`
	TreeArgs      string        `mapstructure:"tree_args"`
	BuildArgs     string        `mapstructure:"build_args"`
	VersionArgs   string        `mapstructure:"version_args"`
	SuccessMarker string        `mapstructure:"success_marker"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// RepositorySettings points at the artifact search index.
type RepositorySettings struct {
	URL       string        `mapstructure:"url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	CacheSize int           `mapstructure:"cache_size"`
}

// ScanSettings tunes the dependency report matching.
type ScanSettings struct {
	ForwardOnly bool `mapstructure:"forward_only"`
}

// WorkspaceSettings controls project discovery.
type WorkspaceSettings struct {
	PomFile     string   `mapstructure:"pom_file"`
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
}

// ReportSettings selects the results format.
type ReportSettings struct {
	Format string `mapstructure:"format"`
}

// MatchMode returns the report matching mode selected by the settings.
func (s *Settings) MatchMode() MatchMode {
	if s.Scan.ForwardOnly {
		return MatchForwardOnly
	}
	return MatchFullScan
}

// NewSettings loads settings from path (optional) and MVNTESTER_* environment variables.
func NewSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSettings(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	settings, err := NewSettings("")
	if err != nil {
		panic(err) // defaults are static
	}
	return settings
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".mvntester.yaml",
		".mvntester.yml",
		"mvntester.yaml",
		"mvntester.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("maven.command", "mvn")
	v.SetDefault("maven.tree_args", "--batch-mode dependency:tree")
	v.SetDefault("maven.build_args", "--batch-mode clean install")
	v.SetDefault("maven.version_args", "-version")
	v.SetDefault("maven.success_marker", "BUILD SUCCESS")
	v.SetDefault("maven.timeout", 30*time.Minute) //nolint:mnd // full builds are slow

	v.SetDefault("repository.url", "https://search.maven.org")
	v.SetDefault("repository.timeout", 15*time.Second) //nolint:mnd // single search request
	v.SetDefault("repository.cache_size", 256)          //nolint:mnd // coordinates per run

	v.SetDefault("scan.forward_only", false)

	v.SetDefault("workspace.pom_file", "pom.xml")
	v.SetDefault("workspace.exclude_dirs", []string{"target", ".git", "node_modules"})

	v.SetDefault("report.format", "table")
}

func validateSettings(settings *Settings) error {
	if strings.TrimSpace(settings.Maven.Command) == "" {
		return errors.New("maven.command is required")
	}
	if settings.Workspace.PomFile == "" {
		return errors.New("workspace.pom_file is required")
	}
	if settings.Repository.URL == "" {
		return errors.New("repository.url is required")
	}
	if settings.Repository.CacheSize <= 0 {
		return fmt.Errorf("repository.cache_size must be positive, got %d", settings.Repository.CacheSize)
	}
	return nil
}

// SettingsLoader resolves settings from an optional explicit file path.
type SettingsLoader func(path string) (*Settings, error)

// LoadSettings uses path when set, otherwise the first file FindConfigFile
// locates, otherwise defaults.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		if found, err := FindConfigFile(); err == nil {
			path = found
		}
	}
	return NewSettings(path)
}
