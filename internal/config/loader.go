package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/shu-go/findcfg"
	"gopkg.in/yaml.v3"
)

const (
	// fileBaseName is the configuration file name without extension;
	// .yaml, .yml, and .json variants are all accepted.
	fileBaseName = ".sectionlint"

	// userConfigFolder is the per-user configuration directory name.
	userConfigFolder = "sectionlint"
)

// Discover locates and loads the configuration file. Candidates are tried
// in order: exactPath (when non-empty, e.g. from a --config flag or a
// gitconfig override), the repository root, the user config directory, and
// the executable directory. When no file exists the built-in defaults are
// returned with an empty path.
func Discover(repoRoot, exactPath string) (*Config, string, error) {
	finder := findcfg.New(
		findcfg.Name(fileBaseName),
		findcfg.ExactPath(exactPath),
		findcfg.YAML(),
		findcfg.JSON(),
		findcfg.Dir(repoRoot),
		findcfg.UserConfigDir(userConfigFolder),
		findcfg.ExecutableDir(),
	)

	found := finder.Find()
	if found == nil {
		slog.Debug("no configuration file found, using defaults", "fallback", finder.FallbackPath())
		return NewDefaultConfig(), "", nil
	}

	cfg, err := Load(found.Path)
	if err != nil {
		return nil, found.Path, err
	}
	slog.Debug("configuration loaded", "path", found.Path)
	return cfg, found.Path, nil
}

// Load reads and validates a configuration file. The format is chosen by
// extension; unknown extensions are tried as YAML first, then JSON. File
// values overlay the built-in defaults: a "sections" mapping replaces the
// default sections wholesale, rule settings merge per rule name.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var file Config
	if err := decode(path, data, &file); err != nil {
		return nil, err
	}

	cfg := NewDefaultConfig()
	if file.Sections != nil {
		cfg.Sections = file.Sections
	}
	for name, setting := range file.Rules {
		cfg.Rules[name] = setting
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(path string, data []byte, target *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse %s: %w: %v", path, ErrInvalidSyntax, err)
		}
		return nil
	case ".json":
		if err := json.Unmarshal(data, target); err != nil {
			return fmt.Errorf("parse %s: %w: %v", path, ErrInvalidSyntax, err)
		}
		return nil
	default:
		if yamlErr := yaml.Unmarshal(data, target); yamlErr != nil {
			if jsonErr := json.Unmarshal(data, target); jsonErr != nil {
				return fmt.Errorf("parse %s: %w: %v", path, ErrInvalidSyntax, yamlErr)
			}
		}
		return nil
	}
}
