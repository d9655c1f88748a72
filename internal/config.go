package internal

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	uerror "bravectl/util/error"
)

// Config holds every path the tool touches. All of them are explicit
// so tests can point the whole tool at a temporary directory.
type Config struct {
	// LocalStatePath is Brave's profile registry file.
	LocalStatePath string `yaml:"local_state"`
	// ApplicationsDir is where generated desktop entries go.
	ApplicationsDir string `yaml:"applications_dir"`
	// BinDir is where the shared helper script goes.
	BinDir string `yaml:"bin_dir"`
	// BrowserPath overrides Brave executable detection when set.
	BrowserPath string `yaml:"browser_path"`
	// UseHelper selects helper-script launchers over direct browser
	// invocation in generated desktop entries.
	UseHelper bool `yaml:"use_helper"`
}

// DefaultConfig returns the configuration for a stock Brave install
// under the current user's home directory.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, uerror.WithStackTrace(err)
	}
	return Config{
		LocalStatePath:  filepath.Join(home, ".config/BraveSoftware/Brave-Browser/Local State"),
		ApplicationsDir: filepath.Join(home, ".local/share/applications"),
		BinDir:          filepath.Join(home, ".local/bin"),
		UseHelper:       true,
	}, nil
}

func defaultConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", uerror.WithStackTrace(err)
	}
	return filepath.Join(home, ".config/bravectl"), nil
}

// LoadConfig builds the effective configuration: defaults, overlaid
// with the YAML config file (explicit path or
// ~/.config/bravectl/config.yaml), overlaid with BRAVECTL_* environment
// variables. An env file at ~/.config/bravectl/env is loaded first so
// overrides can live next to the config.
func LoadConfig(cliPath string) (Config, error) {
	config, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	configDir, err := defaultConfigDir()
	if err != nil {
		return Config{}, err
	}
	_ = godotenv.Load(filepath.Join(configDir, "env"))

	configFile := cliPath
	if configFile == "" {
		configFile = filepath.Join(configDir, "config.yaml")
	}
	configBytes, err := os.ReadFile(configFile)
	if err != nil {
		if cliPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, uerror.WithStackTrace(err)
		}
	} else if err := yaml.Unmarshal(configBytes, &config); err != nil {
		return Config{}, uerror.StackTracef("malformed config file %s: %w", configFile, err)
	}

	applyEnvOverrides(&config)
	return config, nil
}

func applyEnvOverrides(config *Config) {
	overrides := map[string]*string{
		"BRAVECTL_LOCAL_STATE":      &config.LocalStatePath,
		"BRAVECTL_APPLICATIONS_DIR": &config.ApplicationsDir,
		"BRAVECTL_BIN_DIR":          &config.BinDir,
		"BRAVECTL_BROWSER":          &config.BrowserPath,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			*target = value
		}
	}
}
