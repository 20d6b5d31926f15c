package config

import (
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/aquasecurity/distro-info/utils"
)

const defaultPath = "/etc/distro-info/config.yaml"

// Config overrides where the distro-info-data CSV files are looked up. An
// empty path keeps the distribution default (system file, then embedded
// snapshot).
type Config struct {
	Ubuntu Dataset `yaml:"ubuntu"`
	Debian Dataset `yaml:"debian"`
}

type Dataset struct {
	CSVPath string `yaml:"csv"`
}

// Path resolves the config file location: explicit flag value, then the
// DISTRO_INFO_CONFIG environment variable, then the system default.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return utils.LookupEnv("DISTRO_INFO_CONFIG", defaultPath)
}

// Load reads the config file at path. A missing file is not an error and
// yields the zero config; a file that exists but does not parse is.
func Load(appFs afero.Fs, path string) (Config, error) {
	ok, err := afero.Exists(appFs, path)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to stat %s: %w", path, err)
	}
	if !ok {
		return Config{}, nil
	}

	b, err := afero.ReadFile(appFs, path)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
		return Config{}, xerrors.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
