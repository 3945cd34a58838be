package sdkversion

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultConfigFile is looked up in the project root when no config path is given.
const DefaultConfigFile = ".sdkversion.toml"

// Config names the files a bump touches and how the release is labelled.
// Paths are relative to the project root.
type Config struct {
	Manifest      string `toml:"manifest"`
	ModuleFile    string `toml:"module_file"`
	Changelog     string `toml:"changelog"`
	TagSuffix     string `toml:"tag_suffix"`
	CommitMessage string `toml:"commit_message"` // %s is replaced by the new version
}

// DefaultConfig matches the layout of the Python SDK.
func DefaultConfig() Config {
	return Config{
		Manifest:      "pyproject.toml",
		ModuleFile:    filepath.Join("culturecoded", "__init__.py"),
		Changelog:     "CHANGELOG.md",
		TagSuffix:     "-python",
		CommitMessage: "chore: bump version to %s",
	}
}

// LoadConfig overlays the TOML file at path onto DefaultConfig.
// When optional is true a missing file yields the defaults.
func LoadConfig(path string, optional bool) (Config, error) {
	cfg := DefaultConfig()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	for key, v := range map[string]string{
		"manifest":    c.Manifest,
		"module_file": c.ModuleFile,
		"changelog":   c.Changelog,
	} {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	if strings.Count(c.CommitMessage, "%s") != 1 {
		return errors.New("commit_message must contain exactly one %s")
	}
	return nil
}

// TagName returns the git tag for version, e.g. "v1.2.3-python".
func (c Config) TagName(version string) string {
	return "v" + version + c.TagSuffix
}

// CommitMessageFor renders the commit message for version. Only the %s
// placeholder is substituted; any other % is kept as written.
func (c Config) CommitMessageFor(version string) string {
	return strings.ReplaceAll(c.CommitMessage, "%s", version)
}

// locateProjectRoot walks up from startDir until it finds manifest.
func locateProjectRoot(startDir, manifest string) (string, error) {
	d, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(d, manifest)); err == nil {
			return d, nil
		}
		parent := filepath.Dir(d)
		if parent == d {
			break
		}
		d = parent
	}
	return "", fmt.Errorf("no %s found in %s or any parent directory: %w", manifest, startDir, os.ErrNotExist)
}
