package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/kballard/go-shellquote"
	"gopkg.in/yaml.v3"

	apperrors "flatpick/internal/platform/errors"
)

const AppName = "flatpick"

const (
	FinderFZF     = "fzf"
	FinderBuiltin = "builtin"
	FinderAuto    = "auto"
)

type Config struct {
	Inventory InventoryConfig `yaml:"inventory" toml:"inventory"`
	Finder    FinderConfig    `yaml:"finder" toml:"finder"`
	Run       RunConfig       `yaml:"run" toml:"run"`
	Log       LogConfig       `yaml:"log" toml:"log"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

type InventoryConfig struct {
	Command string `yaml:"command" toml:"command"`
}

type FinderConfig struct {
	Mode    string `yaml:"mode" toml:"mode"`
	Command string `yaml:"command" toml:"command"`
}

type RunConfig struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
	Shell  string `yaml:"shell" toml:"shell"`
}

type LogConfig struct {
	Level string `yaml:"level" toml:"level"`
}

func Default() Config {
	return Config{
		Inventory: InventoryConfig{Command: "flatpak list --app"},
		Finder:    FinderConfig{Mode: FinderFZF, Command: "fzf --height=20% --reverse --inline-info"},
		Run:       RunConfig{Prefix: "flatpak run", Shell: "sh"},
		Log:       LogConfig{Level: "warn"},
	}
}

// DefaultPaths lists the files Load tries when no path is given, in order.
func DefaultPaths() []string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return nil
	}
	base := filepath.Join(dir, AppName)
	return []string{
		filepath.Join(base, "config.yaml"),
		filepath.Join(base, "config.yml"),
		filepath.Join(base, "config.toml"),
	}
}

// Load reads the config at path. An empty path falls back to DefaultPaths, and
// a missing default file yields Default.
func Load(path string) (Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, candidate := range DefaultPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return loadFile(candidate)
		}
	}
	cfg := Default()
	return cfg, cfg.Validate()
}

func loadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(b), &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, fmt.Errorf("decode config %s: unknown key %q: %w", path, undecoded[0].String(), apperrors.ErrInvalidInput)
		}
	case ".yaml", ".yml", "":
		decoder := yaml.NewDecoder(bytes.NewReader(b))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("config %s: unsupported format: %w", path, apperrors.ErrInvalidInput)
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Finder.Mode {
	case FinderFZF, FinderBuiltin, FinderAuto:
	default:
		return fmt.Errorf("finder mode %q must be fzf, builtin or auto: %w", c.Finder.Mode, apperrors.ErrInvalidInput)
	}
	if _, err := c.InventoryArgv(); err != nil {
		return err
	}
	if _, err := c.FinderArgv(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Run.Prefix) == "" {
		return fmt.Errorf("run prefix is required: %w", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(c.Run.Shell) == "" {
		return fmt.Errorf("run shell is required: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

func (c Config) InventoryArgv() ([]string, error) {
	return splitCommand("inventory command", c.Inventory.Command)
}

func (c Config) FinderArgv() ([]string, error) {
	return splitCommand("finder command", c.Finder.Command)
}

func splitCommand(name, raw string) ([]string, error) {
	argv, err := shellquote.Split(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", name, err, apperrors.ErrInvalidInput)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("%s is required: %w", name, apperrors.ErrInvalidInput)
	}
	return argv, nil
}
