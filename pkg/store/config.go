package store

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Backend names a slot implementation.
type Backend string

const (
	BackendDiskv  Backend = "diskv"
	BackendSQLite Backend = "sqlite"
	BackendMemory Backend = "memory"
)

const (
	DefaultPath      = "~/.mindtrackr"
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
)

type Config interface {
	BasePath() string
	Backend() Backend
	SlotName() string
	Quota() int64
	LogLevel() string
	LogFormat() string
}

// Settings is a plain Config, handy for flags and tests.
type Settings struct {
	Path    string   `json:"path" yaml:"path"`
	Kind    Backend  `json:"backend" yaml:"backend"`
	Slot    string   `json:"slot" yaml:"slot"`
	Limit   int64    `json:"quota" yaml:"quota"`
	Level   string   `json:"logLevel" yaml:"logLevel"`
	Format  string   `json:"logFormat" yaml:"logFormat"`
	Sources []string `json:"-" yaml:"-"`
}

var _ Config = (*Settings)(nil)

func (s *Settings) BasePath() string  { return s.Path }
func (s *Settings) Backend() Backend  { return s.Kind }
func (s *Settings) Quota() int64      { return s.Limit }
func (s *Settings) LogLevel() string  { return s.Level }
func (s *Settings) LogFormat() string { return s.Format }

func (s *Settings) SlotName() string {
	if s.Slot == "" {
		return DefaultSlotName
	}
	return s.Slot
}

// LoadConfig reads .mindtrackr.yaml from MINDTRACKR_CONFIG_PATH or the
// working directory, then layers MINDTRACKR_* environment variables on top.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (Config, error) {
	// Missing .env is the common case.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("path", DefaultPath)
	v.SetDefault("backend", string(BackendDiskv))
	v.SetDefault("slot", DefaultSlotName)
	v.SetDefault("quota", DefaultQuota)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)

	v.SetConfigName(".mindtrackr") // .yaml is implicit
	v.SetEnvPrefix("MINDTRACKR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("MINDTRACKR_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME")

	var sources []string
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	} else {
		sources = append(sources, v.ConfigFileUsed())
	}

	path, err := homedir.Expand(v.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	backend, err := ParseBackend(v.GetString("backend"))
	if err != nil {
		return nil, err
	}

	return &Settings{
		Path:    path,
		Kind:    backend,
		Slot:    v.GetString("slot"),
		Limit:   v.GetInt64("quota"),
		Level:   v.GetString("log.level"),
		Format:  v.GetString("log.format"),
		Sources: sources,
	}, nil
}

// ParseBackend accepts a backend name case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendDiskv, nil
	case BackendDiskv, BackendSQLite, BackendMemory:
		return b, nil
	default:
		return "", fmt.Errorf("store: unknown backend %q (want diskv, sqlite or memory)", s)
	}
}
