package profile

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// DefaultBackend is the public form backend used when none is
// configured.
const DefaultBackend = "https://script.google.com/macros/s/hush-listener/exec"

// Config locates the store and the remote backend.
type Config interface {
	BasePath() string
	Backend() string
}

// LoadConfig reads .hush.yaml (working directory or HUSH_CONFIG_PATH)
// with HUSH_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.hush.db")
	viper.SetDefault("backend", DefaultBackend)
	viper.SetConfigName(".hush") // .yaml is implicit
	viper.SetEnvPrefix("HUSH")
	viper.AutomaticEnv()

	if override := os.Getenv("HUSH_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("profile: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("profile: expand path: %w", err)
	}

	return &fileConfig{Path: path, URL: viper.GetString("backend")}, nil
}

type fileConfig struct {
	Path string `json:"path"`
	URL  string `json:"backend"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Backend() string {
	return f.URL
}

// StaticConfig is a fixed-value Config, used by tests and the TUI
// harness.
type StaticConfig struct {
	Path string
	URL  string
}

func (s StaticConfig) BasePath() string { return s.Path }
func (s StaticConfig) Backend() string  { return s.URL }
