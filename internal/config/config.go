package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultDir string `yaml:"default_dir"`
	AlbumTitle string `yaml:"album_title"`

	BatchSize   int      `yaml:"batch_size"`
	AllowExt    []string `yaml:"allow_ext"`
	PollTimeout int      `yaml:"poll_timeout_sec"`

	Headful   bool `yaml:"headful"`
	OpenLinks bool `yaml:"open_links"`
	Debug     bool `yaml:"debug"`

	UserAgent string `yaml:"user_agent"`
}

type Options struct {
	IgnoreConfig bool
	Debug        bool

	Dir        string
	AlbumTitle string

	BatchSize   int
	PollTimeout int

	Headful   bool
	OpenLinks bool

	UserAgent string
}

func DefaultConfig() *Config {
	return &Config{
		DefaultDir:  "",
		AlbumTitle:  "",
		BatchSize:   500,
		AllowExt:    []string{"avif"},
		PollTimeout: 120,
		Headful:     false,
		OpenLinks:   false,
		Debug:       false,
		UserAgent:   "",
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `postup config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Dir != "" {
		c.DefaultDir = o.Dir
	}
	if o.AlbumTitle != "" {
		c.AlbumTitle = o.AlbumTitle
	}
	if o.BatchSize != 0 {
		c.BatchSize = o.BatchSize
	}
	if o.PollTimeout != 0 {
		c.PollTimeout = o.PollTimeout
	}
	if o.Headful {
		c.Headful = true
	}
	if o.OpenLinks {
		c.OpenLinks = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

func normalizeDefaults(c *Config) {
	if c.BatchSize <= 0 {
		c.BatchSize = 500
	}
	if c.PollTimeout <= 0 {
		c.PollTimeout = 120
	}
	if len(c.AllowExt) == 0 {
		c.AllowExt = []string{"avif"}
	}
}

func (c *Config) Print() {
	if c.DefaultDir != "" {
		fmt.Printf(" -default_dir: %s\n", c.DefaultDir)
	}
	if c.AlbumTitle != "" {
		fmt.Printf(" -album_title: %s\n", c.AlbumTitle)
	}
	fmt.Printf(" -batch_size: %d\n", c.BatchSize)
	fmt.Printf(" -poll_timeout_sec: %d\n", c.PollTimeout)
	if c.Headful {
		fmt.Printf(" -headful: %t\n", c.Headful)
	}
	if c.OpenLinks {
		fmt.Printf(" -open_links: %t\n", c.OpenLinks)
	}
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
	if len(c.AllowExt) > 0 {
		fmt.Printf(" -allow_ext: %s\n", strings.Join(c.AllowExt, ", "))
	}
}
