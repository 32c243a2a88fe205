package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMergedIgnoreConfig(t *testing.T) {
	cfg, used, err := LoadMerged(Options{
		IgnoreConfig: true,
		Dir:          "/photos",
		AlbumTitle:   "Holiday",
		Headful:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "/photos", cfg.DefaultDir)
	assert.Equal(t, "Holiday", cfg.AlbumTitle)
	assert.True(t, cfg.Headful)

	// untouched fields keep defaults
	assert.Equal(t, 500, cfg.BatchSize)
	assert.Equal(t, 120, cfg.PollTimeout)
	assert.Equal(t, []string{"avif"}, cfg.AllowExt)
}

func TestMergeConfigFlagPrecedence(t *testing.T) {
	cfg := &Config{
		DefaultDir:  "/from-config",
		BatchSize:   100,
		PollTimeout: 30,
	}

	mergeConfig(cfg, Options{
		Dir:       "/from-flag",
		BatchSize: 250,
	})

	assert.Equal(t, "/from-flag", cfg.DefaultDir)
	assert.Equal(t, 250, cfg.BatchSize)
	assert.Equal(t, 30, cfg.PollTimeout)
}

func TestMergeConfigBoolsOnlySetTrue(t *testing.T) {
	cfg := &Config{Headful: true, OpenLinks: true}

	// false flags must not clear config-enabled values
	mergeConfig(cfg, Options{})

	assert.True(t, cfg.Headful)
	assert.True(t, cfg.OpenLinks)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{BatchSize: -1, PollTimeout: 0}
	normalizeDefaults(cfg)

	assert.Equal(t, 500, cfg.BatchSize)
	assert.Equal(t, 120, cfg.PollTimeout)
	assert.Equal(t, []string{"avif"}, cfg.AllowExt)
}
