package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "data/courses", cfg.CoursesDir)
	assert.Equal(t, "data/scores", cfg.ScoresDir)
	assert.Equal(t, "exports", cfg.ExportDir)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("COURSES_DIR", "/var/lib/golf/courses")
	t.Setenv("ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/var/lib/golf/courses", cfg.CoursesDir)
	assert.True(t, cfg.IsProduction())
}
