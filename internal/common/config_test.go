package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "ski/比赛成绩汇总/", cfg.Storage.Prefix)
	assert.Equal(t, "pdftotext", cfg.Extract.Pdftotext)
	assert.Equal(t, 200, cfg.Extract.DPI)
	assert.Equal(t, 10, cfg.Extract.MaxImageMB)
	assert.Equal(t, "qwen3-vl-235b-a22b", cfg.VLM.Model)
	assert.InDelta(t, 0.1, cfg.VLM.Temperature, 0.0001)
	assert.Equal(t, 90*time.Second, cfg.VLM.Timeout)
	assert.Equal(t, 4, cfg.Pipeline.Workers)
	assert.Equal(t, 3, cfg.Pipeline.MaxAttempts)
	assert.Equal(t, time.Second, cfg.Pipeline.BackoffBase)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("RESULTS_PREFIX", "archive/")
	t.Setenv("RASTER_DPI", "300")
	t.Setenv("VLM_TIMEOUT", "2m")
	t.Setenv("PIPELINE_WORKERS", "8")

	cfg := LoadConfig()

	assert.Equal(t, "archive/", cfg.Storage.Prefix)
	assert.Equal(t, 300, cfg.Extract.DPI)
	assert.Equal(t, 2*time.Minute, cfg.VLM.Timeout)
	assert.Equal(t, 8, cfg.Pipeline.Workers)
}

func TestLoadConfigIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("RASTER_DPI", "not-a-number")
	t.Setenv("VLM_TIMEOUT", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 200, cfg.Extract.DPI)
	assert.Equal(t, 90*time.Second, cfg.VLM.Timeout)
}

func TestConfigValidate(t *testing.T) {
	t.Setenv("VLM_BASE_URL", "")
	t.Setenv("VLM_API_KEY", "")

	cfg := LoadConfig()
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	t.Setenv("VLM_BASE_URL", "https://example.com/v1")
	t.Setenv("VLM_API_KEY", "sk-test")
	cfg = LoadConfig()
	assert.NoError(t, cfg.Validate())
}
