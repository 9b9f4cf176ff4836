package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordprob/pkg/stats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "literal", cfg.Buckets.Mode)
	assert.Equal(t, "individual", cfg.Sampler.OffsetMode)
	assert.Equal(t, stats.DefaultMaxRounds, cfg.Sampler.MaxRounds)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err)

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Estimator.Workers = 4
	cfg.Buckets.Mode = "complete"
	cfg.Sampler.OffsetMode = "population"
	cfg.Sampler.Deterministic = true
	cfg.Sampler.Seed = 42
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// workers has the wrong type, so the typed decode fails
	content := `
[estimator]
workers = "many"
strict_shape = true

[sampler]
max_rounds = 5
offset_mode = "population"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Estimator.Workers)
	assert.True(t, cfg.Estimator.StrictShape)
	assert.Equal(t, 5, cfg.Sampler.MaxRounds)
	assert.Equal(t, "population", cfg.Sampler.OffsetMode)
	assert.Equal(t, "literal", cfg.Buckets.Mode)
}

func TestLoadConfigFixesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[buckets]
mode = "sideways"

[sampler]
max_rounds = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "literal", cfg.Buckets.Mode)
	assert.Equal(t, stats.DefaultMaxRounds, cfg.Sampler.MaxRounds)
}

func TestLoadConfigGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	cfg := DefaultConfig()
	cfg.Sampler.MaxRounds = 9
	require.NoError(t, SaveConfig(cfg, path))

	loaded, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 9, loaded.Sampler.MaxRounds)
}

func TestSamplerOptionsAreDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sampler.Deterministic = true
	cfg.Sampler.Seed = 3

	pop := []string{"abcdef", "ghijkl", "mnopqr"}
	first, err := stats.SubstringFrequencies(pop, "abcghimno", 3, cfg.SamplerOptions()...)
	require.NoError(t, err)
	second, err := stats.SubstringFrequencies(pop, "abcghimno", 3, cfg.SamplerOptions()...)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestBucketOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Buckets.Mode = "complete"

	got, err := stats.ExpectedLengthDistribution(nil, [][]string{{"a", "bb", "cc"}}, cfg.BucketOptions()...)
	require.NoError(t, err)
	v, ok := got.Get(2)
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
