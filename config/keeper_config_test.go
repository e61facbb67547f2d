package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hostkeeper/keeper/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitKeeperConfigFromTestFile(t *testing.T) {
	loader, err := config.InitKeeperConfig("keeper_config.test.toml", config.GetAbsPath("config"))
	require.NoError(t, err)
	cfg := loader.Config()

	assert.Equal(t, "127.0.0.1:0", cfg.Server.Host)
	assert.Equal(t, "test-secret", cfg.Server.JWTSecret.Value())
	assert.Equal(t, "******", cfg.Server.JWTSecret.String())
	assert.Equal(t, 5*time.Second, cfg.Runner.DefaultTimeout)
	assert.Equal(t, "queue", cfg.Escalation.Mode)
	assert.Equal(t, float64(300), cfg.Processes.HeavyThresholdMB)
	assert.Equal(t, float64(150), cfg.Tabs.HeavyThresholdMB)
	assert.Equal(t, float64(350), cfg.Tabs.DomainWeights["youtube.com"])
	require.Len(t, cfg.Cleanup.Categories, 2)
	assert.Equal(t, "scratch", cfg.Cleanup.Categories[0].Name)
	assert.True(t, cfg.Cleanup.Categories[1].Privileged)

	// untouched keys fall back to defaults
	assert.Equal(t, "root", cfg.Processes.SuperUser)
	assert.Equal(t, 5*time.Second, cfg.Poller.Processes.Interval)
	assert.Equal(t, 256, cfg.Presenter.QueueSize)
}

func TestInitKeeperConfigMissingFileUsesDefaults(t *testing.T) {
	loader, err := config.InitKeeperConfig("does_not_exist", t.TempDir())
	require.NoError(t, err)
	cfg := loader.Config()

	assert.Empty(t, loader.ConfigFile())
	assert.Equal(t, "127.0.0.1:7420", cfg.Server.Host)
	assert.Equal(t, "fail_fast", cfg.Escalation.Mode)
	assert.Equal(t, float64(200), cfg.Tabs.HeavyThresholdMB)
	assert.Equal(t, []string{"_"}, cfg.Processes.ReservedUserPrefixes)
}

func TestInitKeeperConfigEnvOverride(t *testing.T) {
	t.Setenv("KEEPER_PROCESSES_HEAVY_THRESHOLD_MB", "750")
	loader, err := config.InitKeeperConfig("does_not_exist", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, float64(750), loader.Config().Processes.HeavyThresholdMB)
}

func TestInitKeeperConfigRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.toml"), []byte("[server\nhost="), 0o600))
	_, err := config.InitKeeperConfig("broken", dir)
	assert.Error(t, err)
}

func TestInitKeeperConfigLoadsShippedFile(t *testing.T) {
	loader, err := config.InitKeeperConfig("keeper_config", config.GetAbsPath("config"))
	require.NoError(t, err)
	cfg := loader.Config()

	assert.NotEmpty(t, loader.ConfigFile())
	assert.Equal(t, "127.0.0.1:7420", cfg.Server.Host)
	assert.Equal(t, []string{"Safari", "Google Chrome", "Brave Browser", "Microsoft Edge"}, cfg.Tabs.Browsers)
	assert.Equal(t, map[string]float64{
		"youtube.com":     350,
		"meet.google.com": 400,
		"figma.com":       450,
		"docs.google.com": 220,
		"twitch.tv":       320,
	}, cfg.Tabs.DomainWeights)
	assert.Equal(t, 15*time.Second, cfg.Poller.Tabs.Interval)
	assert.Equal(t, 60*time.Second, cfg.Cleanup.EstimateTTL)
}

func TestInitKeeperConfigKeepsDottedMapKeys(t *testing.T) {
	dir := t.TempDir()
	toml := "[tabs.domain_weights]\n\"a.b.example.org\" = 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weights.toml"), []byte(toml), 0o600))
	loader, err := config.InitKeeperConfig("weights", dir)
	require.NoError(t, err)
	assert.Equal(t, float64(10), loader.Config().Tabs.DomainWeights["a.b.example.org"])
	assert.Equal(t, float64(80), loader.Config().Tabs.BaseMemoryMB)
}
