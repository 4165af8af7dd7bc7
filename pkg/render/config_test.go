package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRenderConfig(t *testing.T) {
	yaml := `
exec_path: "/usr/bin/chromium"
navigation_timeout: "10s"
settle_delay: "250ms"
max_concurrent_captures: 2
`
	cfg, err := LoadConfigFromReader(strings.NewReader(yaml))
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/chromium", cfg.ExecPath)
	require.Equal(t, 10*time.Second, cfg.NavigationTimeout)
	require.Equal(t, 250*time.Millisecond, cfg.SettleDelay)
	require.Equal(t, 2, cfg.MaxConcurrentCaptures)
}

func TestLoadRenderConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader("{}"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
	require.Equal(t, 30*time.Second, cfg.NavigationTimeout)
	require.Equal(t, time.Second, cfg.SettleDelay)
	require.Equal(t, 4, cfg.MaxConcurrentCaptures)
	require.Empty(t, cfg.ExecPath)
}

func TestLoadRenderConfigInvalidDurations(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader(`navigation_timeout: "later"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "navigation_timeout")

	_, err = LoadConfigFromReader(strings.NewReader(`settle_delay: "-1s"`))
	require.Error(t, err)
	require.Contains(t, err.Error(), "settle_delay")
}

func TestRenderConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.MaxConcurrentCaptures = 0
	require.Error(t, cfg.Validate())
}
