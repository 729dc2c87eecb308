package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"REDLIGHT_ADDR", "REDLIGHT_TICK_HZ", "REDLIGHT_BROADCAST_HZ", "REDLIGHT_VIEW_WIDTH", "REDLIGHT_VIEW_HEIGHT", "REDLIGHT_STATIC_DIR"} {
		t.Setenv(k, "")
	}

	s, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("REDLIGHT_ADDR", ":9000")
	t.Setenv("REDLIGHT_TICK_HZ", "30")
	t.Setenv("REDLIGHT_BROADCAST_HZ", "90")

	s, err := FromEnv()
	require.NoError(t, err)
	require.Equal(t, ":9000", s.Addr)
	require.Equal(t, 30, s.TickHz)
	require.Equal(t, 30, s.BroadcastHz, "broadcast rate is capped at the tick rate")
}

func TestFromEnvRejectsBadInteger(t *testing.T) {
	t.Setenv("REDLIGHT_VIEW_WIDTH", "wide")

	_, err := FromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "REDLIGHT_VIEW_WIDTH")
}

func TestLoadReadsDotEnv(t *testing.T) {
	// godotenv never overrides a variable that is already present, even empty.
	os.Unsetenv("REDLIGHT_VIEW_HEIGHT")
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("REDLIGHT_VIEW_HEIGHT=900\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("REDLIGHT_VIEW_HEIGHT") })

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 900, s.ViewHeight)
}

func TestLoadToleratesMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
}

func TestGetEnvVariable(t *testing.T) {
	_, err := GetEnvVariable("")
	require.Error(t, err)

	t.Setenv("REDLIGHT_PROBE", "yes")
	v, err := GetEnvVariable("REDLIGHT_PROBE")
	require.NoError(t, err)
	require.Equal(t, "yes", v)
}
