package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("NOTES_TEST_PORT", "")
	require.Equal(t, "8080", OrDefault(log, "NOTES_TEST_PORT", "8080"))

	t.Setenv("NOTES_TEST_PORT", "9090")
	require.Equal(t, "9090", OrDefault(log, "NOTES_TEST_PORT", "8080"))

	t.Setenv("NOTES_TEST_TIMEOUT", "3s")
	require.Equal(t, 3*time.Second, DurationDefault(log, "NOTES_TEST_TIMEOUT", "1s"))
	require.Equal(t, time.Second, DurationDefault(log, "NOTES_TEST_UNSET_TIMEOUT", "1s"))

	t.Setenv("NOTES_TEST_ENABLED", "true")
	require.True(t, BoolDefault(log, "NOTES_TEST_ENABLED", "f"))
	require.False(t, BoolDefault(log, "NOTES_TEST_UNSET_ENABLED", "f"))

	t.Setenv("NOTES_TEST_WORKERS", "4")
	require.Equal(t, 4, IntDefault(log, "NOTES_TEST_WORKERS", "1"))
	require.Equal(t, 0, IntDefault(log, "NOTES_TEST_WORKERS_BAD", "x"))
}
