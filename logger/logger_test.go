package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func withArgs(t *testing.T, args []string, fn func()) {
	t.Helper()

	orig := os.Args
	os.Args = append([]string{orig[0]}, args...)
	defer func() { os.Args = orig }()

	fn()
}

func TestLoggerNew(t *testing.T) {

	withArgs(t, nil, func() {
		l, err := New()
		require.NoError(t, err)
		require.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	withArgs(t, []string{"--loglevel", "warn", "--logtime", "iso8601"}, func() {
		l, err := New()
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zapcore.InfoLevel))
		require.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	// unknown flags of the host command are not an error
	withArgs(t, []string{"--top", "5", "--loglevel", "error"}, func() {
		l, err := New()
		require.NoError(t, err)
		require.False(t, l.Core().Enabled(zapcore.WarnLevel))
		require.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	})
}

func TestLoggerInvalidLevelName(t *testing.T) {

	withArgs(t, []string{"--loglevel", "warning"}, func() {
		l, err := New()
		require.Error(t, err)
		require.Nil(t, l)
	})
}
