package core

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigureLogging(t *testing.T) {
	defer func() {
		require.NoError(t, ConfigureLogging("info", ""))
	}()

	t.Run("rejects unknown level", func(t *testing.T) {
		require.Error(t, ConfigureLogging("chatty", ""))
	})

	t.Run("level filters entries", func(t *testing.T) {
		require.NoError(t, ConfigureLogging("warn", ""))
		var buf bytes.Buffer
		SetLogOutput(&buf)

		LogInfo("hidden %d", 1)
		LogWarn("shown %d", 2)

		require.NotContains(t, buf.String(), "hidden 1")
		require.Contains(t, buf.String(), "shown 2")
	})

	t.Run("tees to a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lina.log")
		require.NoError(t, ConfigureLogging("debug", path))

		LogDebug("written to %s", "disk")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		require.Contains(t, string(data), "written to disk")
	})

	t.Run("reuses the rotator for the same file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lina.log")
		require.NoError(t, ConfigureLogging("info", path))
		first := logFile

		require.NoError(t, ConfigureLogging("debug", path))
		require.Same(t, first, logFile)
	})

	t.Run("closes the previous file", func(t *testing.T) {
		require.NoError(t, ConfigureLogging("info", filepath.Join(t.TempDir(), "a.log")))
		previous := &closeRecorder{}
		logFile = previous

		require.NoError(t, ConfigureLogging("info", filepath.Join(t.TempDir(), "b.log")))
		require.Equal(t, 1, previous.closed)
		require.NotSame(t, previous, logFile)

		current := &closeRecorder{}
		logFile = current
		require.NoError(t, ConfigureLogging("info", ""))
		require.Equal(t, 1, current.closed)
		require.Nil(t, logFile)
	})
}

type closeRecorder struct {
	bytes.Buffer
	closed int
}

func (c *closeRecorder) Close() error {
	c.closed++
	return nil
}

func TestLoggingFromManyGoroutines(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NotNil(t, getLogger())
			LogDebug("worker %d", i)
		}()
	}
	wg.Wait()
}

func TestErrorTextIsNotAFormat(t *testing.T) {
	defer SetLogOutput(os.Stderr)
	var buf bytes.Buffer
	SetLogOutput(&buf)

	LogError("%v", errors.New("open /tmp/100%d/job.toml: denied"))
	require.Contains(t, buf.String(), "100%d/job.toml")
}
