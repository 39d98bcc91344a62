package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunMetrics(t *testing.T) {
	m := NewRunMetrics()
	require.Zero(t, m.Average())

	m.Update(10 * time.Millisecond)
	m.Update(30 * time.Millisecond)
	require.Equal(t, 20*time.Millisecond, m.Average())
	require.Equal(t, 2, m.Runs())

	// the window only keeps the most recent AVG_COUNT runs
	for i := 0; i < int(AVG_COUNT); i++ {
		m.Update(5 * time.Millisecond)
	}
	require.Equal(t, 5*time.Millisecond, m.Average())
	require.Equal(t, int(AVG_COUNT)+2, m.Runs())
}
