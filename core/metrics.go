package core

import "time"

const AVG_COUNT uint8 = 30

// RunMetrics keeps a rolling average over the last AVG_COUNT run durations.
type RunMetrics struct {
	avgCounter uint8
	times      [AVG_COUNT]time.Duration
	filled     uint8
	runs       int
}

func NewRunMetrics() *RunMetrics {
	return &RunMetrics{}
}

// Update records the duration of one run.
func (m *RunMetrics) Update(elapsed time.Duration) {
	m.times[m.avgCounter] = elapsed
	m.avgCounter++
	m.avgCounter %= AVG_COUNT
	if m.filled < AVG_COUNT {
		m.filled++
	}
	m.runs++
}

// Average returns the mean of the recorded durations, zero before the first run.
func (m *RunMetrics) Average() time.Duration {
	if m.filled == 0 {
		return 0
	}
	var sum time.Duration
	for i := uint8(0); i < m.filled; i++ {
		sum += m.times[i]
	}
	return sum / time.Duration(m.filled)
}

// Runs returns how many runs were recorded in total.
func (m *RunMetrics) Runs() int {
	return m.runs
}
