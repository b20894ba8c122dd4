package ycsb

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStatusReporterReportsOnStop(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	var completedOps int64
	atomic.StoreInt64(&completedOps, 7)

	reporter := NewStatusReporter(measurements, &completedOps, time.Hour, false, "", nil)
	go reporter.Run()
	reporter.Stop()

	require.Equal(t, int64(7), reporter.lastOpsDone)
}

func TestStatusReporterTicks(t *testing.T) {
	measurements := NewDefaultMeasurements(NewProperties())
	var completedOps int64

	remaining := int64(97)
	reporter := NewStatusReporter(measurements, &completedOps, 5*time.Millisecond, true, "load", func() int64 {
		return remaining
	})
	go reporter.Run()

	atomic.StoreInt64(&completedOps, 3)
	time.Sleep(30 * time.Millisecond)
	reporter.Stop()

	require.Equal(t, int64(3), reporter.lastOpsDone)
}

func TestFormatRemaining(t *testing.T) {
	require.Equal(t, "45s", formatRemaining(45))
	require.Equal(t, "2m", formatRemaining(150))
	require.Equal(t, "1h 5m", formatRemaining(3900))
	require.Equal(t, "2d 3h", formatRemaining(2*86400+3*3600+400))
}

func TestTerminatorFiresAfterDuration(t *testing.T) {
	done := NewTerminator(10 * time.Millisecond)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("terminator never fired")
	}
}

func TestTerminatorDisabledWhenNonPositive(t *testing.T) {
	done := NewTerminator(0)
	select {
	case <-done:
		t.Fatal("terminator with zero duration should never fire")
	case <-time.After(20 * time.Millisecond):
	}
}
