package ycsb

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hhkbp2/go-strftime"
)

// statusTimeLayout mirrors the timestamp format YCSB's own status thread
// prints ahead of each throughput line.
const statusTimeLayout = "%Y-%m-%d %H:%M:%S"

// StatusReporter periodically logs throughput and latency summaries while a
// load or run phase is in flight. Grounded on original_source's
// StatusThread.java: a background goroutine that wakes up every interval,
// diffs the completed-operation count against the previous tick, and logs a
// one-line summary alongside each active measurement's GetSummary().
type StatusReporter struct {
	measurements   Measurements
	completedOps   *int64
	interval       time.Duration
	startTime      time.Time
	lastReportTime time.Time
	lastOpsDone    int64
	standardStatus bool
	label          string
	// remainingOps sums remainingOps() across every client thread still
	// running. Threads with no fixed operation count (typically the run
	// phase, bounded by the wall-clock terminator instead) contribute 0, and
	// no completion estimate is printed while the sum is 0 or when it is nil.
	remainingOps func() int64
	done         chan struct{}
	finished     chan struct{}
}

// NewStatusReporter builds a reporter. completedOps is a pointer to the
// driver's shared atomic op counter, so the reporter never needs its own
// synchronization with client goroutines. label, when non-empty, is
// prefixed to every status line (the -l flag); remainingOps, when non-nil,
// feeds the estimated-completion-time calculation.
func NewStatusReporter(measurements Measurements, completedOps *int64, interval time.Duration, standardStatus bool, label string, remainingOps func() int64) *StatusReporter {
	now := time.Now()
	return &StatusReporter{
		measurements:   measurements,
		completedOps:   completedOps,
		interval:       interval,
		startTime:      now,
		lastReportTime: now,
		standardStatus: standardStatus,
		label:          label,
		remainingOps:   remainingOps,
		done:           make(chan struct{}),
		finished:       make(chan struct{}),
	}
}

// Run blocks, reporting every interval, until Stop is called. It always
// emits one final report before returning.
func (self *StatusReporter) Run() {
	defer close(self.finished)
	ticker := time.NewTicker(self.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			self.report(false)
		case <-self.done:
			self.report(true)
			return
		}
	}
}

func (self *StatusReporter) Stop() {
	close(self.done)
	<-self.finished
}

func (self *StatusReporter) report(final bool) {
	now := time.Now()
	opsDone := atomic.LoadInt64(self.completedOps)
	interval := now.Sub(self.lastReportTime).Seconds()
	var throughput float64
	if interval > 0 {
		throughput = float64(opsDone-self.lastOpsDone) / interval
	}
	elapsed := now.Sub(self.startTime).Seconds()

	// Cumulative throughput, unlike the tick-local one above, is computed
	// over the whole run so far; it's what the completion estimate below is
	// based on, since it smooths out any one interval's jitter.
	var cumulativeThroughput float64
	if elapsed > 0 {
		cumulativeThroughput = float64(opsDone) / elapsed
	}

	statusLabel := "status"
	if final {
		statusLabel = "final status"
	}
	if self.label != "" {
		statusLabel = self.label + " " + statusLabel
	}

	eta := ""
	if self.remainingOps != nil {
		if todoOps := self.remainingOps(); todoOps != 0 && cumulativeThroughput > 0 {
			remainingSecs := int64(math.Ceil(float64(todoOps) / cumulativeThroughput))
			eta = " est completion in " + formatRemaining(remainingSecs)
		}
	}

	stamp := strftime.Format(statusTimeLayout, now)
	if self.standardStatus {
		log.WithFields(log.Fields{
			"elapsedSec":   elapsed,
			"opsDone":      opsDone,
			"throughputOp": throughput,
		}).Infof("%s %s: %s%s", stamp, statusLabel, self.measurements.GetSummary(), eta)
	} else {
		log.WithFields(log.Fields{
			"elapsedSec":   elapsed,
			"opsDone":      opsDone,
			"throughputOp": throughput,
		}).Debugf("%s %s%s", stamp, statusLabel, eta)
	}

	self.lastReportTime = now
	self.lastOpsDone = opsDone
}

// formatRemaining renders a duration, in seconds, the way original_source's
// StatusThread.RemainingFormatter does: days (if any), then hours (if any),
// then minutes (only when there were no days), and seconds only when nothing
// else was printed.
func formatRemaining(seconds int64) string {
	days := seconds / 86400
	seconds -= days * 86400
	hours := seconds / 3600
	seconds -= hours * 3600
	minutes := seconds / 60
	seconds -= minutes * 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dh", hours)
	}
	if days == 0 && minutes > 0 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if b.Len() == 0 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	return b.String()
}

// Terminator stops the client goroutines once maxDuration has elapsed, if
// maxDuration is positive. It signals shutdown by closing the channel it
// returns, which client goroutines and the status reporter should select on
// alongside their normal completion condition.
func NewTerminator(maxDuration time.Duration) <-chan struct{} {
	done := make(chan struct{})
	if maxDuration <= 0 {
		return done
	}
	go func() {
		time.Sleep(maxDuration)
		close(done)
	}()
	return done
}
