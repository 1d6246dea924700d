// Package progress reports the advance of long parses on a wall-clock
// interval: percent done, a smoothed byte rate and the estimated time left.
package progress

import (
	"fmt"
	"log/slog"
	"time"
)

const (
	// DefaultInterval is the minimum time between two reports.
	DefaultInterval = 5 * time.Second

	// rateSmoothing weights the newest interval in the moving rate.
	rateSmoothing = 0.3
)

// Report is one progress observation.
type Report struct {
	Done      int64
	Total     int64
	Percent   float64
	Rate      float64 // bytes per second, smoothed
	Elapsed   time.Duration
	Remaining time.Duration // zero when the rate is unknown
	Final     bool
}

// Func receives reports.
type Func func(Report)

// Tracker turns byte offsets into periodic reports. It is not safe for
// concurrent use; each parse owns its tracker.
type Tracker struct {
	total    int64
	interval time.Duration
	fn       Func
	now      func() time.Time

	start    time.Time
	last     time.Time
	lastDone int64
	rate     float64
}

// NewTracker returns a tracker for an input of total bytes. A non-positive
// interval selects DefaultInterval. The clock starts immediately.
func NewTracker(total int64, interval time.Duration, fn Func) *Tracker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	t := &Tracker{total: total, interval: interval, fn: fn, now: time.Now}
	t.start = t.now()
	t.last = t.start
	return t
}

// Update records that done bytes have been consumed and emits a report if
// the interval has elapsed since the previous one. It reports whether a
// report was emitted.
func (t *Tracker) Update(done int64) bool {
	if t == nil || t.fn == nil {
		return false
	}
	now := t.now()
	since := now.Sub(t.last)
	if since < t.interval {
		return false
	}
	t.observe(now, since, done)
	t.fn(t.report(now, done, false))
	return true
}

// Finish emits a final report unconditionally.
func (t *Tracker) Finish(done int64) {
	if t == nil || t.fn == nil {
		return
	}
	now := t.now()
	if since := now.Sub(t.last); since > 0 {
		t.observe(now, since, done)
	}
	t.fn(t.report(now, done, true))
}

func (t *Tracker) observe(now time.Time, since time.Duration, done int64) {
	current := float64(done-t.lastDone) / since.Seconds()
	if t.rate == 0 {
		t.rate = current
	} else {
		t.rate = rateSmoothing*current + (1-rateSmoothing)*t.rate
	}
	t.last = now
	t.lastDone = done
}

func (t *Tracker) report(now time.Time, done int64, final bool) Report {
	r := Report{
		Done:    done,
		Total:   t.total,
		Rate:    t.rate,
		Elapsed: now.Sub(t.start),
		Final:   final,
	}
	if t.total > 0 {
		r.Percent = 100 * float64(done) / float64(t.total)
	}
	if t.rate > 0 && done < t.total {
		r.Remaining = time.Duration(float64(t.total-done) / t.rate * float64(time.Second))
	}
	return r
}

// FormatHMS formats d as hours:minutes:seconds, e.g. "1:02:03".
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}

// String renders a report the way the CLI prints it.
func (r Report) String() string {
	return fmt.Sprintf("%.1f%% (%d/%d bytes), %s remaining", r.Percent, r.Done, r.Total, FormatHMS(r.Remaining))
}

// LogReporter returns a Func that logs each report at info level.
func LogReporter(l *slog.Logger) Func {
	return func(r Report) {
		msg := "parsing"
		if r.Final {
			msg = "parsed"
		}
		l.Info(msg,
			slog.Float64("percent", r.Percent),
			slog.Int64("done", r.Done),
			slog.Int64("total", r.Total),
			slog.Float64("rate", r.Rate),
			slog.String("remaining", FormatHMS(r.Remaining)),
		)
	}
}
