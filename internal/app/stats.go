package app

import "time"

// statsCounter counts frames and reports the frame rate once per interval.
type statsCounter struct {
	interval time.Duration
	start    time.Time
	frames   int
}

func newStatsCounter(interval time.Duration) *statsCounter {
	return &statsCounter{interval: interval}
}

// tick records a frame at now. due is true when an interval has elapsed, in
// which case fps covers that interval and the counter restarts.
func (s *statsCounter) tick(now time.Time) (fps float64, due bool) {
	if s.start.IsZero() {
		s.start = now
	}
	s.frames++

	elapsed := now.Sub(s.start)
	if s.interval <= 0 || elapsed < s.interval {
		return 0, false
	}

	fps = float64(s.frames) / elapsed.Seconds()
	s.frames = 0
	s.start = now
	return fps, true
}
