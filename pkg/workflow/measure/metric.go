package measure

import (
	"sync"
	"time"
)

type DefaultMetric struct {
	mu            *sync.Mutex
	retries       int
	runs          int64
	attempts      int64
	recorded      int64
	shortCircuits int64
	stepElapsed   time.Duration
	EndDuration   time.Duration
}

func (mt *DefaultMetric) AddRun(attempts, recorded int, elapsed time.Duration, shortCircuited bool) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.runs++
	mt.attempts += int64(attempts)
	mt.recorded += int64(recorded)
	if shortCircuited {
		mt.shortCircuits++
	}
	mt.stepElapsed += elapsed
}

func (mt *DefaultMetric) Runs() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.runs
}

func (mt *DefaultMetric) Attempts() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.attempts
}

func (mt *DefaultMetric) Recorded() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.recorded
}

func (mt *DefaultMetric) ShortCircuits() int64 {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.shortCircuits
}

func (mt *DefaultMetric) SetTotalDuration(endDuration time.Duration) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.EndDuration = endDuration
}

func (mt *DefaultMetric) GetTotalDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	return mt.EndDuration
}

func (mt *DefaultMetric) AVGDuration() time.Duration {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.runs == 0 {
		return time.Duration(0)
	}

	return round(time.Duration(float64(mt.stepElapsed) / float64(mt.runs)))
}

func round(d time.Duration) time.Duration {
	switch {
	case d > time.Second:
		d = d.Round(time.Second)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond)
	case d > time.Minute:
		d = d.Round(time.Minute)
	case d > time.Hour:
		d = d.Round(time.Hour)
	}

	return d
}
