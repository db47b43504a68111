package measure

import "time"

type Measure interface {
	AddMetric(name string, retries int) Metric
	GetMetric(name string) Metric
	AllMetrics() map[string]Metric
}

type Metric interface {
	AddRun(attempts, recorded int, elapsed time.Duration, shortCircuited bool)
	Runs() int64
	Attempts() int64
	Recorded() int64
	ShortCircuits() int64
	AVGDuration() time.Duration
	SetTotalDuration(endDuration time.Duration)
	GetTotalDuration() time.Duration
}
