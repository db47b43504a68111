package model

import (
	"time"

	"github.com/google/uuid"
)

// StepInfo describes a single step of an engine: its name, its retry budget
// and the caller-provided metadata. The engine never interprets Metadata.
type StepInfo struct {
	Name     string
	Retries  int
	Metadata map[string]any
}

// Outcome reports how one step invocation went. Attempts counts every loop
// iteration consumed, including the aborted one when the short-circuit flag
// was already set. Recorded counts the history entries actually appended, so
// Attempts == Recorded exactly when the step was not short-circuited.
type Outcome struct {
	Attempts       int
	Recorded       int
	ShortCircuited bool
	Elapsed        time.Duration
}

// RunInfo identifies one Execute invocation.
type RunInfo struct {
	ID      uuid.UUID
	Started time.Time
}

var (
	StartStep = &StepInfo{Name: "start"}
	EndStep   = &StepInfo{Name: "end"}
)
