package model

import "time"

// EngineOption defines the interface for engine options. Options observe the
// engine: they are told about the step chain when the engine is built and
// about every step invocation while it runs. They never mutate the record.
type EngineOption interface {
	// New initialises the engine option.
	New() error

	// PrepareStep runs once per step when the engine is built, in execution
	// order. The first call receives StartStep as parent and the last step is
	// followed by a call with EndStep as the step.
	PrepareStep(parentStep, step *StepInfo) error

	// OnStepRun runs after each step invocation with its outcome.
	OnStepRun(run *RunInfo, step *StepInfo, outcome *Outcome) error

	// Finish runs after the whole run is finished.
	Finish(run *RunInfo, totalDuration time.Duration) error
}
