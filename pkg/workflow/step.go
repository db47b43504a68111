package workflow

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-workflow/pkg/workflow/model"
)

// Step is a named, retry-bounded unit of work applied to a shared record.
// Its attempt budget is retries+1: the retry count is the number of
// additional attempts beyond the first.
type Step struct {
	name     string
	retries  int
	metadata map[string]any
}

// NewStep creates a step. The name must not be empty and retries must not be
// negative; both are immutable afterwards.
func NewStep(name string, retries int, opts ...StepOption) (*Step, error) {
	if name == "" {
		return nil, ErrStepNameEmpty
	}
	if retries < 0 {
		return nil, errors.Wrapf(ErrRetriesNegative, "step %s", name)
	}

	step := &Step{
		name:    name,
		retries: retries,
	}
	for _, opt := range opts {
		opt(step)
	}

	return step, nil
}

// Name returns the step name.
func (s *Step) Name() string { return s.name }

// Retries returns the number of additional attempts beyond the first.
func (s *Step) Retries() int { return s.retries }

// Metadata returns the caller-provided annotations, or nil.
func (s *Step) Metadata() map[string]any { return s.metadata }

// info builds the descriptor handed to engine options.
func (s *Step) info() *model.StepInfo {
	return &model.StepInfo{
		Name:     s.name,
		Retries:  s.retries,
		Metadata: s.metadata,
	}
}

// Run performs the attempt loop on rec and returns the same record. Each
// iteration consumes one attempt before the skip flag is checked, so a skip
// seen on the very first iteration still counts one attempt while recording
// nothing. Every non-aborted attempt appends the step name to the history:
// with skip false throughout, a step with retries=r contributes exactly r+1
// entries. The skip flag is only ever read here, never cleared, so once set
// it starves every later step of the same run as well.
//
// Run never fails once the record preconditions hold; the only two ways out
// of the loop are budget exhaustion and the skip short-circuit, and the
// returned outcome tells them apart for instrumentation.
func (s *Step) Run(rec *Record) (*Record, model.Outcome, error) {
	if err := rec.validate(); err != nil {
		return rec, model.Outcome{}, errors.Wrapf(err, "step %s", s.name)
	}

	rec, outcome := s.run(rec)

	return rec, outcome, nil
}

// run is the unchecked attempt loop shared with the engine, which validates
// the record once per run instead of once per step.
func (s *Step) run(rec *Record) (*Record, model.Outcome) {
	start := time.Now()
	outcome := model.Outcome{}

	attempts := 0
	for attempts <= s.retries {
		attempts++
		if rec.Skip {
			outcome.ShortCircuited = true

			break
		}
		rec.History = append(rec.History, s.name)
		outcome.Recorded++
	}

	outcome.Attempts = attempts
	outcome.Elapsed = time.Since(start)

	return rec, outcome
}
