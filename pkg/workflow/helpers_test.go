package workflow_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/askiada/go-workflow/pkg/workflow"
	"github.com/askiada/go-workflow/pkg/workflow/model"
)

func buildSteps(t *testing.T, defs ...struct {
	name    string
	retries int
}) []*workflow.Step {
	t.Helper()

	steps := make([]*workflow.Step, len(defs))
	for i, def := range defs {
		step, err := workflow.NewStep(def.name, def.retries)
		require.NoError(t, err)
		steps[i] = step
	}

	return steps
}

func step(name string, retries int) struct {
	name    string
	retries int
} {
	return struct {
		name    string
		retries int
	}{name, retries}
}

// recorderOption captures every hook invocation so tests can assert what the
// engine reported.
type recorderOption struct {
	mu       sync.Mutex
	prepared []string
	ran      []string
	outcomes []model.Outcome
	finished int

	newErr    error
	onRunErr  error
	finishErr error
}

func (r *recorderOption) New() error {
	return r.newErr
}

func (r *recorderOption) PrepareStep(parentStep, step *model.StepInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prepared = append(r.prepared, parentStep.Name+"->"+step.Name)

	return nil
}

func (r *recorderOption) OnStepRun(run *model.RunInfo, step *model.StepInfo, outcome *model.Outcome) error {
	if r.onRunErr != nil {
		return r.onRunErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.ran = append(r.ran, step.Name)
	r.outcomes = append(r.outcomes, *outcome)

	return nil
}

func (r *recorderOption) Finish(run *model.RunInfo, totalDuration time.Duration) error {
	if r.finishErr != nil {
		return r.finishErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.finished++

	return nil
}
