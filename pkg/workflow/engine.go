package workflow

import (
	"context"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-workflow/pkg/workflow/model"
)

// Engine applies an ordered list of steps to one record. The step list is
// fixed for the engine's lifetime and the engine keeps no per-run state, so
// a single engine may serve any number of runs, including concurrent runs on
// distinct records.
type Engine struct {
	steps []*Step
	infos []*model.StepInfo
	opts  []model.EngineOption
}

// New creates an engine over steps, in execution order. Options are
// initialised immediately and told about the step chain, start to end.
func New(steps []*Step, opts ...model.EngineOption) (*Engine, error) {
	eng := &Engine{
		steps: steps,
		infos: make([]*model.StepInfo, len(steps)),
		opts:  opts,
	}

	for i, step := range steps {
		if step == nil {
			return nil, errors.Wrapf(ErrStepMustBeSet, "position %d", i)
		}
		eng.infos[i] = step.info()
	}

	for _, opt := range opts {
		err := opt.New()
		if err != nil {
			return nil, errors.Wrap(err, "unable to apply engine option")
		}
	}

	parent := model.StartStep
	for _, info := range eng.infos {
		for _, opt := range opts {
			err := opt.PrepareStep(parent, info)
			if err != nil {
				return nil, errors.Wrapf(err, "unable to prepare step %s", info.Name)
			}
		}
		parent = info
	}
	for _, opt := range opts {
		err := opt.PrepareStep(parent, model.EndStep)
		if err != nil {
			return nil, errors.Wrap(err, "unable to prepare end step")
		}
	}

	return eng, nil
}

// Execute feeds rec through every step in order and returns the same record.
// There is no engine-level early exit: once the record's skip flag is set,
// remaining steps are still invoked and simply record nothing.
//
// After each step the engine reaches a suspension point: it checks ctx and
// yields the processor without consuming wall-clock time. Steps themselves
// never yield, so a cancellation observed here leaves the record exactly as
// the last completed step produced it.
func (e *Engine) Execute(ctx context.Context, rec *Record) (*Record, error) {
	if err := rec.validate(); err != nil {
		return rec, err
	}

	run := &model.RunInfo{
		ID:      uuid.New(),
		Started: time.Now(),
	}

	for i, step := range e.steps {
		var outcome model.Outcome
		rec, outcome = step.run(rec)

		for _, opt := range e.opts {
			err := opt.OnStepRun(run, e.infos[i], &outcome)
			if err != nil {
				return rec, errors.Wrapf(err, "unable to run engine option on step %s", step.name)
			}
		}

		select {
		case <-ctx.Done():
			return rec, errors.Wrapf(ctx.Err(), "cancelled after step %s", step.name)
		default:
			runtime.Gosched()
		}
	}

	for _, opt := range e.opts {
		err := opt.Finish(run, time.Since(run.Started))
		if err != nil {
			return rec, errors.Wrap(err, "unable to finish engine option")
		}
	}

	return rec, nil
}

// Steps returns the step descriptors in execution order.
func (e *Engine) Steps() []*model.StepInfo {
	return e.infos
}
