package measure

import (
	"time"

	"github.com/askiada/go-workflow/pkg/workflow/model"
)

type engineMeasure struct {
	Measure
}

func (em *engineMeasure) New() error {
	em.AddMetric(model.StartStep.Name, 0)
	em.AddMetric(model.EndStep.Name, 0)

	return nil
}

func (em *engineMeasure) PrepareStep(parentStep, step *model.StepInfo) error {
	if step == model.EndStep {
		return nil
	}
	em.AddMetric(step.Name, step.Retries)

	return nil
}

func (em *engineMeasure) OnStepRun(run *model.RunInfo, step *model.StepInfo, outcome *model.Outcome) error {
	em.GetMetric(step.Name).AddRun(outcome.Attempts, outcome.Recorded, outcome.Elapsed, outcome.ShortCircuited)

	return nil
}

func (em *engineMeasure) Finish(run *model.RunInfo, totalDuration time.Duration) error {
	em.GetMetric(model.EndStep.Name).SetTotalDuration(totalDuration)

	return nil
}

// EngineMeasure records per-step run metrics into measure.
func EngineMeasure(measure Measure) model.EngineOption {
	return &engineMeasure{measure}
}
