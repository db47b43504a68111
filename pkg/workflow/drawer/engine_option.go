package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-workflow/pkg/workflow/measure"
	"github.com/askiada/go-workflow/pkg/workflow/model"
)

type engineDrawer struct {
	Drawer
	m measure.Measure
}

func (ed *engineDrawer) New() error {
	err := ed.AddStep(model.StartStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}
	err = ed.AddStep(model.EndStep.Name)
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	return nil
}

func (ed *engineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	// start and end vertices already exist.
	if step != model.EndStep {
		err := ed.AddStep(step.Name)
		if err != nil {
			return err
		}
	}

	err := ed.AddLink(parentStep.Name, step.Name)
	if err != nil {
		return err
	}

	return nil
}

func (ed *engineDrawer) OnStepRun(run *model.RunInfo, step *model.StepInfo, outcome *model.Outcome) error {
	return nil
}

func (ed *engineDrawer) Finish(run *model.RunInfo, totalDuration time.Duration) error {
	err := ed.SetTotalTime(model.EndStep.Name, totalDuration)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if ed.m != nil {
		err = ed.AddMeasure(ed.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = ed.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw workflow")
	}

	return nil
}

// EngineDrawer draws the step chain once a run is finished, decorated with
// measurements when measure is not nil.
func EngineDrawer(drawer Drawer, measure measure.Measure) model.EngineOption {
	return &engineDrawer{drawer, measure}
}
