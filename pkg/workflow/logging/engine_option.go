// Package logging provides a structured logging engine option backed by zap.
package logging

import (
	"time"

	"go.uber.org/zap"

	"github.com/askiada/go-workflow/pkg/workflow/model"
)

type engineLogger struct {
	logger *zap.Logger
}

func (el *engineLogger) New() error {
	return nil
}

func (el *engineLogger) PrepareStep(parentStep, step *model.StepInfo) error {
	el.logger.Debug("step prepared",
		zap.String("parent", parentStep.Name),
		zap.String("step", step.Name),
		zap.Int("retries", step.Retries),
	)

	return nil
}

func (el *engineLogger) OnStepRun(run *model.RunInfo, step *model.StepInfo, outcome *model.Outcome) error {
	el.logger.Info("step run",
		zap.Stringer("run_id", run.ID),
		zap.String("step", step.Name),
		zap.Int("attempts", outcome.Attempts),
		zap.Int("recorded", outcome.Recorded),
		zap.Bool("short_circuited", outcome.ShortCircuited),
		zap.Duration("elapsed", outcome.Elapsed),
	)

	return nil
}

func (el *engineLogger) Finish(run *model.RunInfo, totalDuration time.Duration) error {
	el.logger.Info("run finished",
		zap.Stringer("run_id", run.ID),
		zap.Duration("total", totalDuration),
	)

	return nil
}

// EngineLogger logs every step invocation and the run completion.
func EngineLogger(logger *zap.Logger) model.EngineOption {
	return &engineLogger{logger: logger}
}
