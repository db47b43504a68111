package drawer

import (
	"time"

	"github.com/askiada/go-workflow/pkg/workflow/measure"
)

// Drawer is an interface that defines the methods for drawing a workflow.
type Drawer interface {
	// AddStep adds a step to the workflow drawer.
	AddStep(stepName string) error
	// AddLink adds a link between parent and child steps.
	AddLink(parentStepName, childStepName string) error
	// Draw creates a file with the workflow graph.
	Draw() error
	// SetTotalTime sets the total run time on a step.
	SetTotalTime(stepName string, totalTime time.Duration) error
	// AddMeasure decorates the graph with run measurements.
	AddMeasure(measure measure.Measure) error
}
