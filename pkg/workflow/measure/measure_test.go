package measure_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-workflow/pkg/workflow"
	"github.com/askiada/go-workflow/pkg/workflow/measure"
	"github.com/askiada/go-workflow/pkg/workflow/model"
)

func TestDefaultMetricAddRun(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("validate", 1)

	mt.AddRun(2, 2, 10*time.Millisecond, false)
	mt.AddRun(1, 0, 2*time.Millisecond, true)

	assert.Equal(t, int64(2), mt.Runs())
	assert.Equal(t, int64(3), mt.Attempts())
	assert.Equal(t, int64(2), mt.Recorded())
	assert.Equal(t, int64(1), mt.ShortCircuits())
	assert.Equal(t, 6*time.Millisecond, mt.AVGDuration())
}

func TestDefaultMetricEmpty(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("fetch", 0)

	assert.Equal(t, time.Duration(0), mt.AVGDuration())
	assert.Equal(t, time.Duration(0), mt.GetTotalDuration())
}

func TestDefaultMeasureGetMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("fetch", 0)

	assert.Equal(t, mt, msr.GetMetric("fetch"))
	assert.Nil(t, msr.GetMetric("unknown"))
	assert.Len(t, msr.AllMetrics(), 1)
}

func TestEngineMeasure(t *testing.T) {
	t.Parallel()

	fetch, err := workflow.NewStep("fetch", 0)
	require.NoError(t, err)
	validate, err := workflow.NewStep("validate", 1)
	require.NoError(t, err)

	msr := measure.NewDefaultMeasure()
	eng, err := workflow.New([]*workflow.Step{fetch, validate}, measure.EngineMeasure(msr))
	require.NoError(t, err)

	_, err = eng.Execute(context.Background(), workflow.NewRecord())
	require.NoError(t, err)

	fetchMetric := msr.GetMetric("fetch")
	require.NotNil(t, fetchMetric)
	assert.Equal(t, int64(1), fetchMetric.Runs())
	assert.Equal(t, int64(1), fetchMetric.Attempts())

	validateMetric := msr.GetMetric("validate")
	require.NotNil(t, validateMetric)
	assert.Equal(t, int64(2), validateMetric.Attempts())
	assert.Equal(t, int64(2), validateMetric.Recorded())
	assert.Equal(t, int64(0), validateMetric.ShortCircuits())

	endMetric := msr.GetMetric(model.EndStep.Name)
	require.NotNil(t, endMetric)
	assert.Greater(t, endMetric.GetTotalDuration(), time.Duration(0))
}

func TestEngineMeasureShortCircuit(t *testing.T) {
	t.Parallel()

	fetch, err := workflow.NewStep("fetch", 2)
	require.NoError(t, err)

	msr := measure.NewDefaultMeasure()
	eng, err := workflow.New([]*workflow.Step{fetch}, measure.EngineMeasure(msr))
	require.NoError(t, err)

	rec := workflow.NewRecord()
	rec.Skip = true

	_, err = eng.Execute(context.Background(), rec)
	require.NoError(t, err)

	mt := msr.GetMetric("fetch")
	assert.Equal(t, int64(1), mt.Attempts())
	assert.Equal(t, int64(0), mt.Recorded())
	assert.Equal(t, int64(1), mt.ShortCircuits())
}
