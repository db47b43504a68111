package workflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-workflow/pkg/workflow"
)

func TestNewStepEmptyName(t *testing.T) {
	t.Parallel()

	_, err := workflow.NewStep("", 0)
	require.ErrorIs(t, err, workflow.ErrStepNameEmpty)
}

func TestNewStepNegativeRetries(t *testing.T) {
	t.Parallel()

	_, err := workflow.NewStep("fetch", -1)
	require.ErrorIs(t, err, workflow.ErrRetriesNegative)
}

func TestNewStepMetadata(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("fetch", 0, workflow.StepMetadata(map[string]any{"owner": "ingest"}))
	require.NoError(t, err)
	assert.Equal(t, "fetch", step.Name())
	assert.Equal(t, 0, step.Retries())
	assert.Equal(t, map[string]any{"owner": "ingest"}, step.Metadata())
}

func TestStepRunAppendsOncePerAttempt(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("validate", 2)
	require.NoError(t, err)

	rec, outcome, err := step.Run(workflow.NewRecord())
	require.NoError(t, err)
	assert.Equal(t, []string{"validate", "validate", "validate"}, rec.History)
	assert.Equal(t, 3, outcome.Attempts)
	assert.Equal(t, 3, outcome.Recorded)
	assert.False(t, outcome.ShortCircuited)
}

func TestStepRunSkipLeavesHistoryUntouched(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("validate", 2)
	require.NoError(t, err)

	rec := workflow.NewRecord()
	rec.History = append(rec.History, "fetch")
	rec.Skip = true

	rec, outcome, err := step.Run(rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"fetch"}, rec.History)
	assert.True(t, outcome.ShortCircuited)
}

func TestStepRunNotIdempotent(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("a", 1)
	require.NoError(t, err)

	rec := workflow.NewRecord()
	rec, _, err = step.Run(rec)
	require.NoError(t, err)
	rec, _, err = step.Run(rec)
	require.NoError(t, err)

	// Every run appends another retries+1 entries on the same record.
	assert.Equal(t, []string{"a", "a", "a", "a"}, rec.History)
}

func TestStepRunSkipSetMidSequence(t *testing.T) {
	t.Parallel()

	first, err := workflow.NewStep("fetch", 0)
	require.NoError(t, err)
	second, err := workflow.NewStep("validate", 1)
	require.NoError(t, err)
	third, err := workflow.NewStep("transform", 3)
	require.NoError(t, err)

	rec := workflow.NewRecord()
	rec, _, err = first.Run(rec)
	require.NoError(t, err)

	// The flag is checked, not consumed: once set it starves every later
	// step of the sequence.
	rec.Skip = true

	rec, _, err = second.Run(rec)
	require.NoError(t, err)
	rec, _, err = third.Run(rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"fetch"}, rec.History)
}

func TestStepRunNilRecord(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("a", 0)
	require.NoError(t, err)

	_, _, err = step.Run(nil)
	require.ErrorIs(t, err, workflow.ErrRecordMustBeSet)
}

func TestStepRunNilHistory(t *testing.T) {
	t.Parallel()

	step, err := workflow.NewStep("a", 0)
	require.NoError(t, err)

	_, _, err = step.Run(&workflow.Record{})
	require.ErrorIs(t, err, workflow.ErrHistoryMustBeSet)
}
