package workflow

import "github.com/pkg/errors"

var (
	ErrStepNameEmpty    = errors.New("step name must not be empty")
	ErrRetriesNegative  = errors.New("retries must not be negative")
	ErrStepMustBeSet    = errors.New("step must be set")
	ErrRecordMustBeSet  = errors.New("record must be set")
	ErrHistoryMustBeSet = errors.New("record history must be set")
)
