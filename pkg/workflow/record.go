package workflow

// Record is the single mutable value threaded through a run. Steps append to
// History and read Skip; nothing in this package ever clears Skip or replaces
// the record wholesale, so the value a caller passes to Execute is the value
// it gets back.
//
// Annotations is an open extension slot for callers and tooling. The engine
// never reads it.
type Record struct {
	History     []string
	Skip        bool
	Annotations map[string]any
}

// NewRecord returns an empty record ready to be executed.
func NewRecord() *Record {
	return &Record{History: []string{}}
}

// validate checks the preconditions shared by Step.Run and Engine.Execute.
func (r *Record) validate() error {
	if r == nil {
		return ErrRecordMustBeSet
	}
	if r.History == nil {
		return ErrHistoryMustBeSet
	}

	return nil
}
