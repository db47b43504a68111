package workflow

// StepOption configures a step at construction time.
type StepOption func(s *Step)

// StepMetadata attaches arbitrary key/value annotations to a step. The
// engine never interprets them; they are passed through to engine options
// and tooling.
func StepMetadata(metadata map[string]any) StepOption {
	return func(s *Step) {
		s.metadata = metadata
	}
}
