package state

// FatalError aborts the dispatch loop. Runtime is set when the failure came
// from a Go runtime fault rather than an explicit Raise.
type FatalError struct {
	Err     error
	Runtime bool
}

func (e *FatalError) Error() string {
	if e.Runtime {
		return "runtime fault: " + e.Err.Error()
	}
	return "fatal: " + e.Err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.Err
}
