package tasklist

// Reason identifies why a task text was rejected.
type Reason int

const (
	// Empty means the text was empty after trimming whitespace.
	Empty Reason = iota + 1
)

func (r Reason) String() string {
	switch r {
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

// ValidationError is returned by Add when the input is rejected.
type ValidationError struct {
	Reason Reason
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case Empty:
		return "task text is empty"
	default:
		return "invalid task text"
	}
}

// Is reports whether target is a ValidationError with the same reason,
// so errors.Is(err, ErrEmpty) works on wrapped values too.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Reason == e.Reason
}

// ErrEmpty matches the error Add returns for whitespace-only input.
// Add returns a fresh value each time; compare with errors.Is.
var ErrEmpty error = &ValidationError{Reason: Empty}
