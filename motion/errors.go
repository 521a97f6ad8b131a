package motion

import "fmt"

// InvalidDurationError indicates a non-positive duration on a tween that
// is not an instantaneous set.
type InvalidDurationError struct {
	Duration float64
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("motion: invalid duration %g", e.Duration)
}

// UnknownLabelError indicates a position referenced a label that was never
// added to the sequence.
type UnknownLabelError struct {
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("motion: unknown label %q", e.Label)
}

// EaseNotFoundError indicates an ease name with no registration.
type EaseNotFoundError struct {
	Name string
}

func (e *EaseNotFoundError) Error() string {
	return fmt.Sprintf("motion: ease %q not found", e.Name)
}

// CyclicSequenceError indicates a sequence was added to itself, directly or
// through a chain of parents.
type CyclicSequenceError struct{}

func (e *CyclicSequenceError) Error() string {
	return "motion: sequence cannot contain itself"
}

// DeadHandleError indicates an operation on a handle whose unit has been
// killed.
type DeadHandleError struct{}

func (e *DeadHandleError) Error() string {
	return "motion: handle is dead"
}
