package session

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy is returned while a generation call is outstanding.
	ErrBusy = errors.New("a generation request is already in progress")
	// ErrEmptyGoal is returned when the trimmed goal is empty.
	ErrEmptyGoal = errors.New("goal must not be empty")
	// ErrNoReports guards finalize when no day has been reported.
	ErrNoReports = errors.New("please complete at least one day before generating a report")
	// ErrNotConfirmed is returned by Restart without user confirmation.
	ErrNotConfirmed = errors.New("restart not confirmed")
	// ErrWrongView is returned when an operation is not offered on the current screen.
	ErrWrongView = errors.New("operation not available in the current view")
	// ErrUnknownDay is returned for a report whose day is not in the plan.
	ErrUnknownDay = errors.New("day is not part of the plan")
	// ErrActivityIndex is returned by BuildReport for an out-of-range activity index.
	ErrActivityIndex = errors.New("activity index out of range")
	// ErrEmptyPlan is wrapped in a GenerationError when a generator returns no days.
	ErrEmptyPlan = errors.New("generated plan has no days")
	// ErrGeneration matches every *GenerationError.
	ErrGeneration = errors.New("generation failed")
)

// GenerationError reports a failed plan or analysis generation call.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrGeneration) hold for any GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}
