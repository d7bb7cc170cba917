package tableview

import (
	"errors"
	"fmt"
)

var (
	// ErrVetoed is matched by errors.Is for every *VetoError.
	ErrVetoed = errors.New("column change vetoed")

	// ErrUnknownColumn is returned for column names
	// that are not declared or are Excluded.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrMandatoryColumn is returned when a column set
	// lacks a Mandatory column.
	ErrMandatoryColumn = errors.New("mandatory column missing")

	// ErrInvalidRange is returned for display column ranges
	// or slices with first > last or negative or out of range indices.
	ErrInvalidRange = errors.New("invalid range")

	// ErrNoOverlap is returned by SliceTracker.DropSlice
	// for a slice that does not overlap the open slice.
	ErrNoOverlap = errors.New("slice does not overlap open slice")
)

// VetoError is returned when a VetoFunc rejects a column change.
// The column layout is left unchanged.
type VetoError struct {
	Columns []string
	Err     error
}

func (e *VetoError) Error() string {
	return fmt.Sprintf("column change to %v vetoed: %s", e.Columns, e.Err)
}

func (e *VetoError) Unwrap() error { return e.Err }

func (e *VetoError) Is(target error) bool { return target == ErrVetoed }

// Aspect of the engine state that is revalidated.
type Aspect string

const (
	AspectFilter Aspect = "filter"
	AspectOrder  Aspect = "order"
)

// EvaluationError is recorded by Engine.Revalidate when evaluating
// filters or comparing rows panicked. The failed aspect
// falls back to unfiltered respectively source order.
type EvaluationError struct {
	Aspect Aspect
	Err    error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("%s evaluation failed: %s", e.Aspect, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }

// recoverError converts a recovered panic value to an error.
func recoverError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
