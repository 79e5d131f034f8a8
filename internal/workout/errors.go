package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownWorkoutType is returned for a workout code with no registered builder.
	ErrUnknownWorkoutType = errors.New("unknown workout type")

	// ErrCaloriesNotImplemented is returned when calories are requested
	// for a workout that has no concrete kind.
	ErrCaloriesNotImplemented = errors.New("spent calories not implemented")
)

// ArityError reports a package whose positional values don't match its kind.
type ArityError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d values, got %d", e.Kind, e.Want, e.Got)
}
