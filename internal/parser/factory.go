package parser

import (
	"fmt"

	"github.com/sstent/fittracker-go/internal/workout"
)

// Code is the three letter workout tag sent by the tracker.
type Code string

const (
	CodeSwimming Code = "SWM"
	CodeRunning  Code = "RUN"
	CodeWalking  Code = "WLK"
)

type builder func(data []float64) (workout.Workout, error)

var builders = map[Code]builder{
	CodeSwimming: kindBuilder(workout.KindSwimming),
	CodeRunning:  kindBuilder(workout.KindRunning),
	CodeWalking:  kindBuilder(workout.KindSportsWalking),
}

func kindBuilder(kind workout.Kind) builder {
	return func(data []float64) (workout.Workout, error) {
		return workout.FromValues(kind, data)
	}
}

// ReadPackage builds the workout for a sensor package. An unknown code
// yields workout.ErrUnknownWorkoutType, a wrong value count *workout.ArityError.
func ReadPackage(code string, data []float64) (workout.Workout, error) {
	build, ok := builders[Code(code)]
	if !ok {
		return workout.Workout{}, fmt.Errorf("%w: %q", workout.ErrUnknownWorkoutType, code)
	}

	w, err := build(data)
	if err != nil {
		return workout.Workout{}, fmt.Errorf("failed to read %s package: %w", code, err)
	}
	return w, nil
}
