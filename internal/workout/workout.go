// Package workout computes distance, mean speed and spent calories for
// running, sports walking and swimming sessions.
package workout

import (
	"fmt"

	"github.com/sstent/fittracker-go/internal/models"
)

// Workout holds the raw sensor values of one session.
// Height is used by sports walking only; PoolLength and PoolCount by swimming only.
type Workout struct {
	Kind       Kind
	Action     int     // steps or strokes
	Duration   float64 // in hours
	Weight     float64 // in kg
	Height     float64 // in cm
	PoolLength float64 // in meters
	PoolCount  float64 // pool lengths swum
}

func NewRunning(action int, duration, weight float64) Workout {
	return Workout{
		Kind:     KindRunning,
		Action:   action,
		Duration: duration,
		Weight:   weight,
	}
}

func NewSportsWalking(action int, duration, weight, height float64) Workout {
	return Workout{
		Kind:     KindSportsWalking,
		Action:   action,
		Duration: duration,
		Weight:   weight,
		Height:   height,
	}
}

func NewSwimming(action int, duration, weight, poolLength, poolCount float64) Workout {
	return Workout{
		Kind:       KindSwimming,
		Action:     action,
		Duration:   duration,
		Weight:     weight,
		PoolLength: poolLength,
		PoolCount:  poolCount,
	}
}

// FromValues builds a workout of the given kind from positional values in
// constructor order. The action count is truncated to an integer.
func FromValues(kind Kind, data []float64) (Workout, error) {
	want := kind.Arity()
	if want == 0 {
		return Workout{}, fmt.Errorf("%w: %s", ErrUnknownWorkoutType, kind)
	}
	if len(data) != want {
		return Workout{}, &ArityError{Kind: kind, Want: want, Got: len(data)}
	}

	action := int(data[0])
	switch kind {
	case KindRunning:
		return NewRunning(action, data[1], data[2]), nil
	case KindSportsWalking:
		return NewSportsWalking(action, data[1], data[2], data[3]), nil
	default:
		return NewSwimming(action, data[1], data[2], data[3], data[4]), nil
	}
}

// Distance returns the distance covered in km.
func (w Workout) Distance() float64 {
	return distance(w.Action, w.Kind.lenStep())
}

// MeanSpeed returns the average speed over the whole session in km/h.
// Swimming derives it from the pool instead of the stroke count.
func (w Workout) MeanSpeed() float64 {
	if w.Kind == KindSwimming {
		return swimmingMeanSpeed(w.PoolLength, w.PoolCount, w.Duration)
	}
	return meanSpeed(w.Distance(), w.Duration)
}

// SpentCalories returns kcal burned during the session.
func (w Workout) SpentCalories() (float64, error) {
	switch w.Kind {
	case KindRunning:
		return runningSpentCalories(w.MeanSpeed(), w.Weight, w.Duration), nil
	case KindSportsWalking:
		return walkingSpentCalories(w.MeanSpeed(), w.Weight, w.Height, w.Duration), nil
	case KindSwimming:
		return swimmingSpentCalories(w.MeanSpeed(), w.Weight, w.Duration), nil
	default:
		return 0, fmt.Errorf("%w for %s", ErrCaloriesNotImplemented, w.Kind)
	}
}

// Info computes the session summary.
func (w Workout) Info() (models.Summary, error) {
	calories, err := w.SpentCalories()
	if err != nil {
		return models.Summary{}, err
	}

	return models.Summary{
		TrainingType: w.Kind.String(),
		Duration:     w.Duration,
		Distance:     w.Distance(),
		Speed:        w.MeanSpeed(),
		Calories:     calories,
	}, nil
}
