package models

import "fmt"

// Summary contains the values computed for a single workout
type Summary struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"` // in hours
	Distance     float64 `json:"distance"` // in km
	Speed        float64 `json:"speed"`    // mean speed, km/h
	Calories     float64 `json:"calories"` // in kcal
}

// Message renders the summary as one human-readable line.
func (s Summary) Message() string {
	return fmt.Sprintf("Training type: %s; "+
		"Duration: %.3f h; "+
		"Distance: %.3f km; "+
		"Mean speed: %.3f km/h; "+
		"Calories spent: %.3f.",
		s.TrainingType, s.Duration, s.Distance, s.Speed, s.Calories)
}
