package parser

import "github.com/sstent/fittracker-go/internal/workout"

// Package is one raw reading from the tracker: a workout code and its
// positional values.
type Package struct {
	Code string    `json:"code"`
	Data []float64 `json:"data"`
}

// Workout dispatches the package to its workout builder.
func (p Package) Workout() (workout.Workout, error) {
	return ReadPackage(p.Code, p.Data)
}

// DemoPackages returns the sample readings shipped with the tool.
func DemoPackages() []Package {
	return []Package{
		{Code: string(CodeSwimming), Data: []float64{720, 1, 80, 25, 40}},
		{Code: string(CodeRunning), Data: []float64{15000, 1, 75}},
		{Code: string(CodeWalking), Data: []float64{9000, 1, 75, 180}},
	}
}
