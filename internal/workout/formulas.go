package workout

import "math"

const (
	MInKm  = 1000 // meters in a kilometer
	MinInH = 60   // minutes in an hour

	// LenStep is the distance covered by one step, in meters.
	LenStep = 0.65
	// SwimmingLenStep is the distance covered by one stroke, in meters.
	SwimmingLenStep = 1.38

	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 1.79

	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
	walkingSpeedPower               = 2
	KmhInMsec                       = 0.278
	CmInM                           = 100

	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// distance returns kilometers covered by action repetitions of lenStep meters.
func distance(action int, lenStep float64) float64 {
	return float64(action) * lenStep / MInKm
}

// meanSpeed returns km/h. Duration is not checked.
func meanSpeed(distance, duration float64) float64 {
	return distance / duration
}

func swimmingMeanSpeed(poolLength, poolCount, duration float64) float64 {
	return poolLength * poolCount / MInKm / duration
}

func runningSpentCalories(speed, weight, duration float64) float64 {
	return (runningCaloriesMeanSpeedMultiplier*speed + runningCaloriesMeanSpeedShift) *
		weight / MInKm * MinInH * duration
}

func walkingSpentCalories(speed, weight, height, duration float64) float64 {
	return (walkingCaloriesWeightMultiplier*weight +
		(math.Pow(speed*KmhInMsec, walkingSpeedPower)/(height/CmInM))*
			walkingSpeedHeightMultiplier*weight) *
		duration * MinInH
}

func swimmingSpentCalories(speed, weight, duration float64) float64 {
	return (speed + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * weight * duration
}
