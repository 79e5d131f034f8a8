package workout

// Kind identifies the workout variant. The zero value is the generic
// training, which has no calorie formula.
type Kind int

const (
	KindTraining Kind = iota
	KindRunning
	KindSportsWalking
	KindSwimming
)

// String returns the display label used in summaries.
func (k Kind) String() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindSportsWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return "Training"
	}
}

// Arity is the number of positional values a package of this kind carries.
func (k Kind) Arity() int {
	switch k {
	case KindRunning:
		return 3
	case KindSportsWalking:
		return 4
	case KindSwimming:
		return 5
	default:
		return 0
	}
}

func (k Kind) lenStep() float64 {
	if k == KindSwimming {
		return SwimmingLenStep
	}
	return LenStep
}
