package models

import "math"

// AllocationMethod identifies the partitioning strategy of an allocation run
type AllocationMethod string

const (
	AllocationMethodGradeBased AllocationMethod = "grade_based"
	AllocationMethodRandom     AllocationMethod = "random"
	AllocationMethodBalanced   AllocationMethod = "balanced"
)

// IsValid checks if the AllocationMethod is valid
func (m AllocationMethod) IsValid() bool {
	switch m {
	case AllocationMethodGradeBased, AllocationMethodRandom, AllocationMethodBalanced:
		return true
	}
	return false
}

// Label returns the human readable name of the method
func (m AllocationMethod) Label() string {
	switch m {
	case AllocationMethodGradeBased:
		return "Grade-Based Allocation"
	case AllocationMethodRandom:
		return "Random Allocation"
	case AllocationMethodBalanced:
		return "Balanced Allocation"
	}
	return string(m)
}

// Classification is the degree class derived from a student's score
type Classification string

const (
	ClassificationFirst       Classification = "First Class"
	ClassificationSecondUpper Classification = "Second Class Upper"
	ClassificationSecondLower Classification = "Second Class Lower"
	ClassificationThird       Classification = "Third Class"
	ClassificationPass        Classification = "Pass"
	ClassificationFail        Classification = "Fail"
)

// FirstClassThreshold is the lowest score that classifies as First Class
const FirstClassThreshold = 4.50

// Classifications returns every tier from highest to lowest
func Classifications() []Classification {
	return []Classification{
		ClassificationFirst,
		ClassificationSecondUpper,
		ClassificationSecondLower,
		ClassificationThird,
		ClassificationPass,
		ClassificationFail,
	}
}

// Classify maps a score to its classification. Bounds are inclusive and
// compared in hundredths since scores are stored with two decimals.
func Classify(score float64) Classification {
	c := hundredths(score)
	switch {
	case c >= 450 && c <= 500:
		return ClassificationFirst
	case c >= 350 && c <= 449:
		return ClassificationSecondUpper
	case c >= 240 && c <= 349:
		return ClassificationSecondLower
	case c >= 150 && c <= 239:
		return ClassificationThird
	case c >= 100 && c <= 149:
		return ClassificationPass
	default:
		return ClassificationFail
	}
}

// IsFirstClassScore reports whether score reaches the first class threshold
func IsFirstClassScore(score float64) bool {
	return hundredths(score) >= hundredths(FirstClassThreshold)
}

func hundredths(score float64) int64 {
	return int64(math.Round(score * 100))
}
