package recommend

import (
	"math"

	"github.com/Avanthi1990/sf-guardian/internal/catalog"
)

// Fixed weights of the compatibility score; they sum to 1 so the score stays
// within [0, 100].
const (
	weightSafety     = 0.4
	weightBudget     = 0.3
	weightPreference = 0.3
)

// preferenceBands maps a user protection preference to the protection-score
// band it accepts.
var preferenceBands = map[catalog.ProtectionNeed][2]float64{
	catalog.NeedLow:      {0, 40},
	catalog.NeedMedium:   {40, 70},
	catalog.NeedHigh:     {70, 85},
	catalog.NeedVeryHigh: {85, 100},
}

func scoreDog(n *catalog.NeighborhoodProfile, dog *catalog.DogProfile, preference catalog.ProtectionNeed) ScoredDog {
	safety := safetyMatch(n.ProtectionNeed, dog.ProtectionScore)
	budget := budgetMatch(n.BudgetLimit, dog.MonthlyCost)
	pref := preferenceMatch(preference, dog.ProtectionScore)

	return ScoredDog{
		Dog:                dog,
		CompatibilityScore: weightSafety*safety + weightBudget*budget + weightPreference*pref,
		SafetyImprovement:  math.Min(30, dog.ProtectionScore*0.3),
		MonthlyExercise:    60 + dog.ProtectionScore*0.5,
		DeterrentEffect:    deterrentEffect(dog.ProtectionScore),
	}
}

// safetyMatch rates how well the dog's protection level fits the
// neighborhood's need.
func safetyMatch(need catalog.ProtectionNeed, protection float64) float64 {
	switch need {
	case catalog.NeedVeryHigh:
		return math.Min(100, protection*1.2)
	case catalog.NeedHigh:
		return protection
	case catalog.NeedMedium:
		return 100 - math.Abs(protection-60)*0.5
	default: // Low: an overly protective dog is a slight mismatch.
		if protection > 40 {
			return 100 - (protection-40)*0.3
		}
		return 100
	}
}

func budgetMatch(budgetLimit, monthlyCost float64) float64 {
	switch {
	case monthlyCost <= budgetLimit:
		return 100
	case monthlyCost <= budgetLimit*1.2:
		return 80
	default:
		return math.Max(0, 100-(monthlyCost-budgetLimit)/budgetLimit*100)
	}
}

// preferenceMatch rates the dog's protection score against the user's
// acceptance band: inside is a perfect match, outside decays with twice the
// distance to the nearest band edge.
func preferenceMatch(preference catalog.ProtectionNeed, protection float64) float64 {
	band := preferenceBands[preference]
	lo, hi := band[0], band[1]

	if protection >= lo && protection <= hi {
		return 100
	}

	distance := math.Min(math.Abs(protection-lo), math.Abs(protection-hi))
	return math.Max(0, 100-distance*2)
}

func deterrentEffect(protection float64) string {
	switch {
	case protection >= 80:
		return "High"
	case protection >= 60:
		return "Medium"
	default:
		return "Low"
	}
}
