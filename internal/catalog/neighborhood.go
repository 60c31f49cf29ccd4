package catalog

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

// ProtectionNeed is how much a resident of a neighborhood might want a
// protective dog. It doubles as the user's protection preference, which uses
// the same four levels.
type ProtectionNeed string

const (
	NeedLow      ProtectionNeed = "Low"
	NeedMedium   ProtectionNeed = "Medium"
	NeedHigh     ProtectionNeed = "High"
	NeedVeryHigh ProtectionNeed = "Very High"
)

// ProtectionNeeds lists all levels in ascending order.
var ProtectionNeeds = []ProtectionNeed{NeedLow, NeedMedium, NeedHigh, NeedVeryHigh}

const (
	// maxCrimeCount normalizes incident counts into a safety score. Fixed
	// upper bound, no dynamic rescaling.
	maxCrimeCount = 200.0
	// walkIndexScale maps the national walkability indicator onto 0-100.
	walkIndexScale = 20.0
	// fallbackWalkIndex stands in when a neighborhood has no walkability rows.
	fallbackWalkIndex = 10.0
	// fallbackRent stands in when a neighborhood has no rent rows.
	fallbackRent = 3000.0
	// budgetShare of the average rent is assumed available for a dog.
	budgetShare = 0.05
	// minBudget is the monthly dog budget floor in dollars.
	minBudget = 50.0
)

// NeighborhoodProfile holds the derived metrics of one neighborhood.
type NeighborhoodProfile struct {
	Name             string         `json:"name"`
	SafetyScore      float64        `json:"safety_score"`
	WalkabilityScore float64        `json:"walkability_score"`
	AvgRent          float64        `json:"avg_rent"`
	CrimeCount       int            `json:"crime_count"`
	ProtectionNeed   ProtectionNeed `json:"protection_need"`
	BudgetLimit      float64        `json:"budget_limit"`
	WalkIndex        float64        `json:"walk_index"`
}

// buildNeighborhoods derives one profile per distinct neighborhood found in
// the rental table. A neighborhood with unusable data is dropped with a
// warning; it never aborts the batch.
func buildNeighborhoods(rental []dataset.RentalRow, crime []dataset.CrimeRow, walk []dataset.WalkabilityRow, logger *zap.Logger) (map[string]*NeighborhoodProfile, []Warning) {
	crimeCounts := make(map[string]int, len(crime))
	for _, row := range crime {
		crimeCounts[row.Neighborhood]++
	}

	walkSums := make(map[string]*meanAcc)
	for _, row := range walk {
		acc := walkSums[row.Neighborhood]
		if acc == nil {
			acc = &meanAcc{}
			walkSums[row.Neighborhood] = acc
		}
		acc.add(row.WalkIndex)
	}

	rentSums := make(map[string]*meanAcc)
	var names []string
	for _, row := range rental {
		if row.Neighborhood == "" {
			continue
		}
		acc := rentSums[row.Neighborhood]
		if acc == nil {
			acc = &meanAcc{}
			rentSums[row.Neighborhood] = acc
			names = append(names, row.Neighborhood)
		}
		acc.add(row.RentAvg)
	}

	profiles := make(map[string]*NeighborhoodProfile, len(names))
	var warnings []Warning
	for _, name := range names {
		profile, err := buildNeighborhood(name, crimeCounts[name], walkSums[name], rentSums[name])
		if err != nil {
			logger.Warn("could not process neighborhood",
				zap.String("neighborhood", name),
				zap.Error(err),
			)
			warnings = append(warnings, Warning{Kind: WarningNeighborhood, Key: name, Reason: err.Error()})
			continue
		}
		profiles[name] = profile
	}

	return profiles, warnings
}

func buildNeighborhood(name string, crimeCount int, walk, rent *meanAcc) (*NeighborhoodProfile, error) {
	safety := clamp(0, 100, 100-float64(crimeCount)/maxCrimeCount*100)

	walkIndex := fallbackWalkIndex
	if walk != nil && walk.count > 0 {
		walkIndex = walk.mean()
	}
	walkability := clamp(0, 100, walkIndex/walkIndexScale*100)

	avgRent := fallbackRent
	if rent != nil && rent.count > 0 {
		avgRent = rent.mean()
	}
	if math.IsNaN(avgRent) || math.IsInf(avgRent, 0) || avgRent < 0 {
		return nil, fmt.Errorf("unusable average rent %v", avgRent)
	}
	if math.IsNaN(walkIndex) || math.IsInf(walkIndex, 0) {
		return nil, fmt.Errorf("unusable walk index %v", walkIndex)
	}

	budget := math.Max(minBudget, avgRent*budgetShare)

	return &NeighborhoodProfile{
		Name:             name,
		SafetyScore:      round1(safety),
		WalkabilityScore: round1(walkability),
		AvgRent:          math.Round(avgRent),
		CrimeCount:       crimeCount,
		// Derived from the unrounded safety score: strict < boundaries.
		ProtectionNeed: protectionNeedFor(safety),
		BudgetLimit:    math.Round(budget),
		WalkIndex:      round1(walkIndex),
	}, nil
}

func protectionNeedFor(safety float64) ProtectionNeed {
	switch {
	case safety < 40:
		return NeedVeryHigh
	case safety < 60:
		return NeedHigh
	case safety < 80:
		return NeedMedium
	default:
		return NeedLow
	}
}

type meanAcc struct {
	sum   float64
	count int
}

func (a *meanAcc) add(v float64) {
	a.sum += v
	a.count++
}

func (a *meanAcc) mean() float64 {
	return a.sum / float64(a.count)
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
