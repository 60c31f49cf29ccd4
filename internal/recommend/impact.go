package recommend

import (
	"math"

	"github.com/Avanthi1990/sf-guardian/internal/catalog"
)

// Impact translates the top match into neighborhood-level figures. A zero
// Impact means there was nothing to summarize; callers render it as "no
// impact to show", not as an error.
type Impact struct {
	CurrentSafetyScore   float64 `json:"current_safety_score"`
	NewSafetyScore       float64 `json:"new_safety_score"`
	SafetyImprovement    float64 `json:"safety_improvement"`
	DogsSaved            int     `json:"dogs_saved"`
	MonthlyWalkingHours  float64 `json:"monthly_walking_hours"`
	DeterrentEffect      string  `json:"deterrent_effect"`
	CommunityConnections string  `json:"community_connections"`
}

// summarizeImpact builds the impact record from the top-ranked dog. DogsSaved
// is scoped to this request's shortlist, not a global statistic.
func summarizeImpact(n *catalog.NeighborhoodProfile, dogs []ScoredDog) Impact {
	if len(dogs) == 0 {
		return Impact{}
	}

	top := dogs[0]

	connections := "Medium"
	if top.MonthlyExercise > 75 {
		connections = "High"
	}

	return Impact{
		CurrentSafetyScore:   n.SafetyScore,
		NewSafetyScore:       math.Min(100, n.SafetyScore+top.SafetyImprovement),
		SafetyImprovement:    top.SafetyImprovement,
		DogsSaved:            len(dogs),
		MonthlyWalkingHours:  top.MonthlyExercise * 30 / 60,
		DeterrentEffect:      top.DeterrentEffect,
		CommunityConnections: connections,
	}
}
