// Package recommend implements the deterministic matching pipeline between a
// neighborhood profile and the dog catalog: per-dog sub-scores, a weighted
// compatibility score, ranking, and the adoption-impact summary.
//
// Every computation here is a pure function of its inputs. Identical requests
// against an unchanged catalog produce identical output, and the catalog is
// only ever read, so a Recommender is safe for concurrent use.
package recommend

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/catalog"
)

// ErrNeighborhoodNotFound is returned when the requested neighborhood has no
// profile in the catalog. It is an expected outcome for user-supplied names,
// not a failure of the engine.
var ErrNeighborhoodNotFound = errors.New("neighborhood not found in catalog")

// topRecommendations is the shortlist length. Fewer dogs may be returned
// when the filtered set is smaller.
const topRecommendations = 5

// ScoredDog pairs a read-only catalog entry with the scores of one request.
// The catalog entry itself is never written to.
type ScoredDog struct {
	Dog *catalog.DogProfile `json:"dog"`

	CompatibilityScore float64 `json:"compatibility_score"`
	SafetyImprovement  float64 `json:"safety_improvement"`
	MonthlyExercise    float64 `json:"monthly_exercise"`
	DeterrentEffect    string  `json:"deterrent_effect"`
}

// Result is the full answer to one recommendation request.
type Result struct {
	Neighborhood *catalog.NeighborhoodProfile `json:"neighborhood"`
	Dogs         []ScoredDog                  `json:"dogs"`
	Impact       Impact                       `json:"impact"`
}

// Recommender ranks catalog dogs for a neighborhood and user preferences.
type Recommender struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

func New(c *catalog.Catalog, logger *zap.Logger) *Recommender {
	return &Recommender{catalog: c, logger: logger}
}

// Recommend scores every dog matching the size preference against the named
// neighborhood, ranks them by compatibility and returns the shortlist with
// its impact summary. An empty shortlist is a valid result, not an error.
func (r *Recommender) Recommend(neighborhood string, size catalog.Size, protection catalog.ProtectionNeed) (*Result, error) {
	profile, ok := r.catalog.Neighborhoods[neighborhood]
	if !ok {
		return nil, fmt.Errorf("%q: %w", neighborhood, ErrNeighborhoodNotFound)
	}

	if _, ok := preferenceBands[protection]; !ok {
		return nil, fmt.Errorf("unknown protection preference %q", protection)
	}

	scored := make([]ScoredDog, 0, len(r.catalog.Dogs))
	for _, dog := range r.catalog.Dogs {
		if size != catalog.SizeAny && dog.Size != size {
			continue
		}
		scored = append(scored, scoreDog(profile, dog, protection))
	}

	// Stable sort, single key: ties keep encounter order on purpose.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].CompatibilityScore > scored[j].CompatibilityScore
	})

	if len(scored) > topRecommendations {
		scored = scored[:topRecommendations]
	}

	r.logger.Debug("recommendation computed",
		zap.String("neighborhood", neighborhood),
		zap.String("size_preference", string(size)),
		zap.String("protection_preference", string(protection)),
		zap.Int("dogs", len(scored)),
	)

	return &Result{
		Neighborhood: profile,
		Dogs:         scored,
		Impact:       summarizeImpact(profile, scored),
	}, nil
}
