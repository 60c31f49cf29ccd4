package filtering

import (
	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

// StateCalifornia is the state filter value used by every geographic strategy.
const StateCalifornia = "CA"

// SFZipCodes is the allow-list of San Francisco postal codes used to scope
// organizations to the city proper.
var SFZipCodes = []string{
	"94102", "94103", "94104", "94105", "94107", "94108", "94109", "94110",
	"94111", "94112", "94114", "94115", "94116", "94117", "94118", "94121",
	"94122", "94123", "94124", "94127", "94131", "94132", "94133", "94134",
}

const (
	// maxFallbackOrgs caps the all-California organization fallback. This is
	// a performance bound, not a correctness bound.
	maxFallbackOrgs = 20
	// maxFallbackDogs caps the any-California-organization dog fallback.
	maxFallbackDogs = 20
)

// Step describes the result of executing one selection strategy.
type Step struct {
	Initial int
	Left    int
}

// OrgStrategy narrows the organization table to a geographic subset.
type OrgStrategy interface {
	Name() string
	Apply(orgs []dataset.OrganizationRow) ([]dataset.OrganizationRow, Step)
}

// DogStrategy selects dog rows given the full and the selected organization
// sets.
type DogStrategy interface {
	Name() string
	Apply(orgs, selected []dataset.OrganizationRow, dogs []dataset.AnimalRow) ([]dataset.AnimalRow, Step)
}

// SelectSanFrancisco runs the geographic strategy chains: strategies are
// tried in order until one yields a non-empty set. The returned organization
// set is the one shelter identities are resolved against, so fallback dogs
// may belong to organizations outside it.
func SelectSanFrancisco(orgs []dataset.OrganizationRow, dogs []dataset.AnimalRow, logger *zap.Logger) ([]dataset.OrganizationRow, []dataset.AnimalRow) {
	orgChain := []OrgStrategy{
		newSFZipOrgs(),
		newCaliforniaOrgs(maxFallbackOrgs),
	}

	var selected []dataset.OrganizationRow
	for _, strategy := range orgChain {
		result, step := strategy.Apply(orgs)
		logger.Info("organization selection strategy",
			zap.String("name", strategy.Name()),
			zap.Int("initial", step.Initial),
			zap.Int("left", step.Left),
		)
		if len(result) > 0 {
			selected = result
			break
		}
	}

	dogChain := []DogStrategy{
		newDogsOfSelected(),
		newCaliforniaDogs(maxFallbackDogs),
	}

	var kept []dataset.AnimalRow
	for _, strategy := range dogChain {
		result, step := strategy.Apply(orgs, selected, dogs)
		logger.Info("dog selection strategy",
			zap.String("name", strategy.Name()),
			zap.Int("initial", step.Initial),
			zap.Int("left", step.Left),
		)
		if len(result) > 0 {
			kept = result
			break
		}
	}

	return selected, kept
}

func orgIDs(orgs []dataset.OrganizationRow) map[string]struct{} {
	ids := make(map[string]struct{}, len(orgs))
	for _, org := range orgs {
		ids[org.OrganizationID] = struct{}{}
	}
	return ids
}
