package filtering

import (
	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

type sfZipOrgs struct {
	zips map[string]struct{}
}

// newSFZipOrgs selects California organizations whose postal code is on the
// San Francisco allow-list.
func newSFZipOrgs() OrgStrategy {
	zips := make(map[string]struct{}, len(SFZipCodes))
	for _, zip := range SFZipCodes {
		zips[zip] = struct{}{}
	}
	return &sfZipOrgs{zips: zips}
}

func (s *sfZipOrgs) Name() string { return "sf_zip_orgs" }

func (s *sfZipOrgs) Apply(orgs []dataset.OrganizationRow) ([]dataset.OrganizationRow, Step) {
	selected := make([]dataset.OrganizationRow, 0, len(orgs))
	for _, org := range orgs {
		if org.State != StateCalifornia {
			continue
		}
		if _, ok := s.zips[org.Postcode]; !ok {
			continue
		}
		selected = append(selected, org)
	}

	return selected, Step{Initial: len(orgs), Left: len(selected)}
}

type californiaOrgs struct {
	cap int
}

// newCaliforniaOrgs selects all California organizations, capped.
func newCaliforniaOrgs(cap int) OrgStrategy {
	return &californiaOrgs{cap: cap}
}

func (s *californiaOrgs) Name() string { return "california_orgs" }

func (s *californiaOrgs) Apply(orgs []dataset.OrganizationRow) ([]dataset.OrganizationRow, Step) {
	selected := make([]dataset.OrganizationRow, 0, s.cap)
	for _, org := range orgs {
		if org.State != StateCalifornia {
			continue
		}
		selected = append(selected, org)
		if len(selected) == s.cap {
			break
		}
	}

	return selected, Step{Initial: len(orgs), Left: len(selected)}
}

type dogsOfSelected struct{}

// newDogsOfSelected keeps dogs belonging to the selected organization set.
func newDogsOfSelected() DogStrategy {
	return &dogsOfSelected{}
}

func (s *dogsOfSelected) Name() string { return "dogs_of_selected_orgs" }

func (s *dogsOfSelected) Apply(_, selected []dataset.OrganizationRow, dogs []dataset.AnimalRow) ([]dataset.AnimalRow, Step) {
	ids := orgIDs(selected)
	kept := make([]dataset.AnimalRow, 0, len(dogs))
	for _, dog := range dogs {
		if _, ok := ids[dog.OrganizationID]; ok {
			kept = append(kept, dog)
		}
	}

	return kept, Step{Initial: len(dogs), Left: len(kept)}
}

type californiaDogs struct {
	cap int
}

// newCaliforniaDogs keeps the first dogs belonging to any California
// organization, capped. Last resort when no dog matched the selected set.
func newCaliforniaDogs(cap int) DogStrategy {
	return &californiaDogs{cap: cap}
}

func (s *californiaDogs) Name() string { return "california_dogs" }

func (s *californiaDogs) Apply(orgs, _ []dataset.OrganizationRow, dogs []dataset.AnimalRow) ([]dataset.AnimalRow, Step) {
	california := make([]dataset.OrganizationRow, 0, len(orgs))
	for _, org := range orgs {
		if org.State == StateCalifornia {
			california = append(california, org)
		}
	}

	ids := orgIDs(california)
	kept := make([]dataset.AnimalRow, 0, s.cap)
	for _, dog := range dogs {
		if _, ok := ids[dog.OrganizationID]; !ok {
			continue
		}
		kept = append(kept, dog)
		if len(kept) == s.cap {
			break
		}
	}

	return kept, Step{Initial: len(dogs), Left: len(kept)}
}
