package filtering

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

func org(id, state, postcode string) dataset.OrganizationRow {
	return dataset.OrganizationRow{OrganizationID: id, State: state, Postcode: postcode}
}

func dog(id, orgID string) dataset.AnimalRow {
	return dataset.AnimalRow{AnimalID: id, Type: "Dog", OrganizationID: orgID}
}

func TestSelectPrefersSFZipOrganizations(t *testing.T) {
	t.Parallel()

	orgs := []dataset.OrganizationRow{
		org("sf1", "CA", "94103"),
		org("la1", "CA", "90001"),
		org("ny1", "NY", "10001"),
	}
	dogs := []dataset.AnimalRow{
		dog("a1", "sf1"),
		dog("a2", "la1"),
	}

	selOrgs, selDogs := SelectSanFrancisco(orgs, dogs, zap.NewNop())

	if len(selOrgs) != 1 || selOrgs[0].OrganizationID != "sf1" {
		t.Fatalf("expected only the SF organization, got %+v", selOrgs)
	}
	if len(selDogs) != 1 || selDogs[0].AnimalID != "a1" {
		t.Fatalf("expected only the SF dog, got %+v", selDogs)
	}
}

func TestSelectFallsBackToCappedCalifornia(t *testing.T) {
	t.Parallel()

	orgs := make([]dataset.OrganizationRow, 0, 25)
	for i := 0; i < 25; i++ {
		orgs = append(orgs, org(fmt.Sprintf("ca%d", i), "CA", "90001"))
	}
	dogs := []dataset.AnimalRow{dog("a1", "ca3")}

	selOrgs, selDogs := SelectSanFrancisco(orgs, dogs, zap.NewNop())

	if len(selOrgs) != 20 {
		t.Fatalf("expected the fallback to cap at 20 organizations, got %d", len(selOrgs))
	}
	if len(selDogs) != 1 || selDogs[0].OrganizationID != "ca3" {
		t.Fatalf("expected the dog of a fallback organization, got %+v", selDogs)
	}
}

func TestSelectLastResortTakesAnyCaliforniaDogs(t *testing.T) {
	t.Parallel()

	// SF organizations exist but none of them has dogs; the dog stage must
	// fall back to any California organization, capped at 20.
	orgs := []dataset.OrganizationRow{
		org("sf1", "CA", "94110"),
		org("la1", "CA", "90001"),
	}
	dogs := make([]dataset.AnimalRow, 0, 25)
	for i := 0; i < 25; i++ {
		dogs = append(dogs, dog(fmt.Sprintf("a%d", i), "la1"))
	}

	selOrgs, selDogs := SelectSanFrancisco(orgs, dogs, zap.NewNop())

	if len(selOrgs) != 1 || selOrgs[0].OrganizationID != "sf1" {
		t.Fatalf("expected the SF organization set to stand, got %+v", selOrgs)
	}
	if len(selDogs) != 20 {
		t.Fatalf("expected the last-resort cap of 20 dogs, got %d", len(selDogs))
	}
	if selDogs[0].AnimalID != "a0" {
		t.Fatalf("expected encounter order to be kept, got %+v", selDogs[0])
	}
}

func TestSelectNothingOutsideCalifornia(t *testing.T) {
	t.Parallel()

	orgs := []dataset.OrganizationRow{org("ny1", "NY", "10001")}
	dogs := []dataset.AnimalRow{dog("a1", "ny1")}

	selOrgs, selDogs := SelectSanFrancisco(orgs, dogs, zap.NewNop())

	if len(selOrgs) != 0 {
		t.Fatalf("expected no organizations, got %+v", selOrgs)
	}
	if len(selDogs) != 0 {
		t.Fatalf("expected no dogs, got %+v", selDogs)
	}
}
