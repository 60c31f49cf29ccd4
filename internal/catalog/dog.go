package catalog

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
	"github.com/Avanthi1990/sf-guardian/internal/filtering"
	"github.com/Avanthi1990/sf-guardian/internal/util"
)

// Size is a dog size tier. The values match the listing source exactly.
type Size string

const (
	// SizeAny is the wildcard user preference, never a catalog value.
	SizeAny        Size = "Any"
	SizeSmall      Size = "Small"
	SizeMedium     Size = "Medium"
	SizeLarge      Size = "Large"
	SizeExtraLarge Size = "Extra Large"
)

// Sizes lists the catalog size tiers, smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}

// Age is a dog age bracket as used by the listing source.
type Age string

const (
	AgeBaby   Age = "Baby"
	AgeYoung  Age = "Young"
	AgeAdult  Age = "Adult"
	AgeSenior Age = "Senior"
)

const (
	speciesDog = "Dog"

	defaultBreed       = "Mixed Breed"
	defaultDescription = "Loving companion looking for a home"
	defaultAdoptionURL = "https://petfinder.com"

	maxNameLen        = 30
	maxBreedLen       = 30
	maxShelterNameLen = 40
	maxDescriptionLen = 150

	specialNeedsMarkup = 1.4
)

// protectiveBreeds are breed keywords that add to the protection score when
// the breed string contains any of them, case-insensitively.
var protectiveBreeds = []string{
	"german shepherd", "pit bull", "rottweiler", "mastiff",
	"doberman", "boxer", "bulldog", "belgian", "akita",
}

var sizeProtectionBonus = map[Size]float64{
	SizeLarge:      30,
	SizeMedium:     20,
	SizeExtraLarge: 35,
	SizeSmall:      5,
}

var sizeMonthlyCost = map[Size]float64{
	SizeSmall:      70,
	SizeMedium:     95,
	SizeLarge:      125,
	SizeExtraLarge: 155,
}

const defaultMonthlyCost = 95.0

// placeholderShelter is used when the organization join misses; a dog always
// carries a resolved shelter identity.
var placeholderShelter = Shelter{
	Name:  "Local SF Shelter",
	Phone: "(415) 555-0000",
	Email: "info@shelter.org",
}

// Shelter identifies the organization holding a dog.
type Shelter struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// DogProfile holds one adoptable dog with its derived suitability attributes.
// All scores are computed once at ingestion and never change afterwards.
type DogProfile struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Size  Size   `json:"size"`
	Age   Age    `json:"age"`

	ProtectionScore float64 `json:"protection_score"`
	FamilyScore     float64 `json:"family_score"`
	TrainingScore   float64 `json:"training_score"`
	MonthlyCost     float64 `json:"monthly_cost"`

	GoodWithChildren bool `json:"good_with_children"`
	HouseTrained     bool `json:"house_trained"`

	Shelter     Shelter `json:"shelter"`
	Description string  `json:"description"`
	AdoptionURL string  `json:"adoption_url"`
	PhotoURL    string  `json:"photo_url"`
}

// buildDogs derives the dog catalog: species filter, geographic selection,
// then per-row attribute derivation. A row that cannot be processed is
// dropped with a warning; it never aborts the batch.
func buildDogs(animals []dataset.AnimalRow, orgs []dataset.OrganizationRow, logger *zap.Logger) ([]*DogProfile, []Warning) {
	dogRows := make([]dataset.AnimalRow, 0, len(animals))
	for _, row := range animals {
		if row.Type == speciesDog {
			dogRows = append(dogRows, row)
		}
	}

	selectedOrgs, selectedDogs := filtering.SelectSanFrancisco(orgs, dogRows, logger)

	logger.Info("selected dogs in the SF area",
		zap.Int("dogs", len(selectedDogs)),
		zap.Int("organizations", len(selectedOrgs)),
	)

	orgIndex := make(map[string]dataset.OrganizationRow, len(selectedOrgs))
	for _, org := range selectedOrgs {
		orgIndex[org.OrganizationID] = org
	}

	dogs := make([]*DogProfile, 0, len(selectedDogs))
	var warnings []Warning
	for _, row := range selectedDogs {
		dog, err := buildDog(row, orgIndex)
		if err != nil {
			logger.Warn("could not process dog",
				zap.String("animal_id", row.AnimalID),
				zap.Error(err),
			)
			warnings = append(warnings, Warning{Kind: WarningDog, Key: row.AnimalID, Reason: err.Error()})
			continue
		}
		dogs = append(dogs, dog)
	}

	return dogs, warnings
}

func buildDog(row dataset.AnimalRow, orgs map[string]dataset.OrganizationRow) (*DogProfile, error) {
	if strings.TrimSpace(row.AnimalID) == "" && strings.TrimSpace(row.Name) == "" {
		return nil, fmt.Errorf("row has neither animal_id nor name")
	}

	name := strings.TrimSpace(row.Name)
	if name == "" {
		name = fmt.Sprintf("Dog %s", row.AnimalID)
	}
	name = util.Truncate(name, maxNameLen)

	breed := strings.TrimSpace(row.PrimaryBreed)
	if breed == "" {
		breed = defaultBreed
	}
	breed = util.Truncate(breed, maxBreedLen)

	size := Size(strings.TrimSpace(row.Size))
	if size == "" {
		size = SizeMedium
	}

	age := Age(strings.TrimSpace(row.Age))
	if age == "" {
		age = AgeAdult
	}

	goodWithChildren := dataset.ParseLooseBool(row.GoodWithChildren)
	houseTrained := dataset.ParseLooseBool(row.HouseTrained)
	shotsCurrent := dataset.ParseLooseBool(row.ShotsCurrent)
	spayedNeutered := dataset.ParseLooseBool(row.SpayedNeutered)
	specialNeeds := dataset.ParseLooseBool(row.SpecialNeeds)

	description := strings.TrimSpace(row.Description)
	if description == "" {
		description = defaultDescription
	}
	description = util.Truncate(description, maxDescriptionLen)

	adoptionURL := strings.TrimSpace(row.URL)
	if adoptionURL == "" {
		adoptionURL = defaultAdoptionURL
	}

	return &DogProfile{
		Name:  name,
		Breed: breed,
		Size:  size,
		Age:   age,

		ProtectionScore: protectionScore(size, breed, age),
		FamilyScore:     familyScore(goodWithChildren, houseTrained, shotsCurrent, spayedNeutered, specialNeeds),
		TrainingScore:   trainingScore(houseTrained, age, specialNeeds),
		MonthlyCost:     monthlyCost(size, specialNeeds),

		GoodWithChildren: goodWithChildren,
		HouseTrained:     houseTrained,

		Shelter:     resolveShelter(row.OrganizationID, orgs),
		Description: description,
		AdoptionURL: adoptionURL,
		PhotoURL:    strings.TrimSpace(row.PhotoMedium),
	}, nil
}

// protectionScore rates how protective a dog presence is, from its size tier,
// breed keywords and maturity.
func protectionScore(size Size, breed string, age Age) float64 {
	score := 40.0

	score += sizeProtectionBonus[size]

	breedLower := strings.ToLower(breed)
	for _, keyword := range protectiveBreeds {
		if strings.Contains(breedLower, keyword) {
			score += 25
			break
		}
	}

	switch age {
	case AgeAdult, AgeSenior:
		// Mature dogs are usually steadier guardians.
		score += 10
	case AgeYoung:
		score += 5
	}

	return math.Min(100, score)
}

func familyScore(goodWithChildren, houseTrained, shotsCurrent, spayedNeutered, specialNeeds bool) float64 {
	score := 60.0

	if goodWithChildren {
		score += 30
	}
	if houseTrained {
		score += 15
	}
	if shotsCurrent {
		score += 10
	}
	if spayedNeutered {
		score += 10
	}
	if !specialNeeds {
		score += 5
	}

	return math.Min(100, score)
}

func trainingScore(houseTrained bool, age Age, specialNeeds bool) float64 {
	score := 50.0

	if houseTrained {
		score += 30
	}

	switch age {
	case AgeYoung:
		score += 20
	case AgeAdult:
		score += 15
	case AgeBaby:
		score += 10
	}

	if !specialNeeds {
		score += 15
	}

	return math.Min(100, score)
}

func monthlyCost(size Size, specialNeeds bool) float64 {
	cost, ok := sizeMonthlyCost[size]
	if !ok {
		cost = defaultMonthlyCost
	}

	if specialNeeds {
		cost *= specialNeedsMarkup
	}

	return math.Round(cost)
}

func resolveShelter(orgID string, orgs map[string]dataset.OrganizationRow) Shelter {
	org, ok := orgs[orgID]
	if !ok {
		return placeholderShelter
	}

	shelter := Shelter{
		Name:  util.Truncate(org.Name, maxShelterNameLen),
		Phone: strings.TrimSpace(org.Phone),
		Email: strings.TrimSpace(org.Email),
	}
	if shelter.Name == "" {
		shelter.Name = "Local Shelter"
	}
	if shelter.Phone == "" {
		shelter.Phone = placeholderShelter.Phone
	}
	if shelter.Email == "" {
		shelter.Email = placeholderShelter.Email
	}

	return shelter
}
