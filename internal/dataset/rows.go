package dataset

// Row structs mirror the source CSV column names exactly. Boolean-ish animal
// columns stay raw strings here; ParseLooseBool coerces them at the catalog
// boundary so the truthy-string rules live in one place.

type RentalRow struct {
	Neighborhood string  `mapstructure:"analysis_neighborhood"`
	RentAvg      float64 `mapstructure:"rent_avg"`
}

type CrimeRow struct {
	Neighborhood string `mapstructure:"Analysis Neighborhood"`
}

type WalkabilityRow struct {
	Neighborhood string  `mapstructure:"neighborhood_name"`
	WalkIndex    float64 `mapstructure:"NatWalkInd"`
}

type AnimalRow struct {
	AnimalID         string `mapstructure:"animal_id"`
	Type             string `mapstructure:"type"`
	Name             string `mapstructure:"name"`
	PrimaryBreed     string `mapstructure:"primary_breed"`
	Size             string `mapstructure:"size"`
	Age              string `mapstructure:"age"`
	OrganizationID   string `mapstructure:"organization_id"`
	GoodWithChildren string `mapstructure:"good_with_children"`
	HouseTrained     string `mapstructure:"house_trained"`
	ShotsCurrent     string `mapstructure:"shots_current"`
	SpayedNeutered   string `mapstructure:"spayed_neutered"`
	SpecialNeeds     string `mapstructure:"special_needs"`
	Description      string `mapstructure:"description"`
	URL              string `mapstructure:"url"`
	PhotoMedium      string `mapstructure:"photo_medium"`
}

type OrganizationRow struct {
	OrganizationID string `mapstructure:"organization_id"`
	Name           string `mapstructure:"name"`
	Phone          string `mapstructure:"phone"`
	Email          string `mapstructure:"email"`
	State          string `mapstructure:"address_state"`
	Postcode       string `mapstructure:"address_postcode"`
}
