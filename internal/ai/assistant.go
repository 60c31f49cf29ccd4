package ai

import (
	"context"

	"github.com/Avanthi1990/sf-guardian/internal/catalog"
	"github.com/Avanthi1990/sf-guardian/internal/recommend"
)

// Pitch is a short adoption pitch for one recommended dog, written for the
// resident of a specific neighborhood.
type Pitch struct {
	Headline string
	Body     string
	Raw      string
}

// PitchWriter turns a scored recommendation into an adoption pitch. It is a
// presentation-layer helper: implementations never influence scoring or
// ranking.
type PitchWriter interface {
	WritePitch(ctx context.Context, neighborhood *catalog.NeighborhoodProfile, dog *recommend.ScoredDog) (*Pitch, error)
}
