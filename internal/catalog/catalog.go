// Package catalog builds the immutable in-memory dataset the recommendation
// engine works on: one metrics profile per San Francisco neighborhood and one
// attribute profile per adoptable dog. Both collections are derived once at
// startup and never mutated afterwards, so they are safe for concurrent
// reads without synchronization.
package catalog

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/dataset"
)

// Warning kinds emitted by the builders.
const (
	WarningNeighborhood = "neighborhood"
	WarningDog          = "dog"
)

// Warning records a source row that failed derivation and was dropped.
// Builders collect warnings instead of only logging them so callers can
// audit data loss.
type Warning struct {
	Kind   string `json:"kind"`
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// Catalog is the read-only dataset built once at startup.
type Catalog struct {
	Neighborhoods map[string]*NeighborhoodProfile
	Dogs          []*DogProfile
	Warnings      []Warning
}

// Build derives the catalog from the loaded source tables. Row-level
// failures are contained here: they surface as Warnings, never as an error.
func Build(tables *dataset.Tables, logger *zap.Logger) (*Catalog, error) {
	if tables == nil {
		return nil, errors.New("source tables are required")
	}

	neighborhoods, nWarnings := buildNeighborhoods(tables.Rental, tables.Crime, tables.Walkability, logger)
	dogs, dWarnings := buildDogs(tables.Animals, tables.Organizations, logger)

	catalog := &Catalog{
		Neighborhoods: neighborhoods,
		Dogs:          dogs,
		Warnings:      append(nWarnings, dWarnings...),
	}

	logger.Info("catalog built",
		zap.Int("neighborhoods", len(catalog.Neighborhoods)),
		zap.Int("dogs", len(catalog.Dogs)),
		zap.Int("warnings", len(catalog.Warnings)),
	)

	return catalog, nil
}

// NeighborhoodNames returns all neighborhood names sorted alphabetically.
func (c *Catalog) NeighborhoodNames() []string {
	names := make([]string, 0, len(c.Neighborhoods))
	for name := range c.Neighborhoods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
