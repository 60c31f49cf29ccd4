package cmd

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/ai"
	"github.com/Avanthi1990/sf-guardian/internal/ai/gemini"
	"github.com/Avanthi1990/sf-guardian/internal/catalog"
	"github.com/Avanthi1990/sf-guardian/internal/dataset"
	"github.com/Avanthi1990/sf-guardian/internal/secrets"
)

// Default file names match the published datasets.
const (
	defaultRentalFile        = "Cleaned_rental.csv"
	defaultCrimeFile         = "Cleaned_sfpd.csv"
	defaultWalkabilityFile   = "Walkability_with_Neighborhoods.csv"
	defaultAnimalsFile       = "petfinder_animals_20250624_235502.csv"
	defaultOrganizationsFile = "petfinder_organizations_20250624_235502.csv"
)

func dataSources(config *Config) dataset.Sources {
	src := dataset.Sources{
		RentalFile:        defaultRentalFile,
		CrimeFile:         defaultCrimeFile,
		WalkabilityFile:   defaultWalkabilityFile,
		AnimalsFile:       defaultAnimalsFile,
		OrganizationsFile: defaultOrganizationsFile,
	}

	if config == nil || config.Data == nil {
		return src
	}

	if config.Data.RentalFile != "" {
		src.RentalFile = config.Data.RentalFile
	}
	if config.Data.CrimeFile != "" {
		src.CrimeFile = config.Data.CrimeFile
	}
	if config.Data.WalkabilityFile != "" {
		src.WalkabilityFile = config.Data.WalkabilityFile
	}
	if config.Data.AnimalsFile != "" {
		src.AnimalsFile = config.Data.AnimalsFile
	}
	if config.Data.OrganizationsFile != "" {
		src.OrganizationsFile = config.Data.OrganizationsFile
	}

	return src
}

// loadCatalog loads the source tables and builds the catalog from them.
func loadCatalog(config *Config, logger *zap.Logger) (*catalog.Catalog, error) {
	tables, err := dataset.Load(dataSources(config), logger)
	if err != nil {
		return nil, fmt.Errorf("loading source data: %w", err)
	}

	cat, err := catalog.Build(tables, logger)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	logger.Info("catalog ready",
		zap.Int("neighborhoods", len(cat.Neighborhoods)),
		zap.Int("dogs", len(cat.Dogs)),
		zap.Int("warnings", len(cat.Warnings)),
	)

	return cat, nil
}

// newPitchWriter builds the optional adoption pitch writer. It returns nil
// without error when the AI section is disabled or absent.
func newPitchWriter(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.PitchWriter, error) {
	if cfg == nil || !cfg.Enabled {
		return nil, nil
	}

	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	if cfg.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load("gemini api key", cfg.Gemini.APIKeyFile)
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, logger)
	if err != nil {
		return nil, err
	}

	return gemini.NewPitcher(generator, logger, cfg.Gemini.MaxLogLength), nil
}

func parseSize(value string) (catalog.Size, error) {
	cleaned := strings.TrimSpace(value)
	if cleaned == "" || strings.EqualFold(cleaned, string(catalog.SizeAny)) {
		return catalog.SizeAny, nil
	}

	for _, size := range catalog.Sizes {
		if strings.EqualFold(cleaned, string(size)) {
			return size, nil
		}
	}

	return "", fmt.Errorf("unknown size %q (expected Any, Small, Medium, Large or Extra Large)", value)
}

func parseProtectionNeed(value string) (catalog.ProtectionNeed, error) {
	cleaned := strings.TrimSpace(value)
	for _, need := range catalog.ProtectionNeeds {
		if strings.EqualFold(cleaned, string(need)) {
			return need, nil
		}
	}

	return "", fmt.Errorf("unknown protection preference %q (expected Low, Medium, High or Very High)", value)
}
