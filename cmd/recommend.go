package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/logger"
	"github.com/Avanthi1990/sf-guardian/internal/recommend"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print dog recommendations for one neighborhood",
	Run: func(cmd *cobra.Command, _ []string) {
		runRecommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("neighborhood", "n", "", "neighborhood name, e.g. Mission")
	recommendCmd.Flags().StringP("size", "s", "Any", "dog size preference: Any, Small, Medium, Large, Extra Large")
	recommendCmd.Flags().StringP("protection", "p", "Medium", "protection preference: Low, Medium, High, Very High")
	recommendCmd.Flags().StringP("output", "o", "text", "output format: text or json")

	recommendCmd.MarkFlagRequired("neighborhood")
}

func runRecommend(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	size, err := parseSize(cmd.Flag("size").Value.String())
	if err != nil {
		logger.Fatal("parsing size flag", zap.Error(err))
	}

	protection, err := parseProtectionNeed(cmd.Flag("protection").Value.String())
	if err != nil {
		logger.Fatal("parsing protection flag", zap.Error(err))
	}

	cat, err := loadCatalog(config, logger)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	neighborhood := cmd.Flag("neighborhood").Value.String()

	result, err := recommend.New(cat, logger).Recommend(neighborhood, size, protection)
	if err != nil {
		if errors.Is(err, recommend.ErrNeighborhoodNotFound) {
			logger.Fatal("neighborhood not found",
				zap.String("neighborhood", neighborhood),
				zap.String("hint", "run '"+app+" neighborhoods' to list known neighborhoods"),
			)
		}
		logger.Fatal("computing recommendations", zap.Error(err))
	}

	if cmd.Flag("output").Value.String() == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			logger.Fatal("encoding result", zap.Error(err))
		}
		return
	}

	printResult(result)
}

func printResult(result *recommend.Result) {
	n := result.Neighborhood

	fmt.Printf("Neighborhood: %s\n", n.Name)
	fmt.Printf("  safety %.1f (%s protection need), walkability %.1f, avg rent $%.0f, dog budget $%.0f/mo\n\n",
		n.SafetyScore, n.ProtectionNeed, n.WalkabilityScore, n.AvgRent, n.BudgetLimit)

	if len(result.Dogs) == 0 {
		fmt.Println("No matching dogs found for these preferences.")
		return
	}

	for i, scored := range result.Dogs {
		dog := scored.Dog
		fmt.Printf("%d. %s (%s, %s, %s) - compatibility %.1f\n",
			i+1, dog.Name, dog.Breed, dog.Size, dog.Age, scored.CompatibilityScore)
		fmt.Printf("   $%.0f/mo, deterrent %s, shelter: %s (%s, %s)\n",
			dog.MonthlyCost, scored.DeterrentEffect, dog.Shelter.Name, dog.Shelter.Phone, dog.Shelter.Email)
		fmt.Printf("   %s\n", dog.Description)
		fmt.Printf("   %s\n\n", dog.AdoptionURL)
	}

	impact := result.Impact
	fmt.Println("Adoption impact:")
	fmt.Printf("  safety %.1f -> %.1f (+%.1f)\n", impact.CurrentSafetyScore, impact.NewSafetyScore, impact.SafetyImprovement)
	fmt.Printf("  dogs saved: %d\n", impact.DogsSaved)
	fmt.Printf("  monthly walking: %.1f hours\n", impact.MonthlyWalkingHours)
	fmt.Printf("  deterrent effect: %s, community connections: %s\n", impact.DeterrentEffect, impact.CommunityConnections)
}
