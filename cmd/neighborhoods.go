package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/logger"
)

var neighborhoodsCmd = &cobra.Command{
	Use:   "neighborhoods",
	Short: "List known neighborhoods with their derived profiles",
	Run: func(_ *cobra.Command, _ []string) {
		runNeighborhoods()
	},
}

func init() {
	rootCmd.AddCommand(neighborhoodsCmd)
}

func runNeighborhoods() {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	cat, err := loadCatalog(config, logger)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	fmt.Printf("%-30s %8s %12s %10s %10s  %s\n", "NEIGHBORHOOD", "SAFETY", "WALKABILITY", "AVG RENT", "BUDGET", "PROTECTION NEED")
	for _, name := range cat.NeighborhoodNames() {
		n := cat.Neighborhoods[name]
		fmt.Printf("%-30s %8.1f %12.1f %10.0f %10.0f  %s\n",
			n.Name, n.SafetyScore, n.WalkabilityScore, n.AvgRent, n.BudgetLimit, n.ProtectionNeed)
	}
}
