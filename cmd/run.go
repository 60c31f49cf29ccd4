package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/ai"
	"github.com/Avanthi1990/sf-guardian/internal/catalog"
	"github.com/Avanthi1990/sf-guardian/internal/logger"
	"github.com/Avanthi1990/sf-guardian/internal/recommend"
)

const (
	PromptNewSearch       = "New search"
	PromptReportByShelter = "Report by shelter"
	PromptResultToFile    = "Dump recommendations to file"
	PromptAdoptionPitch   = "Write an adoption pitch for the top match"
	PromptExit            = "Exit"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive recommendation session",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main interactive loop of the cli.
func run() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting "+app, zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	cat, err := loadCatalog(config, logger)
	if err != nil {
		logger.Fatal("loading catalog", zap.Error(err))
	}

	pitchWriter, err := newPitchWriter(ctx, config.AI, logger)
	if err != nil {
		logger.Warn("adoption pitches unavailable", zap.Error(err))
	}

	recommender := recommend.New(cat, logger)

	for {
		result, err := askAndRecommend(cat, recommender)
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		printResult(result)

		if err := actionLoop(ctx, result, pitchWriter, logger); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// askAndRecommend walks the user through the three preference prompts and
// computes the recommendation for the chosen combination.
func askAndRecommend(cat *catalog.Catalog, recommender *recommend.Recommender) (*recommend.Result, error) {
	neighborhoodPrompt := promptui.Select{
		Label: "Choose your neighborhood",
		Items: cat.NeighborhoodNames(),
		Size:  15,
	}
	_, neighborhood, err := neighborhoodPrompt.Run()
	if err != nil {
		return nil, err
	}

	sizeItems := []string{string(catalog.SizeAny)}
	for _, size := range catalog.Sizes {
		sizeItems = append(sizeItems, string(size))
	}
	sizePrompt := promptui.Select{
		Label: "Preferred dog size",
		Items: sizeItems,
	}
	_, sizeChoice, err := sizePrompt.Run()
	if err != nil {
		return nil, err
	}
	size, err := parseSize(sizeChoice)
	if err != nil {
		return nil, err
	}

	protectionItems := make([]string, 0, len(catalog.ProtectionNeeds))
	for _, need := range catalog.ProtectionNeeds {
		protectionItems = append(protectionItems, string(need))
	}
	protectionPrompt := promptui.Select{
		Label: "How much protection do you want",
		Items: protectionItems,
	}
	_, protectionChoice, err := protectionPrompt.Run()
	if err != nil {
		return nil, err
	}
	protection, err := parseProtectionNeed(protectionChoice)
	if err != nil {
		return nil, err
	}

	return recommender.Recommend(neighborhood, size, protection)
}

func actionLoop(ctx context.Context, result *recommend.Result, pitchWriter ai.PitchWriter, logger *zap.Logger) error {
	items := []string{PromptNewSearch, PromptReportByShelter, PromptResultToFile}
	if pitchWriter != nil && result.Len() > 0 {
		items = append(items, PromptAdoptionPitch)
	}
	items = append(items, PromptExit)

	prompt := promptui.Select{
		Label: "What next?",
		Items: items,
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			return err
		}

		switch action {
		case PromptNewSearch:
			return nil
		case PromptExit:
			logger.Info("exiting", zap.String("reason", "got exit from prompt"))
			return errExit
		case PromptReportByShelter:
			pretty, _ := json.MarshalIndent(result.ReportByShelter(), "", "  ")
			fmt.Println(string(pretty))
		case PromptResultToFile:
			filename, err := result.DumpToTmpFile()
			if err != nil {
				return fmt.Errorf("dump results to file: %w", err)
			}
			logger.Info("dumped recommendations to file", zap.String("filename", filename))
		case PromptAdoptionPitch:
			if err := writePitch(ctx, result, pitchWriter, logger); err != nil {
				logger.Warn("writing adoption pitch", zap.Error(err))
			}
		default:
			return fmt.Errorf("invalid action: %s", action)
		}
	}
}

func writePitch(ctx context.Context, result *recommend.Result, pitchWriter ai.PitchWriter, logger *zap.Logger) error {
	if result.Len() == 0 {
		return errors.New("no dogs to pitch")
	}

	top := &result.Dogs[0]
	logger.Info("writing adoption pitch", zap.String("dog", top.Dog.Name))

	pitch, err := pitchWriter.WritePitch(ctx, result.Neighborhood, top)
	if err != nil {
		return err
	}

	if pitch.Headline != "" {
		fmt.Printf("\n%s\n\n", pitch.Headline)
	}
	fmt.Printf("%s\n\n", pitch.Body)
	return nil
}
