package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/Avanthi1990/sf-guardian/internal/ai"
	"github.com/Avanthi1990/sf-guardian/internal/catalog"
	"github.com/Avanthi1990/sf-guardian/internal/logger"
	"github.com/Avanthi1990/sf-guardian/internal/recommend"
	"github.com/Avanthi1990/sf-guardian/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Pitcher writes adoption pitches with Gemini. It implements ai.PitchWriter.
type Pitcher struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewPitcher(generator contentGenerator, log *zap.Logger, maxLogLength int) *Pitcher {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Pitcher{
		generator: generator,
		logger:    logger.WithAIFields(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (p *Pitcher) WritePitch(ctx context.Context, n *catalog.NeighborhoodProfile, dog *recommend.ScoredDog) (*ai.Pitch, error) {
	if n == nil {
		return nil, fmt.Errorf("neighborhood profile is required")
	}
	if dog == nil || dog.Dog == nil {
		return nil, fmt.Errorf("scored dog is required")
	}

	neighborhoodJSON, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal neighborhood payload: %w", err)
	}

	dogJSON, err := json.MarshalIndent(dog, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dog payload: %w", err)
	}

	prompt := buildPrompt(string(neighborhoodJSON), string(dogJSON))

	p.logger.Debug("gemini pitch request",
		zap.String("neighborhood", n.Name),
		zap.String("dog", dog.Dog.Name),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.Truncate(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini pitch response",
		zap.String("neighborhood", n.Name),
		zap.String("dog", dog.Dog.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.Truncate(raw, p.maxLogLen)),
	)

	return parsePitch(raw), nil
}

func buildPrompt(neighborhoodJSON, dogJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Neighborhood:\n{{NEIGHBORHOOD_JSON}}\n\nDog:\n{{DOG_JSON}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{NEIGHBORHOOD_JSON}}", neighborhoodJSON)
	return strings.ReplaceAll(prompt, "{{DOG_JSON}}", dogJSON)
}

// parsePitch accepts either the requested JSON shape or plain prose. A model
// that ignores the format instruction still yields a usable pitch.
func parsePitch(raw string) *ai.Pitch {
	cleaned := extractJSON(strings.TrimSpace(raw))

	var data struct {
		Headline string `json:"headline"`
		Pitch    string `json:"pitch"`
	}
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil || strings.TrimSpace(data.Pitch) == "" {
		return &ai.Pitch{Body: strings.TrimSpace(raw), Raw: raw}
	}

	return &ai.Pitch{
		Headline: strings.TrimSpace(data.Headline),
		Body:     strings.TrimSpace(data.Pitch),
		Raw:      raw,
	}
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
