package service

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
)

// CopyGenerator is the external text-generation collaborator.
type CopyGenerator interface {
	Generate(ctx context.Context, prompt, tone string) (string, error)
}

// CannedGenerator returns fixed fundraising copy per tone. It keeps the
// endpoint functional without a model behind it.
type CannedGenerator struct{}

func (CannedGenerator) Generate(_ context.Context, prompt, tone string) (string, error) {
	templates := map[string]string{
		"inspirant": "Ensemble, nous pouvons changer des vies. %s Chaque don compte, chaque geste rapproche notre communauté de son objectif.",
		"urgent":    "Le temps presse : %s Votre soutien immédiat est indispensable pour atteindre notre objectif.",
		"formel":    "Nous sollicitons votre générosité. %s Votre contribution soutiendra directement nos actions.",
	}

	template, ok := templates[tone]
	if !ok {
		template = templates["inspirant"]
	}

	return fmt.Sprintf(template, prompt), nil
}

type AIPromptRepository interface {
	Create(ctx context.Context, prompt domain.AIPrompt) (domain.AIPrompt, error)
}

type AICopyService struct {
	repo      AIPromptRepository
	generator CopyGenerator
}

func NewAICopyService(repo AIPromptRepository, generator CopyGenerator) *AICopyService {
	return &AICopyService{
		repo:      repo,
		generator: generator,
	}
}

// GenerateCopy asks the collaborator for text and persists the prompt with
// its result for later review.
func (s *AICopyService) GenerateCopy(ctx context.Context, content, tone string) (domain.AIPrompt, error) {
	generated, err := s.generator.Generate(ctx, content, tone)
	if err != nil {
		return domain.AIPrompt{}, fmt.Errorf("s.generator.Generate -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.AIPrompt{
		Content:       content,
		Tone:          tone,
		GeneratedText: generated,
	})
	if err != nil {
		return domain.AIPrompt{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}
