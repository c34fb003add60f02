package repository

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

type AIPromptDAO interface {
	Insert(ctx context.Context, prompt dao.AIPrompt) (dao.AIPrompt, error)
}

type AIPromptRepository struct {
	dao AIPromptDAO
}

func NewAIPromptRepository(dao AIPromptDAO) *AIPromptRepository {
	return &AIPromptRepository{
		dao: dao,
	}
}

func (r *AIPromptRepository) Create(ctx context.Context, prompt domain.AIPrompt) (domain.AIPrompt, error) {
	created, err := r.dao.Insert(ctx, dao.AIPrompt{
		Content:       prompt.Content,
		Tone:          prompt.Tone,
		GeneratedText: prompt.GeneratedText,
	})
	if err != nil {
		return domain.AIPrompt{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return domain.AIPrompt{
		ID:            created.ID,
		Content:       created.Content,
		Tone:          created.Tone,
		GeneratedText: created.GeneratedText,
		CreatedAt:     created.CreatedAt,
	}, nil
}
