package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type AIPrompt struct {
	ID uint `gorm:"primaryKey"`

	Content       string `gorm:"not null"`
	Tone          string `gorm:"not null;default:inspirant"`
	GeneratedText string

	CreatedAt time.Time `gorm:"not null"`
}

type AIPromptDAO struct {
	db *gorm.DB
}

func NewAIPromptDAO(db *gorm.DB) *AIPromptDAO {
	return &AIPromptDAO{
		db: db,
	}
}

func (d *AIPromptDAO) Insert(ctx context.Context, prompt AIPrompt) (AIPrompt, error) {
	result := d.db.WithContext(ctx).Create(&prompt)
	if result.Error != nil {
		return AIPrompt{}, result.Error
	}

	return prompt, nil
}
