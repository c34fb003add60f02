package domain

import "time"

type AIPrompt struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	Tone          string    `json:"tone"`
	GeneratedText string    `json:"generated_text"`
	CreatedAt     time.Time `json:"created_at"`
}
