package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event struct {
	ID              uint             `json:"id"`
	AssociationID   uint             `json:"association_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description,omitempty"`
	Date            time.Time        `json:"date"`
	Location        string           `json:"location,omitempty"`
	MaxParticipants int              `json:"max_participants"`
	RegisteredCount int              `json:"registered_count"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

type EventParticipant struct {
	ID               uint      `json:"id"`
	EventID          uint      `json:"event_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Status           string    `json:"status"`
	RegistrationDate time.Time `json:"registration_date"`
}
