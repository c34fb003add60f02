package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AssociationStatus string

const (
	AssociationActive    AssociationStatus = "active"
	AssociationPending   AssociationStatus = "pending"
	AssociationSuspended AssociationStatus = "suspended"
)

type Association struct {
	ID             uint              `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Description    string            `json:"description,omitempty"`
	Status         AssociationStatus `json:"status"`
	Balance        decimal.Decimal   `json:"balance"`
	TotalDonations decimal.Decimal   `json:"total_donations"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
