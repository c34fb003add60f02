package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is full")
)

type Event struct {
	ID uint `gorm:"primaryKey"`

	AssociationID uint        `gorm:"index;not null"`
	Association   Association `gorm:"foreignKey:AssociationID"`

	Title       string `gorm:"not null"`
	Description string

	Date     time.Time `gorm:"not null"`
	Location string

	MaxParticipants int `gorm:"not null;default:0"`
	RegisteredCount int `gorm:"not null;default:0"`

	Price *decimal.Decimal `gorm:"type:numeric(10,2)"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type EventParticipant struct {
	ID uint `gorm:"primaryKey"`

	EventID uint  `gorm:"index;not null"`
	Event   Event `gorm:"foreignKey:EventID"`

	Name   string `gorm:"not null"`
	Email  string `gorm:"not null"`
	Status string `gorm:"not null;default:confirmed"`

	RegistrationDate time.Time `gorm:"not null;autoCreateTime"`
}

type EventDAO struct {
	db *gorm.DB
}

func NewEventDAO(db *gorm.DB) *EventDAO {
	return &EventDAO{
		db: db,
	}
}

func (d *EventDAO) Insert(ctx context.Context, event Event) (Event, error) {
	result := d.db.WithContext(ctx).Create(&event)
	if result.Error != nil {
		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByID(ctx context.Context, id uint) (Event, error) {
	var event Event

	result := d.db.WithContext(ctx).First(&event, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Event{}, ErrEventNotFound
		}

		return Event{}, result.Error
	}

	return event, nil
}

func (d *EventDAO) FindByAssociationID(ctx context.Context, associationID uint) ([]Event, error) {
	var events []Event

	result := d.db.WithContext(ctx).
		Where("association_id = ?", associationID).
		Order("date DESC").
		Find(&events)
	if result.Error != nil {
		return nil, result.Error
	}

	return events, nil
}

// InsertParticipant registers a participant and bumps the registered count in
// one transaction. The count increment carries the capacity check in its WHERE
// clause, same shape as the campaign ledger update, so two concurrent
// registrations cannot oversell the last seat.
func (d *EventDAO) InsertParticipant(ctx context.Context, participant EventParticipant) (EventParticipant, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		countUpdate := tx.Model(&Event{}).
			Where("id = ? AND (max_participants = 0 OR registered_count < max_participants)", participant.EventID).
			Updates(map[string]interface{}{
				"registered_count": gorm.Expr("registered_count + 1"),
			})
		if countUpdate.Error != nil {
			return countUpdate.Error
		}
		if countUpdate.RowsAffected == 0 {
			var event Event
			if err := tx.First(&event, participant.EventID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrEventNotFound
				}

				return err
			}

			return ErrEventFull
		}

		if err := tx.Create(&participant).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return EventParticipant{}, err
	}

	return participant, nil
}

func (d *EventDAO) FindParticipantsByEventID(ctx context.Context, eventID uint) ([]EventParticipant, error) {
	var participants []EventParticipant

	result := d.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("registration_date DESC").
		Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}
