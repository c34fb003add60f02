package repository

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

var (
	ErrEventNotFound = dao.ErrEventNotFound
	ErrEventFull     = dao.ErrEventFull
)

type EventDAO interface {
	Insert(ctx context.Context, event dao.Event) (dao.Event, error)
	FindByID(ctx context.Context, id uint) (dao.Event, error)
	FindByAssociationID(ctx context.Context, associationID uint) ([]dao.Event, error)
	InsertParticipant(ctx context.Context, participant dao.EventParticipant) (dao.EventParticipant, error)
	FindParticipantsByEventID(ctx context.Context, eventID uint) ([]dao.EventParticipant, error)
}

type EventRepository struct {
	dao EventDAO
}

func NewEventRepository(dao EventDAO) *EventRepository {
	return &EventRepository{
		dao: dao,
	}
}

func (r *EventRepository) Create(ctx context.Context, event domain.Event) (domain.Event, error) {
	created, err := r.dao.Insert(ctx, dao.Event{
		AssociationID:   event.AssociationID,
		Title:           event.Title,
		Description:     event.Description,
		Date:            event.Date,
		Location:        event.Location,
		MaxParticipants: event.MaxParticipants,
		Price:           event.Price,
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *EventRepository) FindByID(ctx context.Context, id uint) (domain.Event, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *EventRepository) FindByAssociationID(ctx context.Context, associationID uint) ([]domain.Event, error) {
	found, err := r.dao.FindByAssociationID(ctx, associationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAssociationID -> %w", err)
	}

	events := make([]domain.Event, 0, len(found))
	for _, e := range found {
		events = append(events, r.daoToDomain(e))
	}

	return events, nil
}

func (r *EventRepository) AddParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error) {
	created, err := r.dao.InsertParticipant(ctx, dao.EventParticipant{
		EventID: participant.EventID,
		Name:    participant.Name,
		Email:   participant.Email,
		Status:  participant.Status,
	})
	if err != nil {
		return domain.EventParticipant{}, fmt.Errorf("r.dao.InsertParticipant -> %w", err)
	}

	return r.participantDaoToDomain(created), nil
}

func (r *EventRepository) FindParticipantsByEventID(ctx context.Context, eventID uint) ([]domain.EventParticipant, error) {
	found, err := r.dao.FindParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindParticipantsByEventID -> %w", err)
	}

	participants := make([]domain.EventParticipant, 0, len(found))
	for _, p := range found {
		participants = append(participants, r.participantDaoToDomain(p))
	}

	return participants, nil
}

func (r *EventRepository) daoToDomain(e dao.Event) domain.Event {
	return domain.Event{
		ID:              e.ID,
		AssociationID:   e.AssociationID,
		Title:           e.Title,
		Description:     e.Description,
		Date:            e.Date,
		Location:        e.Location,
		MaxParticipants: e.MaxParticipants,
		RegisteredCount: e.RegisteredCount,
		Price:           e.Price,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func (r *EventRepository) participantDaoToDomain(p dao.EventParticipant) domain.EventParticipant {
	return domain.EventParticipant{
		ID:               p.ID,
		EventID:          p.EventID,
		Name:             p.Name,
		Email:            p.Email,
		Status:           p.Status,
		RegistrationDate: p.RegistrationDate,
	}
}
