package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

var (
	ErrEventNotFound = repository.ErrEventNotFound
	ErrEventFull     = repository.ErrEventFull
)

type EventRepository interface {
	Create(ctx context.Context, event domain.Event) (domain.Event, error)
	FindByID(ctx context.Context, id uint) (domain.Event, error)
	FindByAssociationID(ctx context.Context, associationID uint) ([]domain.Event, error)
	AddParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error)
	FindParticipantsByEventID(ctx context.Context, eventID uint) ([]domain.EventParticipant, error)
}

type EventService struct {
	repo            EventRepository
	associationRepo CampaignAssociationRepository
}

func NewEventService(repo EventRepository, associationRepo CampaignAssociationRepository) *EventService {
	return &EventService{
		repo:            repo,
		associationRepo: associationRepo,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error) {
	if _, err := s.associationRepo.FindByID(ctx, event.AssociationID); err != nil {
		if errors.Is(err, repository.ErrAssociationNotFound) {
			return domain.Event{}, ErrAssociationNotFound
		}

		return domain.Event{}, fmt.Errorf("s.associationRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return domain.Event{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetEventsByAssociation(ctx context.Context, associationID uint) ([]domain.Event, error) {
	events, err := s.repo.FindByAssociationID(ctx, associationID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAssociationID -> %w", err)
	}

	return events, nil
}

// RegisterParticipant seats a participant if capacity remains. The capacity
// check and the count increment are one conditional update at the storage
// layer, so a full event cannot be oversold by concurrent registrations.
func (s *EventService) RegisterParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error) {
	if participant.Status == "" {
		participant.Status = "confirmed"
	}

	created, err := s.repo.AddParticipant(ctx, participant)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domain.EventParticipant{}, ErrEventNotFound
		}
		if errors.Is(err, repository.ErrEventFull) {
			return domain.EventParticipant{}, ErrEventFull
		}

		return domain.EventParticipant{}, fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}

	return created, nil
}

func (s *EventService) GetParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error) {
	if _, err := s.repo.FindByID(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}

		return nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	participants, err := s.repo.FindParticipantsByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindParticipantsByEventID -> %w", err)
	}

	return participants, nil
}
