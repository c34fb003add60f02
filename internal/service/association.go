package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

var ErrAssociationEmailExists = repository.ErrAssociationEmailExists

type AssociationRepository interface {
	Create(ctx context.Context, association domain.Association) (domain.Association, error)
	FindByID(ctx context.Context, id uint) (domain.Association, error)
	FindAll(ctx context.Context) ([]domain.Association, error)
}

type AssociationService struct {
	repo AssociationRepository
}

func NewAssociationService(repo AssociationRepository) *AssociationService {
	return &AssociationService{
		repo: repo,
	}
}

func (s *AssociationService) CreateAssociation(ctx context.Context, association domain.Association) (domain.Association, error) {
	if association.Status == "" {
		association.Status = domain.AssociationActive
	}

	created, err := s.repo.Create(ctx, association)
	if err != nil {
		if errors.Is(err, repository.ErrAssociationEmailExists) {
			return domain.Association{}, ErrAssociationEmailExists
		}

		return domain.Association{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *AssociationService) GetAssociations(ctx context.Context) ([]domain.Association, error) {
	associations, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return associations, nil
}

func (s *AssociationService) GetAssociation(ctx context.Context, id uint) (domain.Association, error) {
	association, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssociationNotFound) {
			return domain.Association{}, ErrAssociationNotFound
		}

		return domain.Association{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return association, nil
}
