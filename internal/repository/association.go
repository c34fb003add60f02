package repository

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

var (
	ErrAssociationEmailExists = dao.ErrAssociationEmailExists
	ErrAssociationNotFound    = dao.ErrAssociationNotFound
)

type AssociationDAO interface {
	Insert(ctx context.Context, association dao.Association) (dao.Association, error)
	FindByID(ctx context.Context, id uint) (dao.Association, error)
	FindAll(ctx context.Context) ([]dao.Association, error)
}

type AssociationRepository struct {
	dao AssociationDAO
}

func NewAssociationRepository(dao AssociationDAO) *AssociationRepository {
	return &AssociationRepository{
		dao: dao,
	}
}

func (r *AssociationRepository) Create(ctx context.Context, association domain.Association) (domain.Association, error) {
	created, err := r.dao.Insert(ctx, dao.Association{
		Name:           association.Name,
		Email:          association.Email,
		Description:    association.Description,
		Status:         string(association.Status),
		Balance:        association.Balance,
		TotalDonations: association.TotalDonations,
	})
	if err != nil {
		return domain.Association{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *AssociationRepository) FindByID(ctx context.Context, id uint) (domain.Association, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Association{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *AssociationRepository) FindAll(ctx context.Context) ([]domain.Association, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	associations := make([]domain.Association, 0, len(found))
	for _, a := range found {
		associations = append(associations, r.daoToDomain(a))
	}

	return associations, nil
}

func (r *AssociationRepository) daoToDomain(a dao.Association) domain.Association {
	return domain.Association{
		ID:             a.ID,
		Name:           a.Name,
		Email:          a.Email,
		Description:    a.Description,
		Status:         domain.AssociationStatus(a.Status),
		Balance:        a.Balance,
		TotalDonations: a.TotalDonations,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
