package repository

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

var (
	ErrDonorEmailExists = dao.ErrDonorEmailExists
	ErrDonorNotFound    = dao.ErrDonorNotFound
)

type DonorDAO interface {
	Insert(ctx context.Context, donor dao.Donor) (dao.Donor, error)
	FindByID(ctx context.Context, id uint) (dao.Donor, error)
	FindByEmail(ctx context.Context, email string) (dao.Donor, error)
	FindAll(ctx context.Context) ([]dao.Donor, error)
	Count(ctx context.Context) (int64, error)
}

type DonorRepository struct {
	dao DonorDAO
}

func NewDonorRepository(dao DonorDAO) *DonorRepository {
	return &DonorRepository{
		dao: dao,
	}
}

func (r *DonorRepository) Create(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	created, err := r.dao.Insert(ctx, dao.Donor{
		FirstName:    donor.FirstName,
		LastName:     donor.LastName,
		Email:        donor.Email,
		Phone:        donor.Phone,
		TotalDonated: donor.TotalDonated,
		Frequency:    string(donor.Frequency),
		Tag:          string(donor.Tag),
	})
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DonorRepository) FindByID(ctx context.Context, id uint) (domain.Donor, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DonorRepository) FindByEmail(ctx context.Context, email string) (domain.Donor, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.Donor{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *DonorRepository) FindAll(ctx context.Context) ([]domain.Donor, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	donors := make([]domain.Donor, 0, len(found))
	for _, d := range found {
		donors = append(donors, r.daoToDomain(d))
	}

	return donors, nil
}

func (r *DonorRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

func (r *DonorRepository) daoToDomain(d dao.Donor) domain.Donor {
	return domain.Donor{
		ID:           d.ID,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		Email:        d.Email,
		Phone:        d.Phone,
		TotalDonated: d.TotalDonated,
		LastDonation: d.LastDonation,
		Frequency:    domain.DonorFrequency(d.Frequency),
		Tag:          domain.DonorTag(d.Tag),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
