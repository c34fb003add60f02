package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

type DonorRepository interface {
	Create(ctx context.Context, donor domain.Donor) (domain.Donor, error)
	FindByID(ctx context.Context, id uint) (domain.Donor, error)
	FindByEmail(ctx context.Context, email string) (domain.Donor, error)
	FindAll(ctx context.Context) ([]domain.Donor, error)
	Count(ctx context.Context) (int64, error)
}

type DonorService struct {
	repo DonorRepository
}

func NewDonorService(repo DonorRepository) *DonorService {
	return &DonorService{
		repo: repo,
	}
}

// CreateDonor is idempotent on email: when the email already has a donor row,
// that row is returned instead of an error.
func (s *DonorService) CreateDonor(ctx context.Context, donor domain.Donor) (domain.Donor, bool, error) {
	existing, err := s.repo.FindByEmail(ctx, donor.Email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, repository.ErrDonorNotFound) {
		return domain.Donor{}, false, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	if donor.Frequency == "" {
		donor.Frequency = domain.FrequencyUnique
	}
	if donor.Tag == "" {
		donor.Tag = domain.TagNew
	}

	created, err := s.repo.Create(ctx, donor)
	if err != nil {
		if errors.Is(err, repository.ErrDonorEmailExists) {
			existing, findErr := s.repo.FindByEmail(ctx, donor.Email)
			if findErr != nil {
				return domain.Donor{}, false, fmt.Errorf("s.repo.FindByEmail -> %w", findErr)
			}

			return existing, false, nil
		}

		return domain.Donor{}, false, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, true, nil
}

func (s *DonorService) GetDonors(ctx context.Context) ([]domain.Donor, error) {
	donors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donors, nil
}
