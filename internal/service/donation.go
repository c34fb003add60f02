package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

var (
	ErrDonorNotFound = repository.ErrDonorNotFound
	ErrInvalidAmount = errors.New("donation amount must be a positive decimal")
)

type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	FindByCampaignID(ctx context.Context, campaignID uint) ([]domain.Donation, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Donation, error)
	FindRecentByAssociationID(ctx context.Context, associationID uint, limit int) ([]domain.Donation, error)
}

type DonationDonorRepository interface {
	Create(ctx context.Context, donor domain.Donor) (domain.Donor, error)
	FindByID(ctx context.Context, id uint) (domain.Donor, error)
	FindByEmail(ctx context.Context, email string) (domain.Donor, error)
}

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 50
)

type DonationService struct {
	repo      DonationRepository
	donorRepo DonationDonorRepository
}

func NewDonationService(repo DonationRepository, donorRepo DonationDonorRepository) *DonationService {
	return &DonationService{
		repo:      repo,
		donorRepo: donorRepo,
	}
}

// DonorIdentity is the minimal identity accepted at donation intake when no
// donor ID is supplied.
type DonorIdentity struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// RecordDonation validates the amount, resolves the donor, and hands the
// donation to the transactional ledger update. Either the whole intake
// commits, or none of it does.
func (s *DonationService) RecordDonation(ctx context.Context, donation domain.Donation, identity *DonorIdentity) (domain.Donation, error) {
	if !donation.Amount.IsPositive() {
		return domain.Donation{}, ErrInvalidAmount
	}

	if donation.DonorID == 0 {
		if identity == nil {
			return domain.Donation{}, ErrDonorNotFound
		}

		donor, err := s.ResolveDonor(ctx, *identity)
		if err != nil {
			return domain.Donation{}, err
		}
		donation.DonorID = donor.ID
	} else {
		if _, err := s.donorRepo.FindByID(ctx, donation.DonorID); err != nil {
			if errors.Is(err, repository.ErrDonorNotFound) {
				return domain.Donation{}, ErrDonorNotFound
			}

			return domain.Donation{}, fmt.Errorf("s.donorRepo.FindByID -> %w", err)
		}
	}

	if donation.Status == "" {
		donation.Status = domain.DonationCompleted
	}

	created, err := s.repo.Create(ctx, donation)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Donation{}, ErrCampaignNotFound
		}

		return domain.Donation{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// ResolveDonor reuses an existing donor by email or creates a new one tagged
// "nouveau". A concurrent create racing on the unique email constraint is
// resolved by re-reading.
func (s *DonationService) ResolveDonor(ctx context.Context, identity DonorIdentity) (domain.Donor, error) {
	donor, err := s.donorRepo.FindByEmail(ctx, identity.Email)
	if err == nil {
		return donor, nil
	}
	if !errors.Is(err, repository.ErrDonorNotFound) {
		return domain.Donor{}, fmt.Errorf("s.donorRepo.FindByEmail -> %w", err)
	}

	created, err := s.donorRepo.Create(ctx, domain.Donor{
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		Email:        identity.Email,
		Phone:        identity.Phone,
		TotalDonated: decimal.Zero,
		Frequency:    domain.FrequencyUnique,
		Tag:          domain.TagNew,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDonorEmailExists) {
			existing, findErr := s.donorRepo.FindByEmail(ctx, identity.Email)
			if findErr != nil {
				return domain.Donor{}, fmt.Errorf("s.donorRepo.FindByEmail -> %w", findErr)
			}

			return existing, nil
		}

		return domain.Donor{}, fmt.Errorf("s.donorRepo.Create -> %w", err)
	}

	return created, nil
}

func (s *DonationService) GetDonationsByCampaign(ctx context.Context, campaignID uint) ([]domain.Donation, error) {
	donations, err := s.repo.FindByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByCampaignID -> %w", err)
	}

	return donations, nil
}

func (s *DonationService) GetRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	donations, err := s.repo.FindRecent(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindRecent -> %w", err)
	}

	return donations, nil
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultRecentLimit
	}
	if limit > maxRecentLimit {
		return maxRecentLimit
	}

	return limit
}
