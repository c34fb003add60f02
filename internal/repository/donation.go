package repository

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

var ErrDonationNotFound = dao.ErrDonationNotFound

type DonationDAO interface {
	InsertWithLedgerUpdate(ctx context.Context, donation dao.Donation) (dao.Donation, error)
	FindByID(ctx context.Context, id uint) (dao.Donation, error)
	FindByCampaignID(ctx context.Context, campaignID uint) ([]dao.Donation, error)
	FindRecent(ctx context.Context, limit int) ([]dao.Donation, error)
	FindRecentByAssociationID(ctx context.Context, associationID uint, limit int) ([]dao.Donation, error)
}

type DonationRepository struct {
	dao DonationDAO
}

func NewDonationRepository(dao DonationDAO) *DonationRepository {
	return &DonationRepository{
		dao: dao,
	}
}

// Create persists the donation together with its ledger update. The campaign
// raised increment, the donor aggregates and the donation row commit or roll
// back as one unit.
func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	created, err := r.dao.InsertWithLedgerUpdate(ctx, dao.Donation{
		CampaignID:  donation.CampaignID,
		DonorID:     donation.DonorID,
		Amount:      donation.Amount,
		Status:      string(donation.Status),
		Description: donation.Description,
	})
	if err != nil {
		return domain.Donation{}, fmt.Errorf("r.dao.InsertWithLedgerUpdate -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *DonationRepository) FindByCampaignID(ctx context.Context, campaignID uint) ([]domain.Donation, error) {
	found, err := r.dao.FindByCampaignID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByCampaignID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *DonationRepository) FindRecent(ctx context.Context, limit int) ([]domain.Donation, error) {
	found, err := r.dao.FindRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecent -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *DonationRepository) FindRecentByAssociationID(ctx context.Context, associationID uint, limit int) ([]domain.Donation, error) {
	found, err := r.dao.FindRecentByAssociationID(ctx, associationID, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindRecentByAssociationID -> %w", err)
	}

	return r.daosToDomains(found), nil
}

func (r *DonationRepository) daosToDomains(found []dao.Donation) []domain.Donation {
	donations := make([]domain.Donation, 0, len(found))
	for _, d := range found {
		donations = append(donations, r.daoToDomain(d))
	}

	return donations
}

func (r *DonationRepository) daoToDomain(d dao.Donation) domain.Donation {
	return domain.Donation{
		ID:          d.ID,
		CampaignID:  d.CampaignID,
		DonorID:     d.DonorID,
		Amount:      d.Amount,
		Status:      domain.DonationStatus(d.Status),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
	}
}
