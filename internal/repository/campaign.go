package repository

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository/dao"
)

var ErrCampaignNotFound = dao.ErrCampaignNotFound

type CampaignDAO interface {
	Insert(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	FindByID(ctx context.Context, id uint) (dao.Campaign, error)
	FindByAssociationID(ctx context.Context, associationID uint) ([]dao.Campaign, error)
	SumRaisedByAssociationID(ctx context.Context, associationID uint) (decimal.Decimal, error)
	CountByAssociationID(ctx context.Context, associationID uint, status string) (int64, error)
}

type CampaignRepository struct {
	dao CampaignDAO
}

func NewCampaignRepository(dao CampaignDAO) *CampaignRepository {
	return &CampaignRepository{
		dao: dao,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Insert(ctx, dao.Campaign{
		AssociationID: campaign.AssociationID,
		Title:         campaign.Title,
		Description:   campaign.Description,
		Target:        campaign.Target,
		Raised:        decimal.Zero,
		Deadline:      campaign.Deadline,
		Status:        string(campaign.Status),
		ContactCount:  campaign.ContactCount,
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *CampaignRepository) FindByAssociationID(ctx context.Context, associationID uint) ([]domain.Campaign, error) {
	found, err := r.dao.FindByAssociationID(ctx, associationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByAssociationID -> %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(found))
	for _, c := range found {
		campaigns = append(campaigns, r.daoToDomain(c))
	}

	return campaigns, nil
}

func (r *CampaignRepository) SumRaisedByAssociationID(ctx context.Context, associationID uint) (decimal.Decimal, error) {
	total, err := r.dao.SumRaisedByAssociationID(ctx, associationID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("r.dao.SumRaisedByAssociationID -> %w", err)
	}

	return total, nil
}

func (r *CampaignRepository) CountByAssociationID(ctx context.Context, associationID uint, status domain.CampaignStatus) (int64, error) {
	count, err := r.dao.CountByAssociationID(ctx, associationID, string(status))
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByAssociationID -> %w", err)
	}

	return count, nil
}

func (r *CampaignRepository) daoToDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:            c.ID,
		AssociationID: c.AssociationID,
		Title:         c.Title,
		Description:   c.Description,
		Target:        c.Target,
		Raised:        c.Raised,
		Deadline:      c.Deadline,
		Status:        domain.CampaignStatus(c.Status),
		ContactCount:  c.ContactCount,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
