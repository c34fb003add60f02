package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

var (
	ErrCampaignNotFound    = repository.ErrCampaignNotFound
	ErrAssociationNotFound = repository.ErrAssociationNotFound
	ErrInvalidTarget       = errors.New("campaign target must be positive")
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
	FindByAssociationID(ctx context.Context, associationID uint) ([]domain.Campaign, error)
	SumRaisedByAssociationID(ctx context.Context, associationID uint) (decimal.Decimal, error)
	CountByAssociationID(ctx context.Context, associationID uint, status domain.CampaignStatus) (int64, error)
}

type CampaignAssociationRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Association, error)
}

type CampaignService struct {
	repo            CampaignRepository
	associationRepo CampaignAssociationRepository
}

func NewCampaignService(repo CampaignRepository, associationRepo CampaignAssociationRepository) *CampaignService {
	return &CampaignService{
		repo:            repo,
		associationRepo: associationRepo,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if !campaign.Target.IsPositive() {
		return domain.Campaign{}, ErrInvalidTarget
	}

	if _, err := s.associationRepo.FindByID(ctx, campaign.AssociationID); err != nil {
		if errors.Is(err, repository.ErrAssociationNotFound) {
			return domain.Campaign{}, ErrAssociationNotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.associationRepo.FindByID -> %w", err)
	}

	if campaign.Status == "" {
		campaign.Status = domain.CampaignActive
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return domain.Campaign{}, ErrCampaignNotFound
		}

		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return campaign, nil
}

func (s *CampaignService) GetCampaignsByAssociation(ctx context.Context, associationID uint) ([]domain.Campaign, error) {
	campaigns, err := s.repo.FindByAssociationID(ctx, associationID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByAssociationID -> %w", err)
	}

	return campaigns, nil
}

// GetProgress is the read-only progress query. It never mutates state and
// reflects whatever raised value was last committed.
func (s *CampaignService) GetProgress(ctx context.Context, id uint, now time.Time) (domain.CampaignProgress, error) {
	campaign, err := s.GetCampaign(ctx, id)
	if err != nil {
		return domain.CampaignProgress{}, err
	}

	return domain.CampaignProgress{
		CampaignID:      campaign.ID,
		Raised:          campaign.Raised,
		Target:          campaign.Target,
		ProgressPercent: campaign.ProgressPercent(),
		RemainingDays:   campaign.RemainingDays(now),
	}, nil
}
