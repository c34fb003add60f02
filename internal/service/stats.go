package service

import (
	"context"
	"fmt"

	"github.com/giveplus/giveplus-api/internal/domain"
)

type StatsDonorRepository interface {
	Count(ctx context.Context) (int64, error)
}

type StatsService struct {
	campaignRepo CampaignRepository
	donorRepo    StatsDonorRepository
	donationRepo DonationRepository
}

func NewStatsService(campaignRepo CampaignRepository, donorRepo StatsDonorRepository, donationRepo DonationRepository) *StatsService {
	return &StatsService{
		campaignRepo: campaignRepo,
		donorRepo:    donorRepo,
		donationRepo: donationRepo,
	}
}

// GetAssociationStats aggregates directly from the persisted rows at call
// time. There is no cache to invalidate, so the numbers always reflect the
// latest committed ledger state.
func (s *StatsService) GetAssociationStats(ctx context.Context, associationID uint, recentLimit int) (domain.AssociationStats, error) {
	totalCampaigns, err := s.campaignRepo.CountByAssociationID(ctx, associationID, "")
	if err != nil {
		return domain.AssociationStats{}, fmt.Errorf("s.campaignRepo.CountByAssociationID -> %w", err)
	}

	activeCampaigns, err := s.campaignRepo.CountByAssociationID(ctx, associationID, domain.CampaignActive)
	if err != nil {
		return domain.AssociationStats{}, fmt.Errorf("s.campaignRepo.CountByAssociationID -> %w", err)
	}

	totalDonors, err := s.donorRepo.Count(ctx)
	if err != nil {
		return domain.AssociationStats{}, fmt.Errorf("s.donorRepo.Count -> %w", err)
	}

	totalRaised, err := s.campaignRepo.SumRaisedByAssociationID(ctx, associationID)
	if err != nil {
		return domain.AssociationStats{}, fmt.Errorf("s.campaignRepo.SumRaisedByAssociationID -> %w", err)
	}

	recentDonations, err := s.donationRepo.FindRecentByAssociationID(ctx, associationID, clampLimit(recentLimit))
	if err != nil {
		return domain.AssociationStats{}, fmt.Errorf("s.donationRepo.FindRecentByAssociationID -> %w", err)
	}

	return domain.AssociationStats{
		TotalCampaigns:  int(totalCampaigns),
		ActiveCampaigns: int(activeCampaigns),
		TotalDonors:     int(totalDonors),
		TotalRaised:     totalRaised,
		RecentDonations: recentDonations,
	}, nil
}
