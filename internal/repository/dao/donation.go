package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID uint `gorm:"primaryKey"`

	CampaignID uint     `gorm:"index;not null"`
	Campaign   Campaign `gorm:"foreignKey:CampaignID"`

	DonorID uint  `gorm:"index;not null"`
	Donor   Donor `gorm:"foreignKey:DonorID"`

	Amount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status      string          `gorm:"not null;default:completed"`
	Description string

	CreatedAt time.Time `gorm:"not null"`
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

// InsertWithLedgerUpdate records the donation and applies the campaign and
// donor increments in one transaction. The raised increment is evaluated by
// Postgres (raised = raised + amount), so concurrent donations against the
// same campaign cannot lose updates. If any statement fails, nothing is
// committed: no orphan donation, no partial increment.
func (d *DonationDAO) InsertWithLedgerUpdate(ctx context.Context, donation Donation) (Donation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		campaignUpdate := tx.Model(&Campaign{}).
			Where("id = ?", donation.CampaignID).
			Updates(map[string]interface{}{
				"raised": gorm.Expr("raised + ?", donation.Amount),
			})
		if campaignUpdate.Error != nil {
			return campaignUpdate.Error
		}
		if campaignUpdate.RowsAffected == 0 {
			return ErrCampaignNotFound
		}

		donorUpdate := tx.Model(&Donor{}).
			Where("id = ?", donation.DonorID).
			Updates(map[string]interface{}{
				"total_donated": gorm.Expr("total_donated + ?", donation.Amount),
				"last_donation": time.Now(),
			})
		if donorUpdate.Error != nil {
			return donorUpdate.Error
		}
		if donorUpdate.RowsAffected == 0 {
			return ErrDonorNotFound
		}

		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return Donation{}, err
	}

	return donation, nil
}

func (d *DonationDAO) FindByID(ctx context.Context, id uint) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).First(&donation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) FindByCampaignID(ctx context.Context, campaignID uint) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at DESC").
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

func (d *DonationDAO) FindRecent(ctx context.Context, limit int) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}

func (d *DonationDAO) FindRecentByAssociationID(ctx context.Context, associationID uint, limit int) ([]Donation, error) {
	var donations []Donation

	result := d.db.WithContext(ctx).
		Joins("JOIN campaigns ON campaigns.id = donations.campaign_id").
		Where("campaigns.association_id = ?", associationID).
		Order("donations.created_at DESC").
		Limit(limit).
		Find(&donations)
	if result.Error != nil {
		return nil, result.Error
	}

	return donations, nil
}
