package dao

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCampaignNotFound = errors.New("campaign not found")

type Campaign struct {
	ID uint `gorm:"primaryKey"`

	AssociationID uint        `gorm:"index;not null"`
	Association   Association `gorm:"foreignKey:AssociationID"`

	Title       string `gorm:"not null"`
	Description string

	Target decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Raised decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	Deadline     *time.Time
	Status       string `gorm:"not null;default:active"`
	ContactCount int    `gorm:"not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{
		db: db,
	}
}

func (d *CampaignDAO) Insert(ctx context.Context, campaign Campaign) (Campaign, error) {
	result := d.db.WithContext(ctx).Create(&campaign)
	if result.Error != nil {
		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) FindByAssociationID(ctx context.Context, associationID uint) ([]Campaign, error) {
	var campaigns []Campaign

	result := d.db.WithContext(ctx).
		Where("association_id = ?", associationID).
		Order("created_at DESC").
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}

	return campaigns, nil
}

// SumRaisedByAssociationID aggregates server-side so the dashboard total
// never drifts from the stored campaign rows.
func (d *CampaignDAO) SumRaisedByAssociationID(ctx context.Context, associationID uint) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	result := d.db.WithContext(ctx).
		Model(&Campaign{}).
		Where("association_id = ?", associationID).
		Select("SUM(raised)").
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}

func (d *CampaignDAO) CountByAssociationID(ctx context.Context, associationID uint, status string) (int64, error) {
	var count int64

	query := d.db.WithContext(ctx).Model(&Campaign{}).Where("association_id = ?", associationID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	result := query.Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
