package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAssociationEmailExists = errors.New("association already exists")
	ErrAssociationNotFound    = errors.New("association not found")
)

type Association struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Email       string `gorm:"unique;not null"`
	Description string

	Status         string          `gorm:"not null;default:active"`
	Balance        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	TotalDonations decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AssociationDAO struct {
	db *gorm.DB
}

func NewAssociationDAO(db *gorm.DB) *AssociationDAO {
	return &AssociationDAO{
		db: db,
	}
}

func (d *AssociationDAO) Insert(ctx context.Context, association Association) (Association, error) {
	result := d.db.WithContext(ctx).Create(&association)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_associations_email"`) {
			return Association{}, ErrAssociationEmailExists
		}

		return Association{}, result.Error
	}

	return association, nil
}

func (d *AssociationDAO) FindByID(ctx context.Context, id uint) (Association, error) {
	var association Association

	result := d.db.WithContext(ctx).First(&association, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Association{}, ErrAssociationNotFound
		}

		return Association{}, result.Error
	}

	return association, nil
}

func (d *AssociationDAO) FindAll(ctx context.Context) ([]Association, error) {
	var associations []Association

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&associations)
	if result.Error != nil {
		return nil, result.Error
	}

	return associations, nil
}
