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
	ErrDonorEmailExists = errors.New("donor already exists")
	ErrDonorNotFound    = errors.New("donor not found")
)

type Donor struct {
	ID uint `gorm:"primaryKey"`

	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	Email     string `gorm:"unique;not null"`
	Phone     string

	TotalDonated decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	LastDonation *time.Time

	Frequency string `gorm:"not null;default:unique"`
	Tag       string `gorm:"not null;default:nouveau"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonorDAO struct {
	db *gorm.DB
}

func NewDonorDAO(db *gorm.DB) *DonorDAO {
	return &DonorDAO{
		db: db,
	}
}

func (d *DonorDAO) Insert(ctx context.Context, donor Donor) (Donor, error) {
	result := d.db.WithContext(ctx).Create(&donor)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_donors_email"`) {
			return Donor{}, ErrDonorEmailExists
		}

		return Donor{}, result.Error
	}

	return donor, nil
}

func (d *DonorDAO) FindByID(ctx context.Context, id uint) (Donor, error) {
	var donor Donor

	result := d.db.WithContext(ctx).First(&donor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donor{}, ErrDonorNotFound
		}

		return Donor{}, result.Error
	}

	return donor, nil
}

func (d *DonorDAO) FindByEmail(ctx context.Context, email string) (Donor, error) {
	var donor Donor

	result := d.db.WithContext(ctx).First(&donor, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donor{}, ErrDonorNotFound
		}

		return Donor{}, result.Error
	}

	return donor, nil
}

func (d *DonorDAO) FindAll(ctx context.Context) ([]Donor, error) {
	var donors []Donor

	result := d.db.WithContext(ctx).Order("total_donated DESC").Find(&donors)
	if result.Error != nil {
		return nil, result.Error
	}

	return donors, nil
}

func (d *DonorDAO) Count(ctx context.Context) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Donor{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
