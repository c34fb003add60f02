package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/repository"
)

type fakeDonationRepo struct {
	created []domain.Donation
	fail    error
}

func (f *fakeDonationRepo) Create(_ context.Context, donation domain.Donation) (domain.Donation, error) {
	if f.fail != nil {
		return domain.Donation{}, f.fail
	}

	donation.ID = uint(len(f.created) + 1)
	donation.CreatedAt = time.Now()
	f.created = append(f.created, donation)

	return donation, nil
}

func (f *fakeDonationRepo) FindByCampaignID(_ context.Context, campaignID uint) ([]domain.Donation, error) {
	var donations []domain.Donation
	for _, d := range f.created {
		if d.CampaignID == campaignID {
			donations = append(donations, d)
		}
	}

	return donations, nil
}

func (f *fakeDonationRepo) FindRecent(_ context.Context, limit int) ([]domain.Donation, error) {
	if limit > len(f.created) {
		limit = len(f.created)
	}

	return f.created[len(f.created)-limit:], nil
}

func (f *fakeDonationRepo) FindRecentByAssociationID(_ context.Context, _ uint, limit int) ([]domain.Donation, error) {
	return f.FindRecent(context.Background(), limit)
}

type fakeDonorRepo struct {
	donors     map[string]domain.Donor
	nextID     uint
	createFail error
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{
		donors: make(map[string]domain.Donor),
		nextID: 1,
	}
}

func (f *fakeDonorRepo) Create(_ context.Context, donor domain.Donor) (domain.Donor, error) {
	if f.createFail != nil {
		return domain.Donor{}, f.createFail
	}
	if _, exists := f.donors[donor.Email]; exists {
		return domain.Donor{}, repository.ErrDonorEmailExists
	}

	donor.ID = f.nextID
	f.nextID++
	f.donors[donor.Email] = donor

	return donor, nil
}

func (f *fakeDonorRepo) FindByID(_ context.Context, id uint) (domain.Donor, error) {
	for _, d := range f.donors {
		if d.ID == id {
			return d, nil
		}
	}

	return domain.Donor{}, repository.ErrDonorNotFound
}

func (f *fakeDonorRepo) FindByEmail(_ context.Context, email string) (domain.Donor, error) {
	donor, ok := f.donors[email]
	if !ok {
		return domain.Donor{}, repository.ErrDonorNotFound
	}

	return donor, nil
}

func (f *fakeDonorRepo) FindAll(_ context.Context) ([]domain.Donor, error) {
	donors := make([]domain.Donor, 0, len(f.donors))
	for _, d := range f.donors {
		donors = append(donors, d)
	}

	return donors, nil
}

func (f *fakeDonorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.donors)), nil
}

func TestDonationService_RecordDonation(t *testing.T) {
	t.Run("rejects non-positive amount without touching storage", func(t *testing.T) {
		repo := &fakeDonationRepo{}
		svc := NewDonationService(repo, newFakeDonorRepo())

		_, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			DonorID:    1,
			Amount:     decimal.Zero,
		}, nil)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Empty(t, repo.created)
	})

	t.Run("records a donation for an existing donor", func(t *testing.T) {
		repo := &fakeDonationRepo{}
		donorRepo := newFakeDonorRepo()
		donor, err := donorRepo.Create(context.Background(), domain.Donor{Email: "marie@example.com"})
		require.NoError(t, err)

		svc := NewDonationService(repo, donorRepo)

		created, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 7,
			DonorID:    donor.ID,
			Amount:     decimal.RequireFromString("250.00"),
		}, nil)

		require.NoError(t, err)
		assert.Equal(t, domain.DonationCompleted, created.Status)
		assert.Len(t, repo.created, 1)
		assert.True(t, created.Amount.Equal(decimal.RequireFromString("250.00")))
	})

	t.Run("unknown donor ID fails", func(t *testing.T) {
		svc := NewDonationService(&fakeDonationRepo{}, newFakeDonorRepo())

		_, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			DonorID:    99,
			Amount:     decimal.RequireFromString("10"),
		}, nil)

		assert.ErrorIs(t, err, ErrDonorNotFound)
	})

	t.Run("creates donor from identity when email is new", func(t *testing.T) {
		repo := &fakeDonationRepo{}
		donorRepo := newFakeDonorRepo()
		svc := NewDonationService(repo, donorRepo)

		created, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			Amount:     decimal.RequireFromString("20"),
		}, &DonorIdentity{FirstName: "Jean", LastName: "Martin", Email: "jean@example.com"})

		require.NoError(t, err)
		donor, err := donorRepo.FindByEmail(context.Background(), "jean@example.com")
		require.NoError(t, err)
		assert.Equal(t, donor.ID, created.DonorID)
		assert.Equal(t, domain.TagNew, donor.Tag)
		assert.Equal(t, domain.FrequencyUnique, donor.Frequency)
	})

	t.Run("reuses donor by email across two intakes", func(t *testing.T) {
		repo := &fakeDonationRepo{}
		donorRepo := newFakeDonorRepo()
		svc := NewDonationService(repo, donorRepo)
		identity := &DonorIdentity{FirstName: "Jean", LastName: "Martin", Email: "jean@example.com"}

		first, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			Amount:     decimal.RequireFromString("20"),
		}, identity)
		require.NoError(t, err)

		second, err := svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			Amount:     decimal.RequireFromString("30"),
		}, identity)
		require.NoError(t, err)

		assert.Equal(t, first.DonorID, second.DonorID)
		assert.Len(t, donorRepo.donors, 1)
	})

	t.Run("campaign not found surfaces as such", func(t *testing.T) {
		repo := &fakeDonationRepo{fail: repository.ErrCampaignNotFound}
		donorRepo := newFakeDonorRepo()
		donor, err := donorRepo.Create(context.Background(), domain.Donor{Email: "x@example.com"})
		require.NoError(t, err)

		svc := NewDonationService(repo, donorRepo)

		_, err = svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 404,
			DonorID:    donor.ID,
			Amount:     decimal.RequireFromString("10"),
		}, nil)

		assert.ErrorIs(t, err, ErrCampaignNotFound)
	})

	t.Run("storage failure leaves nothing recorded", func(t *testing.T) {
		boom := errors.New("connection reset")
		repo := &fakeDonationRepo{fail: boom}
		donorRepo := newFakeDonorRepo()
		donor, err := donorRepo.Create(context.Background(), domain.Donor{Email: "x@example.com"})
		require.NoError(t, err)

		svc := NewDonationService(repo, donorRepo)

		_, err = svc.RecordDonation(context.Background(), domain.Donation{
			CampaignID: 1,
			DonorID:    donor.ID,
			Amount:     decimal.RequireFromString("10"),
		}, nil)

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, repo.created)
	})
}

func TestDonationService_ResolveDonor_EmailRace(t *testing.T) {
	donorRepo := newFakeDonorRepo()
	existing, err := donorRepo.Create(context.Background(), domain.Donor{Email: "race@example.com"})
	require.NoError(t, err)

	// Simulate a lookup miss followed by a unique-violation on create: the
	// fake returns ErrDonorEmailExists because the row appeared concurrently.
	svc := NewDonationService(&fakeDonationRepo{}, &racingDonorRepo{inner: donorRepo, missFirst: true})

	donor, err := svc.ResolveDonor(context.Background(), DonorIdentity{Email: "race@example.com"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, donor.ID)
}

// racingDonorRepo misses the first FindByEmail so the service attempts a
// create that collides with the concurrently inserted row.
type racingDonorRepo struct {
	inner     *fakeDonorRepo
	missFirst bool
}

func (r *racingDonorRepo) Create(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	return r.inner.Create(ctx, donor)
}

func (r *racingDonorRepo) FindByID(ctx context.Context, id uint) (domain.Donor, error) {
	return r.inner.FindByID(ctx, id)
}

func (r *racingDonorRepo) FindByEmail(ctx context.Context, email string) (domain.Donor, error) {
	if r.missFirst {
		r.missFirst = false
		return domain.Donor{}, repository.ErrDonorNotFound
	}

	return r.inner.FindByEmail(ctx, email)
}

func TestDonationService_GetRecentDonations_LimitClamping(t *testing.T) {
	repo := &fakeDonationRepo{}
	for i := 0; i < 20; i++ {
		_, err := repo.Create(context.Background(), domain.Donation{
			CampaignID: 1,
			DonorID:    1,
			Amount:     decimal.RequireFromString("1.00"),
		})
		require.NoError(t, err)
	}

	svc := NewDonationService(repo, newFakeDonorRepo())

	donations, err := svc.GetRecentDonations(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, donations, defaultRecentLimit)

	donations, err = svc.GetRecentDonations(context.Background(), 1000)
	require.NoError(t, err)
	assert.Len(t, donations, 20)
}
