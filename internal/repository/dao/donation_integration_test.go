package dao

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// startPostgres spins up a throwaway Postgres container. Tests calling it are
// skipped when Docker is not available (CI without a daemon, sandboxed runs).
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("could not connect to docker: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker daemon not reachable: %v", err)
	}

	resource, err := pool.Run("postgres", "16-alpine", []string{
		"POSTGRES_USER=test",
		"POSTGRES_PASSWORD=test",
		"POSTGRES_DB=giveplus_test",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf(
		"host=localhost port=%s user=test password=test dbname=giveplus_test sslmode=disable",
		resource.GetPort("5432/tcp"),
	)

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, sqlErr := db.DB()
		if sqlErr != nil {
			return sqlErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)

	require.NoError(t, InitTables(db))

	return db
}

var seedSeq atomic.Uint64

// seedCampaign creates an association, a campaign, and a donor. Emails carry a
// sequence number so repeated seeds don't trip the unique constraints.
func seedCampaign(t *testing.T, db *gorm.DB, target string) (Campaign, Donor) {
	t.Helper()

	seq := seedSeq.Add(1)

	association := Association{
		Name:  "Les Restos du Coeur",
		Email: fmt.Sprintf("contact%d@restos.example", seq),
	}
	require.NoError(t, db.Create(&association).Error)

	campaign := Campaign{
		AssociationID: association.ID,
		Title:         "Collecte d'hiver",
		Target:        decimal.RequireFromString(target),
		Raised:        decimal.Zero,
		Status:        "active",
	}
	require.NoError(t, db.Create(&campaign).Error)

	donor := Donor{
		FirstName:    "Marie",
		LastName:     "Dupont",
		Email:        fmt.Sprintf("marie%d@example.com", seq),
		TotalDonated: decimal.Zero,
		Frequency:    "unique",
		Tag:          "nouveau",
	}
	require.NoError(t, db.Create(&donor).Error)

	return campaign, donor
}

func TestDonationDAO_InsertWithLedgerUpdate(t *testing.T) {
	db := startPostgres(t)
	dao := NewDonationDAO(db)
	campaignDAO := NewCampaignDAO(db)

	t.Run("two donations accumulate in the campaign and donor rows", func(t *testing.T) {
		campaign, donor := seedCampaign(t, db, "1000.00")

		for _, amount := range []string{"250.00", "100.50"} {
			_, err := dao.InsertWithLedgerUpdate(context.Background(), Donation{
				CampaignID: campaign.ID,
				DonorID:    donor.ID,
				Amount:     decimal.RequireFromString(amount),
				Status:     "completed",
			})
			require.NoError(t, err)
		}

		reloaded, err := campaignDAO.FindByID(context.Background(), campaign.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.Raised.Equal(decimal.RequireFromString("350.50")),
			"expected raised 350.50, got %s", reloaded.Raised)

		var reloadedDonor Donor
		require.NoError(t, db.First(&reloadedDonor, donor.ID).Error)
		assert.True(t, reloadedDonor.TotalDonated.Equal(decimal.RequireFromString("350.50")))
		assert.NotNil(t, reloadedDonor.LastDonation)

		donations, err := dao.FindByCampaignID(context.Background(), campaign.ID)
		require.NoError(t, err)
		assert.Len(t, donations, 2)
	})

	t.Run("unknown campaign commits nothing", func(t *testing.T) {
		_, donor := seedCampaign(t, db, "500.00")
		before := donor.TotalDonated

		_, err := dao.InsertWithLedgerUpdate(context.Background(), Donation{
			CampaignID: 999999,
			DonorID:    donor.ID,
			Amount:     decimal.RequireFromString("10.00"),
			Status:     "completed",
		})
		assert.ErrorIs(t, err, ErrCampaignNotFound)

		var reloadedDonor Donor
		require.NoError(t, db.First(&reloadedDonor, donor.ID).Error)
		assert.True(t, reloadedDonor.TotalDonated.Equal(before), "donor total must be untouched on rollback")

		var count int64
		require.NoError(t, db.Model(&Donation{}).Where("donor_id = ?", donor.ID).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("unknown donor rolls back the raised increment", func(t *testing.T) {
		campaign, _ := seedCampaign(t, db, "500.00")

		_, err := dao.InsertWithLedgerUpdate(context.Background(), Donation{
			CampaignID: campaign.ID,
			DonorID:    999999,
			Amount:     decimal.RequireFromString("10.00"),
			Status:     "completed",
		})
		assert.ErrorIs(t, err, ErrDonorNotFound)

		reloaded, err := campaignDAO.FindByID(context.Background(), campaign.ID)
		require.NoError(t, err)
		assert.True(t, reloaded.Raised.IsZero(), "raised must be untouched on rollback")
	})
}

func TestDonorDAO_Insert_DuplicateEmail(t *testing.T) {
	db := startPostgres(t)
	dao := NewDonorDAO(db)

	donor := Donor{
		FirstName:    "Jean",
		LastName:     "Martin",
		Email:        "jean@example.com",
		TotalDonated: decimal.Zero,
		Frequency:    "unique",
		Tag:          "nouveau",
	}

	_, err := dao.Insert(context.Background(), donor)
	require.NoError(t, err)

	_, err = dao.Insert(context.Background(), donor)
	assert.ErrorIs(t, err, ErrDonorEmailExists)
}

// Concurrent donations against one campaign must all land in the raised
// total: the increment runs server-side, so no interleaving can drop one.
func TestDonationDAO_InsertWithLedgerUpdate_Concurrent(t *testing.T) {
	db := startPostgres(t)
	dao := NewDonationDAO(db)
	campaignDAO := NewCampaignDAO(db)

	campaign, donor := seedCampaign(t, db, "10000.00")

	const workers = 20
	amount := decimal.RequireFromString("12.34")

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := dao.InsertWithLedgerUpdate(context.Background(), Donation{
				CampaignID: campaign.ID,
				DonorID:    donor.ID,
				Amount:     amount,
				Status:     "completed",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	reloaded, err := campaignDAO.FindByID(context.Background(), campaign.ID)
	require.NoError(t, err)

	want := amount.Mul(decimal.NewFromInt(workers))
	assert.True(t, reloaded.Raised.Equal(want),
		"expected raised %s after %d concurrent donations, got %s", want, workers, reloaded.Raised)

	donations, err := dao.FindByCampaignID(context.Background(), campaign.ID)
	require.NoError(t, err)
	assert.Len(t, donations, workers)
}
