package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type stubDonationService struct {
	recordFn func(ctx context.Context, donation domain.Donation, identity *service.DonorIdentity) (domain.Donation, error)
}

func (s *stubDonationService) RecordDonation(ctx context.Context, donation domain.Donation, identity *service.DonorIdentity) (domain.Donation, error) {
	return s.recordFn(ctx, donation, identity)
}

func (s *stubDonationService) GetDonationsByCampaign(context.Context, uint) ([]domain.Donation, error) {
	return nil, nil
}

func (s *stubDonationService) GetRecentDonations(context.Context, int) ([]domain.Donation, error) {
	return nil, nil
}

func postDonation(t *testing.T, svc DonationService, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/donations", NewDonationHandler(svc).HandleCreateDonation)

	req := httptest.NewRequest(http.MethodPost, "/donations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestDonationHandler_HandleCreateDonation(t *testing.T) {
	ok := &stubDonationService{
		recordFn: func(_ context.Context, donation domain.Donation, _ *service.DonorIdentity) (domain.Donation, error) {
			donation.ID = 1
			donation.Status = domain.DonationCompleted
			return donation, nil
		},
	}

	t.Run("valid donation returns 201", func(t *testing.T) {
		recorder := postDonation(t, ok, `{"campaign_id":1,"donor_id":2,"amount":"250.00"}`)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"status":"completed"`)
	})

	t.Run("non-positive amount returns 400", func(t *testing.T) {
		recorder := postDonation(t, ok, `{"campaign_id":1,"donor_id":2,"amount":"0"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("missing donor identity returns 400", func(t *testing.T) {
		recorder := postDonation(t, ok, `{"campaign_id":1,"amount":"10.00"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown campaign returns 404", func(t *testing.T) {
		svc := &stubDonationService{
			recordFn: func(context.Context, domain.Donation, *service.DonorIdentity) (domain.Donation, error) {
				return domain.Donation{}, service.ErrCampaignNotFound
			},
		}

		recorder := postDonation(t, svc, `{"campaign_id":404,"donor_id":2,"amount":"10.00"}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "campaign")
	})

	t.Run("storage failure returns opaque 500", func(t *testing.T) {
		svc := &stubDonationService{
			recordFn: func(context.Context, domain.Donation, *service.DonorIdentity) (domain.Donation, error) {
				return domain.Donation{}, errors.New("pq: connection refused")
			},
		}

		recorder := postDonation(t, svc, `{"campaign_id":1,"donor_id":2,"amount":"10.00"}`)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "connection refused")
	})
}

func TestDonationHandler_HandleGetRecentDonations_InvalidLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/donations/recent", NewDonationHandler(&stubDonationService{}).HandleGetRecentDonations)

	req := httptest.NewRequest(http.MethodGet, "/donations/recent?limit=abc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
