package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/request"
	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type DonationService interface {
	RecordDonation(ctx context.Context, donation domain.Donation, identity *service.DonorIdentity) (domain.Donation, error)
	GetDonationsByCampaign(ctx context.Context, campaignID uint) ([]domain.Donation, error)
	GetRecentDonations(ctx context.Context, limit int) ([]domain.Donation, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{
		svc: svc,
	}
}

// HandleCreateDonation godoc
// @Summary      Record a donation
// @Description  Persists the donation and increments the campaign's raised total in one transaction.
// @Tags         donations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDonationRequest  true  "donation details"
// @Success      201    {object}  domain.Donation
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /donations [post]
// @Security     BearerAuth
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	var input request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid amount: %w", err)))
		return
	}

	var identity *service.DonorIdentity
	if input.DonorID == 0 {
		identity = &service.DonorIdentity{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Phone:     input.Phone,
		}
	}

	donation, err := h.svc.RecordDonation(ctx.Request.Context(), domain.Donation{
		CampaignID:  input.CampaignID,
		DonorID:     input.DonorID,
		Amount:      amount,
		Description: input.Description,
	}, identity)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAmount):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		case errors.Is(err, service.ErrCampaignNotFound):
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", input.CampaignID))
		case errors.Is(err, service.ErrDonorNotFound):
			response.RenderErr(ctx, response.ErrNotFound("donor", "ID", input.DonorID))
		default:
			err = fmt.Errorf("HandleCreateDonation -> h.svc.RecordDonation -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

// HandleGetCampaignDonations godoc
// @Summary      Donations of a campaign
// @Tags         donations
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {array}   domain.Donation
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/campaign/{campaignID} [get]
// @Security     BearerAuth
func (h *DonationHandler) HandleGetCampaignDonations(ctx *gin.Context) {
	campaignID, respErr := parseUintParam(ctx, "campaignID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	donations, err := h.svc.GetDonationsByCampaign(ctx.Request.Context(), campaignID)
	if err != nil {
		err = fmt.Errorf("HandleGetCampaignDonations -> h.svc.GetDonationsByCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donations)
}

// HandleGetRecentDonations godoc
// @Summary      Most recent donations
// @Tags         donations
// @Produce      json
// @Param        limit  query     int  false  "max rows, default 10, capped at 50"
// @Success      200  {array}   domain.Donation
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/recent [get]
// @Security     BearerAuth
func (h *DonationHandler) HandleGetRecentDonations(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
			return
		}
		limit = parsed
	}

	donations, err := h.svc.GetRecentDonations(ctx.Request.Context(), limit)
	if err != nil {
		err = fmt.Errorf("HandleGetRecentDonations -> h.svc.GetRecentDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donations)
}
