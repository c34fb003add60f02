package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/request"
	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.Campaign, error)
	GetCampaignsByAssociation(ctx context.Context, associationID uint) ([]domain.Campaign, error)
	GetProgress(ctx context.Context, id uint, now time.Time) (domain.CampaignProgress, error)
}

type CampaignHandler struct {
	svc CampaignService
}

func NewCampaignHandler(svc CampaignService) *CampaignHandler {
	return &CampaignHandler{
		svc: svc,
	}
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign
// @Description  Creates a fundraising campaign under the authenticated user's association
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCampaignRequest  true  "campaign details"
// @Success      201    {object}  domain.Campaign
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /campaigns [post]
// @Security     BearerAuth
func (h *CampaignHandler) HandleCreateCampaign(ctx *gin.Context) {
	scope, respErr := associationScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if input.AssociationID != scope {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("association %v is outside the caller's scope", input.AssociationID)))
		return
	}

	target, err := decimal.NewFromString(input.Target)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid target: %w", err)))
		return
	}

	var deadline *time.Time
	if input.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid deadline: %w", err)))
			return
		}
		deadline = &parsed
	}

	campaign, err := h.svc.CreateCampaign(ctx.Request.Context(), domain.Campaign{
		AssociationID: input.AssociationID,
		Title:         input.Title,
		Description:   input.Description,
		Target:        target,
		Deadline:      deadline,
		ContactCount:  input.ContactCount,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidTarget) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		if errors.Is(err, service.ErrAssociationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("association", "ID", input.AssociationID))
			return
		}

		err = fmt.Errorf("HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign godoc
// @Summary      Get a campaign
// @Tags         campaigns
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID} [get]
// @Security     BearerAuth
func (h *CampaignHandler) HandleGetCampaign(ctx *gin.Context) {
	campaignID, respErr := parseUintParam(ctx, "campaignID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), campaignID)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
			return
		}

		err = fmt.Errorf("HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns godoc
// @Summary      List campaigns
// @Description  Lists campaigns of the given association, newest first. Defaults to the caller's own association.
// @Tags         campaigns
// @Produce      json
// @Param        associationId  query     int  false  "Association ID"
// @Success      200  {array}   domain.Campaign
// @Failure      400  {object}  response.Err
// @Failure      403  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns [get]
// @Security     BearerAuth
func (h *CampaignHandler) HandleListCampaigns(ctx *gin.Context) {
	scope, respErr := associationScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	associationID := scope
	if raw := ctx.Query("associationId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid associationId: %w", err)))
			return
		}
		associationID = uint(parsed)
	}

	if associationID != scope {
		response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("association %v is outside the caller's scope", associationID)))
		return
	}

	campaigns, err := h.svc.GetCampaignsByAssociation(ctx.Request.Context(), associationID)
	if err != nil {
		err = fmt.Errorf("HandleListCampaigns -> h.svc.GetCampaignsByAssociation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaigns)
}

// HandleGetCampaignProgress godoc
// @Summary      Campaign progress
// @Description  Read-only progress metrics. The stored raised amount is never clamped; the percent is, for display.
// @Tags         campaigns
// @Produce      json
// @Param        campaignID  path      int  true  "Campaign ID"
// @Success      200  {object}  domain.CampaignProgress
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{campaignID}/progress [get]
// @Security     BearerAuth
func (h *CampaignHandler) HandleGetCampaignProgress(ctx *gin.Context) {
	campaignID, respErr := parseUintParam(ctx, "campaignID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	progress, err := h.svc.GetProgress(ctx.Request.Context(), campaignID, time.Now())
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", campaignID))
			return
		}

		err = fmt.Errorf("HandleGetCampaignProgress -> h.svc.GetProgress -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, progress)
}
