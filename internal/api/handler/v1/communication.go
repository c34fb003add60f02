package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/request"
	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/service"
)

type CommunicationService interface {
	SendSMS(ctx context.Context, campaignIDs []uint, message string) (service.BulkSendResult, error)
	SendEmail(ctx context.Context, campaignIDs []uint, content string) (service.BulkSendResult, error)
}

type CommunicationHandler struct {
	svc CommunicationService
}

func NewCommunicationHandler(svc CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{
		svc: svc,
	}
}

// HandleSendSMS godoc
// @Summary      Send a bulk SMS
// @Description  Estimates recipients from the campaigns' contact counts and hands off to the messaging gateway.
// @Tags         communications
// @Accept       json
// @Produce      json
// @Param        input  body      request.SendSMSRequest  true  "message and campaign IDs"
// @Success      200    {object}  response.BulkSendResponse
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /communications/sms [post]
// @Security     BearerAuth
func (h *CommunicationHandler) HandleSendSMS(ctx *gin.Context) {
	var input request.SendSMSRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	result, err := h.svc.SendSMS(ctx.Request.Context(), input.CampaignIDs, input.Message)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "IDs", input.CampaignIDs))
			return
		}

		err = fmt.Errorf("HandleSendSMS -> h.svc.SendSMS -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.BulkSendResponse{
		Success:    true,
		Message:    fmt.Sprintf("SMS envoyé à %v contacts", result.Sent),
		Recipients: result.Sent,
		Cost:       result.Cost,
	})
}

// HandleSendEmail godoc
// @Summary      Send a bulk email
// @Tags         communications
// @Accept       json
// @Produce      json
// @Param        input  body      request.SendEmailRequest  true  "subject, content and campaign IDs"
// @Success      200    {object}  response.BulkSendResponse
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /communications/email [post]
// @Security     BearerAuth
func (h *CommunicationHandler) HandleSendEmail(ctx *gin.Context) {
	var input request.SendEmailRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	content := input.Subject + "\n\n" + input.Content
	result, err := h.svc.SendEmail(ctx.Request.Context(), input.CampaignIDs, content)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "IDs", input.CampaignIDs))
			return
		}

		err = fmt.Errorf("HandleSendEmail -> h.svc.SendEmail -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.BulkSendResponse{
		Success:    true,
		Message:    fmt.Sprintf("Email envoyé à %v contacts", result.Sent),
		Recipients: result.Sent,
		Cost:       result.Cost,
	})
}
