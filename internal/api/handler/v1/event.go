package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/request"
	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEventsByAssociation(ctx context.Context, associationID uint) ([]domain.Event, error)
	RegisterParticipant(ctx context.Context, participant domain.EventParticipant) (domain.EventParticipant, error)
	GetParticipants(ctx context.Context, eventID uint) ([]domain.EventParticipant, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      403    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	scope, respErr := associationScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateEventRequest
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

	date, err := time.Parse(time.RFC3339, input.Date)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid date: %w", err)))
		return
	}

	var price *decimal.Decimal
	if input.Price != "" {
		parsed, err := decimal.NewFromString(input.Price)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid price: %w", err)))
			return
		}
		price = &parsed
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		AssociationID:   input.AssociationID,
		Title:           input.Title,
		Description:     input.Description,
		Date:            date,
		Location:        input.Location,
		MaxParticipants: input.MaxParticipants,
		Price:           price,
	})
	if err != nil {
		if errors.Is(err, service.ErrAssociationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("association", "ID", input.AssociationID))
			return
		}

		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListEvents godoc
// @Summary      List events of the caller's association
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	scope, respErr := associationScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.GetEventsByAssociation(ctx.Request.Context(), scope)
	if err != nil {
		err = fmt.Errorf("HandleListEvents -> h.svc.GetEventsByAssociation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleRegisterParticipant godoc
// @Summary      Register a participant
// @Description  Fails with 409 when the event has no seats left.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                                 true  "Event ID"
// @Param        input    body      request.RegisterParticipantRequest  true  "participant"
// @Success      201  {object}  domain.EventParticipant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/participants [post]
// @Security     BearerAuth
func (h *EventHandler) HandleRegisterParticipant(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.RegisterParticipantRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	participant, err := h.svc.RegisterParticipant(ctx.Request.Context(), domain.EventParticipant{
		EventID: eventID,
		Name:    input.Name,
		Email:   input.Email,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
		case errors.Is(err, service.ErrEventFull):
			response.RenderErr(ctx, response.ErrConflict("event is full"))
		default:
			err = fmt.Errorf("HandleRegisterParticipant -> h.svc.RegisterParticipant -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, participant)
}

// HandleListParticipants godoc
// @Summary      List participants of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200  {array}   domain.EventParticipant
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /events/{eventID}/participants [get]
// @Security     BearerAuth
func (h *EventHandler) HandleListParticipants(ctx *gin.Context) {
	eventID, respErr := parseUintParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	participants, err := h.svc.GetParticipants(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "ID", eventID))
			return
		}

		err = fmt.Errorf("HandleListParticipants -> h.svc.GetParticipants -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, participants)
}
