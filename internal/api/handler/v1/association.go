package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
	"github.com/giveplus/giveplus-api/internal/service"
)

type AssociationService interface {
	CreateAssociation(ctx context.Context, association domain.Association) (domain.Association, error)
	GetAssociation(ctx context.Context, id uint) (domain.Association, error)
	GetAssociations(ctx context.Context) ([]domain.Association, error)
}

type AssociationHandler struct {
	svc AssociationService
}

func NewAssociationHandler(svc AssociationService) *AssociationHandler {
	return &AssociationHandler{
		svc: svc,
	}
}

type createAssociationRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

func (req *createAssociationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Description, validation.Length(0, 2000)),
	)
}

// HandleCreateAssociation godoc
// @Summary      Create an association
// @Tags         associations
// @Accept       json
// @Produce      json
// @Success      201  {object}  domain.Association
// @Failure      400  {object}  response.Err
// @Failure      409  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /associations [post]
func (h *AssociationHandler) HandleCreateAssociation(ctx *gin.Context) {
	var input createAssociationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	association, err := h.svc.CreateAssociation(ctx.Request.Context(), domain.Association{
		Name:        input.Name,
		Email:       input.Email,
		Description: input.Description,
	})
	if err != nil {
		if errors.Is(err, service.ErrAssociationEmailExists) {
			response.RenderErr(ctx, response.ErrConflict("association email already registered"))
			return
		}

		err = fmt.Errorf("HandleCreateAssociation -> h.svc.CreateAssociation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, association)
}

// HandleListAssociations godoc
// @Summary      List associations
// @Tags         associations
// @Produce      json
// @Success      200  {array}   domain.Association
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /associations [get]
// @Security     BearerAuth
func (h *AssociationHandler) HandleListAssociations(ctx *gin.Context) {
	associations, err := h.svc.GetAssociations(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListAssociations -> h.svc.GetAssociations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, associations)
}

// HandleGetAssociation godoc
// @Summary      Get an association
// @Tags         associations
// @Produce      json
// @Param        associationID  path      int  true  "Association ID"
// @Success      200  {object}  domain.Association
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /associations/{associationID} [get]
// @Security     BearerAuth
func (h *AssociationHandler) HandleGetAssociation(ctx *gin.Context) {
	associationID, respErr := parseUintParam(ctx, "associationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	association, err := h.svc.GetAssociation(ctx.Request.Context(), associationID)
	if err != nil {
		if errors.Is(err, service.ErrAssociationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("association", "ID", associationID))
			return
		}

		err = fmt.Errorf("HandleGetAssociation -> h.svc.GetAssociation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, association)
}
