package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/request"
	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
)

type DonorService interface {
	CreateDonor(ctx context.Context, donor domain.Donor) (domain.Donor, bool, error)
	GetDonors(ctx context.Context) ([]domain.Donor, error)
}

type DonorHandler struct {
	svc DonorService
}

func NewDonorHandler(svc DonorService) *DonorHandler {
	return &DonorHandler{
		svc: svc,
	}
}

// HandleCreateDonor godoc
// @Summary      Create a donor
// @Description  Idempotent on email: if a donor with the email already exists, it is returned with 200 instead of 201.
// @Tags         donors
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDonorRequest  true  "donor details"
// @Success      200    {object}  domain.Donor
// @Success      201    {object}  domain.Donor
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /donors [post]
// @Security     BearerAuth
func (h *DonorHandler) HandleCreateDonor(ctx *gin.Context) {
	var input request.CreateDonorRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donor, created, err := h.svc.CreateDonor(ctx.Request.Context(), domain.Donor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	})
	if err != nil {
		err = fmt.Errorf("HandleCreateDonor -> h.svc.CreateDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	ctx.JSON(status, donor)
}

// HandleListDonors godoc
// @Summary      List donors
// @Tags         donors
// @Produce      json
// @Success      200  {array}   domain.Donor
// @Failure      500  {object}  response.Err
// @Router       /donors [get]
// @Security     BearerAuth
func (h *DonorHandler) HandleListDonors(ctx *gin.Context) {
	donors, err := h.svc.GetDonors(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListDonors -> h.svc.GetDonors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donors)
}
