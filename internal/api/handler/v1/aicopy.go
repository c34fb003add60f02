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

type AICopyService interface {
	GenerateCopy(ctx context.Context, content, tone string) (domain.AIPrompt, error)
}

type AICopyHandler struct {
	svc AICopyService
}

func NewAICopyHandler(svc AICopyService) *AICopyHandler {
	return &AICopyHandler{
		svc: svc,
	}
}

// HandleGenerateCopy godoc
// @Summary      Generate fundraising copy
// @Description  Delegates to the text-generation collaborator and stores the prompt with its result.
// @Tags         ai
// @Accept       json
// @Produce      json
// @Param        input  body      request.GenerateCopyRequest  true  "prompt and tone"
// @Success      200    {object}  domain.AIPrompt
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /ai/generate [post]
// @Security     BearerAuth
func (h *AICopyHandler) HandleGenerateCopy(ctx *gin.Context) {
	var input request.GenerateCopyRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	tone := input.Tone
	if tone == "" {
		tone = "inspirant"
	}

	prompt, err := h.svc.GenerateCopy(ctx.Request.Context(), input.Content, tone)
	if err != nil {
		err = fmt.Errorf("HandleGenerateCopy -> h.svc.GenerateCopy -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, prompt)
}
