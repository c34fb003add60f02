package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/giveplus/giveplus-api/internal/api/handler/v1/response"
	"github.com/giveplus/giveplus-api/internal/domain"
)

type StatsService interface {
	GetAssociationStats(ctx context.Context, associationID uint, recentLimit int) (domain.AssociationStats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{
		svc: svc,
	}
}

// HandleGetStats godoc
// @Summary      Association dashboard statistics
// @Description  Aggregated from the current persisted state on every call.
// @Tags         stats
// @Produce      json
// @Param        limit  query     int  false  "recent donations to include, default 10"
// @Success      200  {object}  domain.AssociationStats
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /stats [get]
// @Security     BearerAuth
func (h *StatsHandler) HandleGetStats(ctx *gin.Context) {
	scope, respErr := associationScope(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid limit: %w", err)))
			return
		}
		limit = parsed
	}

	stats, err := h.svc.GetAssociationStats(ctx.Request.Context(), scope, limit)
	if err != nil {
		err = fmt.Errorf("HandleGetStats -> h.svc.GetAssociationStats -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
