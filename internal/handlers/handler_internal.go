package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// internalHandler handles service-to-service requests on the /internal group.
type internalHandler struct {
	sweeperService portssvc.SweeperSvc
}

// newInternalHandler creates a new internalHandler.
func newInternalHandler(sweeperService portssvc.SweeperSvc) *internalHandler {
	return &internalHandler{
		sweeperService: sweeperService,
	}
}

// triggerSweep godoc
// @Summary Trigger a deadline sweep
// @Description Finalizes work proofs whose rejection or revision deadline has lapsed
// @Tags internal
// @Produce  json
// @Success 200 {object} services.SweepSummary "Sweep outcome"
// @Failure 503 {object} map[string]string "Internal endpoints disabled"
// @Router /internal/sweep-deadlines [post]
func (h *internalHandler) triggerSweep(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.sweeperService.SweepExpiredDeadlines(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "sweep expired deadlines")
		return
	}

	logger.Info("Deadline sweep completed",
		slog.Int("scanned", summary.Scanned),
		slog.Int("rejections_final", summary.RejectionsFinal),
		slog.Int("revisions_final", summary.RevisionsFinal),
		slog.Int("auto_approved", summary.AutoApproved),
		slog.Int("refunded", summary.Refunded),
		slog.Int("failed", summary.Failed),
	)
	c.JSON(http.StatusOK, summary)
}

// registerInternalRoutes registers the token-guarded service routes
func registerInternalRoutes(group *gin.RouterGroup, sweeperService portssvc.SweeperSvc) {
	h := newInternalHandler(sweeperService)

	group.POST("/sweep-deadlines", h.triggerSweep)
}
