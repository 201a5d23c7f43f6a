package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// disputeHandler handles HTTP requests related to disputes.
type disputeHandler struct {
	disputeService portssvc.DisputeSvcFacade
}

// newDisputeHandler creates a new disputeHandler.
func newDisputeHandler(disputeService portssvc.DisputeSvcFacade) *disputeHandler {
	return &disputeHandler{
		disputeService: disputeService,
	}
}

// getDispute godoc
// @Summary Get a dispute
// @Description Retrieves a dispute by ID; restricted to its parties or an admin
// @Tags disputes
// @Produce  json
// @Param   disputeID path string true "Dispute ID"
// @Success 200 {object} dto.DisputeResponse "The dispute"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Dispute not found"
// @Router /disputes/{disputeID} [get]
func (h *disputeHandler) getDispute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	disputeID := c.Param("disputeID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dispute, err := h.disputeService.GetDisputeByID(c.Request.Context(), disputeID, userID, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, logger, err, "retrieve dispute")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisputeResponse(dispute))
}

// listMyDisputes godoc
// @Summary List my disputes
// @Description Retrieves disputes the authenticated user is a party to
// @Tags disputes
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDisputesResponse "The user's disputes"
// @Router /disputes [get]
func (h *disputeHandler) listMyDisputes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListDisputesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.disputeService.ListDisputesByUser(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "list disputes")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listDisputeQueue godoc
// @Summary List the dispute queue
// @Description Retrieves a paginated, optionally status-filtered list of disputes for admins
// @Tags admin
// @Produce  json
// @Param   status query string false "Status filter"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDisputesResponse "The dispute queue"
// @Router /admin/disputes [get]
func (h *disputeHandler) listDisputeQueue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListDisputesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.disputeService.ListDisputes(c.Request.Context(), params)
	if err != nil {
		respondError(c, logger, err, "list disputes")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// startDisputeReview godoc
// @Summary Start reviewing a dispute
// @Description Moves a pending dispute under review by the requesting admin
// @Tags admin
// @Produce  json
// @Param   disputeID path string true "Dispute ID"
// @Success 200 {object} dto.DisputeResponse "The dispute under review"
// @Failure 409 {object} map[string]string "Dispute is not pending"
// @Router /admin/disputes/{disputeID}/review [post]
func (h *disputeHandler) startDisputeReview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	disputeID := c.Param("disputeID")

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dispute, err := h.disputeService.StartReview(c.Request.Context(), disputeID, adminID)
	if err != nil {
		respondError(c, logger, err, "start dispute review")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisputeResponse(dispute))
}

// escalateDispute godoc
// @Summary Escalate a dispute
// @Description Raises the dispute priority and marks it escalated
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   disputeID path string true "Dispute ID"
// @Param   escalation body dto.EscalateDisputeRequest true "Escalation reason"
// @Success 200 {object} dto.DisputeResponse "The escalated dispute"
// @Failure 409 {object} map[string]string "Dispute is not active"
// @Router /admin/disputes/{disputeID}/escalate [post]
func (h *disputeHandler) escalateDispute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	disputeID := c.Param("disputeID")

	var req dto.EscalateDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for EscalateDispute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dispute, err := h.disputeService.EscalateDispute(c.Request.Context(), disputeID, adminID, req)
	if err != nil {
		respondError(c, logger, err, "escalate dispute")
		return
	}

	c.JSON(http.StatusOK, dto.ToDisputeResponse(dispute))
}

// resolveDispute godoc
// @Summary Resolve a dispute
// @Description Applies the admin decision, moves money accordingly and finalizes the work proof
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   disputeID path string true "Dispute ID"
// @Param   resolution body dto.ResolveDisputeRequest true "Resolution decision"
// @Success 200 {object} dto.DisputeResponse "The resolved dispute"
// @Failure 409 {object} map[string]string "Dispute already resolved"
// @Failure 502 {object} map[string]string "Payment processing failed"
// @Router /admin/disputes/{disputeID}/resolve [post]
func (h *disputeHandler) resolveDispute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	disputeID := c.Param("disputeID")

	var req dto.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ResolveDispute", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dispute, err := h.disputeService.ResolveDispute(c.Request.Context(), disputeID, adminID, req)
	if err != nil {
		respondError(c, logger, err, "resolve dispute")
		return
	}

	logger.Info("Dispute resolved", slog.String("dispute_id", disputeID), slog.String("decision", string(req.Decision)))
	c.JSON(http.StatusOK, dto.ToDisputeResponse(dispute))
}

// registerDisputeRoutes registers user-facing dispute routes
func registerDisputeRoutes(group *gin.RouterGroup, disputeService portssvc.DisputeSvcFacade) {
	h := newDisputeHandler(disputeService)

	disputes := group.Group("/disputes")
	{
		disputes.GET("", h.listMyDisputes)
		disputes.GET("/:disputeID", h.getDispute)
	}
}

// registerAdminDisputeRoutes registers the admin dispute queue routes
func registerAdminDisputeRoutes(group *gin.RouterGroup, disputeService portssvc.DisputeSvcFacade) {
	h := newDisputeHandler(disputeService)

	disputes := group.Group("/disputes")
	{
		disputes.GET("", h.listDisputeQueue)
		disputes.POST("/:disputeID/review", h.startDisputeReview)
		disputes.POST("/:disputeID/escalate", h.escalateDispute)
		disputes.POST("/:disputeID/resolve", h.resolveDispute)
	}
}
