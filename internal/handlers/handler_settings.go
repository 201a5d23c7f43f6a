package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// settingsHandler handles HTTP requests for platform policies.
type settingsHandler struct {
	policyService portssvc.PolicySvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(policyService portssvc.PolicySvcFacade) *settingsHandler {
	return &settingsHandler{
		policyService: policyService,
	}
}

// getFeePolicy godoc
// @Summary Get the platform fee policy
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.FeePolicyResponse "The current fee policy"
// @Router /settings/fee-policy [get]
func (h *settingsHandler) getFeePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policy, err := h.policyService.GetFeePolicy(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "retrieve fee policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToFeePolicyResponse(policy))
}

// getRevisionPolicy godoc
// @Summary Get the revision and deadline policy
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.RevisionPolicyResponse "The current revision policy"
// @Router /settings/revision-policy [get]
func (h *settingsHandler) getRevisionPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policy, err := h.policyService.GetRevisionPolicy(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "retrieve revision policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToRevisionPolicyResponse(policy))
}

// getApprovalPolicy godoc
// @Summary Get the approval policy
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.ApprovalPolicyResponse "The current approval policy"
// @Router /settings/approval-policy [get]
func (h *settingsHandler) getApprovalPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policy, err := h.policyService.GetApprovalPolicy(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "retrieve approval policy")
		return
	}

	c.JSON(http.StatusOK, dto.ToApprovalPolicyResponse(policy))
}

// updateFeePolicy godoc
// @Summary Update the platform fee policy
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   policy body dto.UpdateFeePolicyRequest true "New fee policy"
// @Success 200 {object} dto.FeePolicyResponse "The updated fee policy"
// @Failure 400 {object} map[string]string "Invalid policy values"
// @Router /admin/settings/fee-policy [put]
func (h *settingsHandler) updateFeePolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateFeePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateFeePolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.UpdateFeePolicy(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, logger, err, "update fee policy")
		return
	}

	logger.Info("Fee policy updated", slog.String("admin_id", adminID))
	c.JSON(http.StatusOK, dto.ToFeePolicyResponse(policy))
}

// updateRevisionPolicy godoc
// @Summary Update the revision and deadline policy
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   policy body dto.UpdateRevisionPolicyRequest true "New revision policy"
// @Success 200 {object} dto.RevisionPolicyResponse "The updated revision policy"
// @Failure 400 {object} map[string]string "Invalid policy values"
// @Router /admin/settings/revision-policy [put]
func (h *settingsHandler) updateRevisionPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateRevisionPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateRevisionPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.UpdateRevisionPolicy(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, logger, err, "update revision policy")
		return
	}

	logger.Info("Revision policy updated", slog.String("admin_id", adminID))
	c.JSON(http.StatusOK, dto.ToRevisionPolicyResponse(policy))
}

// updateApprovalPolicy godoc
// @Summary Update the approval policy
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   policy body dto.UpdateApprovalPolicyRequest true "New approval policy"
// @Success 200 {object} dto.ApprovalPolicyResponse "The updated approval policy"
// @Failure 400 {object} map[string]string "Invalid policy values"
// @Router /admin/settings/approval-policy [put]
func (h *settingsHandler) updateApprovalPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateApprovalPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for UpdateApprovalPolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	adminID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.UpdateApprovalPolicy(c.Request.Context(), adminID, req)
	if err != nil {
		respondError(c, logger, err, "update approval policy")
		return
	}

	logger.Info("Approval policy updated", slog.String("admin_id", adminID))
	c.JSON(http.StatusOK, dto.ToApprovalPolicyResponse(policy))
}

// registerSettingsRoutes registers the read-only policy routes
func registerSettingsRoutes(group *gin.RouterGroup, policyService portssvc.PolicySvcFacade) {
	h := newSettingsHandler(policyService)

	settings := group.Group("/settings")
	{
		settings.GET("/fee-policy", h.getFeePolicy)
		settings.GET("/revision-policy", h.getRevisionPolicy)
		settings.GET("/approval-policy", h.getApprovalPolicy)
	}
}

// registerAdminSettingsRoutes registers the admin policy update routes
func registerAdminSettingsRoutes(group *gin.RouterGroup, policyService portssvc.PolicySvcFacade) {
	h := newSettingsHandler(policyService)

	settings := group.Group("/settings")
	{
		settings.PUT("/fee-policy", h.updateFeePolicy)
		settings.PUT("/revision-policy", h.updateRevisionPolicy)
		settings.PUT("/approval-policy", h.updateApprovalPolicy)
	}
}
