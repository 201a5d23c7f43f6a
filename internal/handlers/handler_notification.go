package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// notificationHandler handles HTTP requests related to notifications.
type notificationHandler struct {
	notifierService portssvc.NotifierSvc
}

// newNotificationHandler creates a new notificationHandler.
func newNotificationHandler(notifierService portssvc.NotifierSvc) *notificationHandler {
	return &notificationHandler{
		notifierService: notifierService,
	}
}

// listNotifications godoc
// @Summary List my notifications
// @Description Retrieves a paginated list of the authenticated user's notifications
// @Tags notifications
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListNotificationsResponse "The user's notifications"
// @Router /notifications [get]
func (h *notificationHandler) listNotifications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListNotificationsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.notifierService.ListNotifications(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "list notifications")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// markNotificationRead godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Produce  json
// @Param   notificationID path string true "Notification ID"
// @Success 204 "Marked read"
// @Failure 404 {object} map[string]string "Notification not found"
// @Router /notifications/{notificationID}/read [post]
func (h *notificationHandler) markNotificationRead(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	notificationID := c.Param("notificationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.notifierService.MarkRead(c.Request.Context(), notificationID, userID); err != nil {
		respondError(c, logger, err, "mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}

// registerNotificationRoutes registers notification routes
func registerNotificationRoutes(group *gin.RouterGroup, notifierService portssvc.NotifierSvc) {
	h := newNotificationHandler(notifierService)

	notifications := group.Group("/notifications")
	{
		notifications.GET("", h.listNotifications)
		notifications.POST("/:notificationID/read", h.markNotificationRead)
	}
}
