package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/khaledkhbro/microjob-backend/internal/core/ports/services"
	"github.com/khaledkhbro/microjob-backend/internal/dto"
	"github.com/khaledkhbro/microjob-backend/internal/middleware"
)

// workProofHandler handles HTTP requests related to work proofs.
type workProofHandler struct {
	workProofService portssvc.WorkProofSvcFacade
}

// newWorkProofHandler creates a new workProofHandler.
func newWorkProofHandler(workProofService portssvc.WorkProofSvcFacade) *workProofHandler {
	return &workProofHandler{
		workProofService: workProofService,
	}
}

// submitWorkProof godoc
// @Summary Submit work for a job
// @Description Records a work submission against the worker's accepted application
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proof body dto.SubmitWorkProofRequest true "Work submission"
// @Success 201 {object} dto.WorkProofResponse "The created work proof"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Work already submitted for this application"
// @Router /work-proofs [post]
func (h *workProofHandler) submitWorkProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitWorkProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for SubmitWorkProof", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.SubmitWorkProof(c.Request.Context(), workerID, req)
	if err != nil {
		respondError(c, logger, err, "submit work proof")
		return
	}

	logger.Info("Work proof submitted", slog.String("proof_id", proof.ProofID), slog.String("status", string(proof.Status)))
	c.JSON(http.StatusCreated, dto.ToWorkProofResponse(proof))
}

// getWorkProof godoc
// @Summary Get a work proof
// @Description Retrieves a work proof by ID; restricted to its worker, employer or an admin
// @Tags work-proofs
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Success 200 {object} dto.WorkProofResponse "The work proof"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Work proof not found"
// @Router /work-proofs/{proofID} [get]
func (h *workProofHandler) getWorkProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.GetWorkProofByID(c.Request.Context(), proofID, userID, middleware.IsAdmin(c))
	if err != nil {
		respondError(c, logger, err, "retrieve work proof")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
}

// listMyWorkProofs godoc
// @Summary List my work proofs
// @Description Retrieves a paginated list of the authenticated worker's submissions
// @Tags work-proofs
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListWorkProofsResponse "The worker's submissions"
// @Router /work-proofs [get]
func (h *workProofHandler) listMyWorkProofs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListWorkProofsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.workProofService.ListWorkProofsByWorker(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "list work proofs")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// listJobWorkProofs godoc
// @Summary List work proofs on a job
// @Description Retrieves a paginated list of submissions on a job; restricted to the job's employer or an admin
// @Tags work-proofs
// @Produce  json
// @Param   jobID path string true "Job ID"
// @Param   status query []string false "Status filter"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListWorkProofsResponse "The job's submissions"
// @Failure 403 {object} map[string]string "Forbidden"
// @Router /jobs/{jobID}/work-proofs [get]
func (h *workProofHandler) listJobWorkProofs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobID := c.Param("jobID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListWorkProofsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.workProofService.ListWorkProofsByJob(c.Request.Context(), jobID, userID, params)
	if err != nil {
		respondError(c, logger, err, "list work proofs")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// reviewAction binds the shared review payload and runs one of the employer
// review operations (approve, reject, request revision).
func (h *workProofHandler) reviewAction(c *gin.Context, action string,
	run func(ctx *gin.Context, proofID, employerID string, req dto.ReviewDecisionRequest) error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	var req dto.ReviewDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for review action", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	employerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := run(c, proofID, employerID, req); err != nil {
		respondError(c, logger, err, action)
		return
	}
}

// approveWorkProof godoc
// @Summary Approve a work proof
// @Description Approves a submission and releases payment to the worker
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Param   review body dto.ReviewDecisionRequest true "Optional feedback"
// @Success 200 {object} dto.WorkProofResponse "The approved work proof"
// @Failure 409 {object} map[string]string "Proof is not reviewable"
// @Failure 502 {object} map[string]string "Payment processing failed"
// @Router /work-proofs/{proofID}/approve [post]
func (h *workProofHandler) approveWorkProof(c *gin.Context) {
	h.reviewAction(c, "approve work proof", func(ctx *gin.Context, proofID, employerID string, req dto.ReviewDecisionRequest) error {
		proof, err := h.workProofService.ApproveWorkProof(ctx.Request.Context(), proofID, employerID, req)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
		return nil
	})
}

// rejectWorkProof godoc
// @Summary Reject a work proof
// @Description Rejects a submission and opens the worker's response window
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Param   review body dto.ReviewDecisionRequest true "Rejection feedback (required)"
// @Success 200 {object} dto.WorkProofResponse "The rejected work proof"
// @Failure 400 {object} map[string]string "Feedback is required"
// @Router /work-proofs/{proofID}/reject [post]
func (h *workProofHandler) rejectWorkProof(c *gin.Context) {
	h.reviewAction(c, "reject work proof", func(ctx *gin.Context, proofID, employerID string, req dto.ReviewDecisionRequest) error {
		proof, err := h.workProofService.RejectWorkProof(ctx.Request.Context(), proofID, employerID, req)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
		return nil
	})
}

// requestRevision godoc
// @Summary Request a revision
// @Description Asks the worker to revise the submission, bounded by the revision policy
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Param   review body dto.ReviewDecisionRequest true "Revision feedback (required)"
// @Success 200 {object} dto.WorkProofResponse "The work proof awaiting revision"
// @Failure 422 {object} map[string]string "Revision limit reached"
// @Router /work-proofs/{proofID}/request-revision [post]
func (h *workProofHandler) requestRevision(c *gin.Context) {
	h.reviewAction(c, "request revision", func(ctx *gin.Context, proofID, employerID string, req dto.ReviewDecisionRequest) error {
		proof, err := h.workProofService.RequestRevision(ctx.Request.Context(), proofID, employerID, req)
		if err != nil {
			return err
		}
		ctx.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
		return nil
	})
}

// resubmitWork godoc
// @Summary Resubmit revised work
// @Description Replaces the submission content after a revision request
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Param   work body dto.ResubmitWorkRequest true "Revised submission"
// @Success 200 {object} dto.WorkProofResponse "The resubmitted work proof"
// @Failure 409 {object} map[string]string "Proof is not awaiting revision"
// @Router /work-proofs/{proofID}/resubmit [post]
func (h *workProofHandler) resubmitWork(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	var req dto.ResubmitWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for ResubmitWork", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.ResubmitWork(c.Request.Context(), proofID, workerID, req)
	if err != nil {
		respondError(c, logger, err, "resubmit work")
		return
	}

	logger.Info("Work resubmitted", slog.String("proof_id", proof.ProofID), slog.Int("submission_number", proof.SubmissionNumber))
	c.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
}

// acceptRejection godoc
// @Summary Accept a rejection
// @Description Finalizes a rejection; the employer is refunded when automatic refunds are enabled
// @Tags work-proofs
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Success 200 {object} dto.WorkProofResponse "The finalized work proof"
// @Failure 409 {object} map[string]string "Proof is not rejected"
// @Router /work-proofs/{proofID}/accept-rejection [post]
func (h *workProofHandler) acceptRejection(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	workerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.AcceptRejection(c.Request.Context(), proofID, workerID)
	if err != nil {
		respondError(c, logger, err, "accept rejection")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
}

// cancelWorkProof godoc
// @Summary Cancel a submission
// @Description Withdraws the submission and refunds the employer
// @Tags work-proofs
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Success 200 {object} dto.WorkProofResponse "The cancelled work proof"
// @Failure 409 {object} map[string]string "Proof cannot be cancelled in its current state"
// @Router /work-proofs/{proofID}/cancel [post]
func (h *workProofHandler) cancelWorkProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	workerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.CancelByWorker(c.Request.Context(), proofID, workerID)
	if err != nil {
		respondError(c, logger, err, "cancel work proof")
		return
	}

	c.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
}

// disputeWorkProof godoc
// @Summary Dispute a rejection
// @Description Contests a rejection or revision request, freezing the proof until an admin resolves it
// @Tags work-proofs
// @Accept  json
// @Produce  json
// @Param   proofID path string true "Work Proof ID"
// @Param   dispute body dto.DisputeWorkRequest true "Dispute details"
// @Success 200 {object} dto.WorkProofResponse "The disputed work proof"
// @Failure 409 {object} map[string]string "An active dispute already exists"
// @Router /work-proofs/{proofID}/dispute [post]
func (h *workProofHandler) disputeWorkProof(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	proofID := c.Param("proofID")

	var req dto.DisputeWorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for DisputeWorkProof", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	workerID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	proof, err := h.workProofService.DisputeWorkProof(c.Request.Context(), proofID, workerID, req)
	if err != nil {
		respondError(c, logger, err, "dispute work proof")
		return
	}

	logger.Info("Work proof disputed", slog.String("proof_id", proof.ProofID))
	c.JSON(http.StatusOK, dto.ToWorkProofResponse(proof))
}

// registerWorkProofRoutes registers work proof lifecycle routes
func registerWorkProofRoutes(group *gin.RouterGroup, workProofService portssvc.WorkProofSvcFacade) {
	h := newWorkProofHandler(workProofService)

	proofs := group.Group("/work-proofs")
	{
		proofs.POST("", h.submitWorkProof)
		proofs.GET("", h.listMyWorkProofs)
		proofs.GET("/:proofID", h.getWorkProof)
		proofs.POST("/:proofID/approve", h.approveWorkProof)
		proofs.POST("/:proofID/reject", h.rejectWorkProof)
		proofs.POST("/:proofID/request-revision", h.requestRevision)
		proofs.POST("/:proofID/resubmit", h.resubmitWork)
		proofs.POST("/:proofID/accept-rejection", h.acceptRejection)
		proofs.POST("/:proofID/cancel", h.cancelWorkProof)
		proofs.POST("/:proofID/dispute", h.disputeWorkProof)
	}

	group.GET("/jobs/:jobID/work-proofs", h.listJobWorkProofs)
}
