package distribution

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	mw "github.com/elarca/treasury/pkg/middleware"
	"github.com/elarca/treasury/pkg/response"
)

// Handler handles HTTP requests for distribution operations
type Handler struct {
	service *Service
}

// NewHandler creates a new distribution handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for distribution endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/preview", h.Preview)
	r.Post("/", h.Commit)
	r.Get("/", h.ListBatches)
	r.Get("/{id}", h.GetBatch)

	return r
}

// Preview handles POST /distributions/preview
// @Summary      Preview a distribution
// @Description  Compute per-chapter shares of a total amount proportionally to membership, without persisting anything
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        request body PreviewRequest true "Preview request"
// @Success      200 {object} response.APIResponse{data=PreviewResponse}
// @Failure      409 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /distributions/preview [post]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	plan, err := h.service.Preview(r.Context(), req.TotalAmount)
	if err != nil {
		writeDistributionError(w, err, "Failed to preview distribution")
		return
	}

	response.JSON(w, http.StatusOK, plan.ToResponse())
}

// Commit handles POST /distributions
// @Summary      Commit a distribution
// @Description  Recompute the plan against the current roster and create one pending debt per active chapter atomically. Supports the Idempotency-Key header: a repeated key returns the original batch without creating debts.
// @Tags         distributions
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key"
// @Param        request body CommitRequest true "Commit request"
// @Success      200 {object} response.APIResponse{data=CommitResponse} "Replayed previous commit"
// @Success      201 {object} response.APIResponse{data=CommitResponse}
// @Failure      409 {object} response.APIResponse
// @Failure      422 {object} response.APIResponse
// @Router       /distributions [post]
func (h *Handler) Commit(w http.ResponseWriter, r *http.Request) {
	actor, ok := mw.GetActor(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing actor identity")
		return
	}

	var req CommitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")

	batch, replayed, err := h.service.Commit(r.Context(), actor.ID, idempotencyKey, &req)
	if err != nil {
		writeDistributionError(w, err, "Failed to commit distribution")
		return
	}

	status := http.StatusCreated
	if replayed {
		status = http.StatusOK
	}

	response.JSON(w, status, batch.ToCommitResponse())
}

// ListBatches handles GET /distributions
// @Summary      List distribution batches
// @Tags         distributions
// @Produce      json
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]BatchResponse}
// @Router       /distributions [get]
func (h *Handler) ListBatches(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	batches, total, err := h.service.ListBatches(r.Context(), page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list batches")
		return
	}

	batchResponses := make([]*BatchResponse, len(batches))
	for i, b := range batches {
		batchResponses[i] = b.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, batchResponses, meta)
}

// GetBatch handles GET /distributions/{id}
// @Summary      Get a distribution batch
// @Tags         distributions
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} response.APIResponse{data=BatchResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /distributions/{id} [get]
func (h *Handler) GetBatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid batch ID")
		return
	}

	batch, err := h.service.GetBatch(r.Context(), id)
	if err != nil {
		response.InternalError(w, "Failed to get batch")
		return
	}
	if batch == nil {
		response.NotFound(w, "batch not found")
		return
	}

	response.JSON(w, http.StatusOK, batch.ToResponse())
}

// writeDistributionError maps service errors to structured responses
func writeDistributionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		response.UnprocessableEntity(w, err.Error())
	case errors.Is(err, ErrNoActiveChapters), errors.Is(err, ErrNoMembers):
		response.Conflict(w, err.Error())
	case errors.Is(err, ErrPersistenceFailure):
		response.InternalError(w, err.Error())
	default:
		response.InternalError(w, fallback)
	}
}
