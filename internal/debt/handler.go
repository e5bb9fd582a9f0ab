package debt

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

// Handler handles HTTP requests for debt operations
type Handler struct {
	service *Service
}

// NewHandler creates a new debt handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for debt endpoints. Review decisions are
// admin-only; proof uploads come from chapter presidents.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Post("/{id}/proof", h.UploadProof)

	r.With(mw.RequireAdmin).Post("/{id}/approve", h.Approve)
	r.With(mw.RequireAdmin).Post("/{id}/reject", h.Reject)
	r.With(mw.RequireAdmin).Post("/overdue/sweep", h.SweepOverdue)

	return r
}

// List handles GET /debts
// @Summary      List debts
// @Description  Get a paginated list of debts filtered by chapter, status or batch
// @Tags         debts
// @Produce      json
// @Param        chapter_id query int false "Chapter ID"
// @Param        status query string false "Debt status" Enums(PENDING, IN_REVIEW, APPROVED, OVERDUE)
// @Param        batch_id query string false "Distribution batch ID"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]DebtResponse}
// @Router       /debts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var chapterID *int64
	if v := r.URL.Query().Get("chapter_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.BadRequest(w, "Invalid chapter ID")
			return
		}
		chapterID = &id
	}

	var status *Status
	if v := r.URL.Query().Get("status"); v != "" {
		s := Status(v)
		if s != StatusPending && s != StatusInReview && s != StatusApproved && s != StatusOverdue {
			response.BadRequest(w, "Invalid status filter")
			return
		}
		status = &s
	}

	var batchID *uuid.UUID
	if v := r.URL.Query().Get("batch_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(w, "Invalid batch ID")
			return
		}
		batchID = &id
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	debts, total, err := h.service.List(r.Context(), chapterID, status, batchID, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list debts")
		return
	}

	debtResponses := make([]*DebtResponse, len(debts))
	for i, d := range debts {
		debtResponses[i] = d.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, debtResponses, meta)
}

// GetByID handles GET /debts/{id}
// @Summary      Get debt by ID
// @Tags         debts
// @Produce      json
// @Param        id path int true "Debt ID"
// @Success      200 {object} response.APIResponse{data=DebtResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /debts/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid debt ID")
		return
	}

	debt, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDebtNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get debt")
		return
	}

	response.JSON(w, http.StatusOK, debt.ToResponse())
}

// UploadProof handles POST /debts/{id}/proof
// @Summary      Upload payment proof
// @Description  Attach a payment proof file reference; the debt moves to IN_REVIEW
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        id path int true "Debt ID"
// @Param        request body UploadProofRequest true "Proof upload request"
// @Success      200 {object} response.APIResponse{data=DebtResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /debts/{id}/proof [post]
func (h *Handler) UploadProof(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid debt ID")
		return
	}

	var req UploadProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.ProofFileURL == "" {
		response.BadRequest(w, "Proof file URL is required")
		return
	}

	debt, err := h.service.UploadProof(r.Context(), id, req.ProofFileURL)
	if err != nil {
		if errors.Is(err, ErrDebtNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidStatusChange) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to upload proof")
		return
	}

	response.JSON(w, http.StatusOK, debt.ToResponse())
}

// Approve handles POST /debts/{id}/approve
// @Summary      Approve a debt payment
// @Description  Admin approves a reviewed payment proof; APPROVED is terminal
// @Tags         debts
// @Produce      json
// @Param        id path int true "Debt ID"
// @Success      200 {object} response.APIResponse{data=DebtResponse}
// @Failure      404 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /debts/{id}/approve [post]
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid debt ID")
		return
	}

	debt, err := h.service.Approve(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrDebtNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidStatusChange) || errors.Is(err, ErrNoProofAttached) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to approve debt")
		return
	}

	response.JSON(w, http.StatusOK, debt.ToResponse())
}

// Reject handles POST /debts/{id}/reject
// @Summary      Reject a debt payment
// @Description  Admin rejects a reviewed proof with a reason; the debt returns to PENDING
// @Tags         debts
// @Accept       json
// @Produce      json
// @Param        id path int true "Debt ID"
// @Param        request body RejectDebtRequest true "Rejection reason"
// @Success      200 {object} response.APIResponse{data=DebtResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      404 {object} response.APIResponse
// @Router       /debts/{id}/reject [post]
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid debt ID")
		return
	}

	var req RejectDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Reason == "" {
		response.BadRequest(w, "Rejection reason is required")
		return
	}

	debt, err := h.service.Reject(r.Context(), id, req.Reason)
	if err != nil {
		if errors.Is(err, ErrDebtNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidStatusChange) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to reject debt")
		return
	}

	response.JSON(w, http.StatusOK, debt.ToResponse())
}

// SweepOverdue handles POST /debts/overdue/sweep
// @Summary      Mark past-due debts overdue
// @Description  Flip every pending debt past its due date to OVERDUE
// @Tags         debts
// @Produce      json
// @Success      200 {object} response.APIResponse
// @Router       /debts/overdue/sweep [post]
func (h *Handler) SweepOverdue(w http.ResponseWriter, r *http.Request) {
	count, err := h.service.MarkOverdue(r.Context())
	if err != nil {
		response.InternalError(w, "Failed to sweep overdue debts")
		return
	}

	response.JSON(w, http.StatusOK, map[string]int64{"debts_marked_overdue": count})
}
