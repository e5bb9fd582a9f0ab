package chapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/elarca/treasury/pkg/response"
)

// Handler handles HTTP requests for chapter operations
type Handler struct {
	service *Service
}

// NewHandler creates a new chapter handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for chapter endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{id}", h.GetByID)
	r.Put("/{id}", h.Update)
	r.Post("/{id}/deactivate", h.Deactivate)
	r.Post("/{id}/reactivate", h.Reactivate)

	return r
}

// Create handles POST /chapters
// @Summary      Register a new chapter
// @Description  Register a regional chapter with its member count; new chapters join future distributions immediately
// @Tags         chapters
// @Accept       json
// @Produce      json
// @Param        request body CreateChapterRequest true "Chapter creation request"
// @Success      201 {object} response.APIResponse{data=ChapterResponse}
// @Failure      400 {object} response.APIResponse
// @Router       /chapters [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if req.Name == "" {
		response.BadRequest(w, "Chapter name is required")
		return
	}

	chapter, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidMemberCount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create chapter")
		return
	}

	response.JSON(w, http.StatusCreated, chapter.ToResponse())
}

// List handles GET /chapters
// @Summary      List chapters
// @Description  Get a paginated list of chapters, optionally filtered to active ones
// @Tags         chapters
// @Produce      json
// @Param        active query bool false "Only active chapters"
// @Param        page query int false "Page number" default(1)
// @Param        per_page query int false "Items per page" default(20)
// @Success      200 {object} response.APIResponse{data=[]ChapterResponse}
// @Router       /chapters [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	chapters, total, err := h.service.List(r.Context(), activeOnly, page, perPage)
	if err != nil {
		response.InternalError(w, "Failed to list chapters")
		return
	}

	chapterResponses := make([]*ChapterResponse, len(chapters))
	for i, c := range chapters {
		chapterResponses[i] = c.ToResponse()
	}

	totalPages := (total + perPage - 1) / perPage
	meta := &response.Meta{
		Page:       page,
		PerPage:    perPage,
		Total:      total,
		TotalPages: totalPages,
	}

	response.JSONWithMeta(w, http.StatusOK, chapterResponses, meta)
}

// GetByID handles GET /chapters/{id}
// @Summary      Get chapter by ID
// @Tags         chapters
// @Produce      json
// @Param        id path int true "Chapter ID"
// @Success      200 {object} response.APIResponse{data=ChapterResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /chapters/{id} [get]
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid chapter ID")
		return
	}

	chapter, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to get chapter")
		return
	}

	response.JSON(w, http.StatusOK, chapter.ToResponse())
}

// Update handles PUT /chapters/{id}
// @Summary      Update a chapter
// @Description  Update name, city or member count; the new member count applies to future distributions only
// @Tags         chapters
// @Accept       json
// @Produce      json
// @Param        id path int true "Chapter ID"
// @Param        request body UpdateChapterRequest true "Chapter update request"
// @Success      200 {object} response.APIResponse{data=ChapterResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /chapters/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid chapter ID")
		return
	}

	var req UpdateChapterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	chapter, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		if errors.Is(err, ErrInvalidMemberCount) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update chapter")
		return
	}

	response.JSON(w, http.StatusOK, chapter.ToResponse())
}

// Deactivate handles POST /chapters/{id}/deactivate
// @Summary      Deactivate a chapter
// @Description  Remove a chapter from future distributions; existing debts are untouched
// @Tags         chapters
// @Produce      json
// @Param        id path int true "Chapter ID"
// @Success      200 {object} response.APIResponse{data=ChapterResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /chapters/{id}/deactivate [post]
func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid chapter ID")
		return
	}

	chapter, err := h.service.Deactivate(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to deactivate chapter")
		return
	}

	response.JSON(w, http.StatusOK, chapter.ToResponse())
}

// Reactivate handles POST /chapters/{id}/reactivate
// @Summary      Reactivate a chapter
// @Tags         chapters
// @Produce      json
// @Param        id path int true "Chapter ID"
// @Success      200 {object} response.APIResponse{data=ChapterResponse}
// @Failure      404 {object} response.APIResponse
// @Router       /chapters/{id}/reactivate [post]
func (h *Handler) Reactivate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid chapter ID")
		return
	}

	chapter, err := h.service.Reactivate(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrChapterNotFound) {
			response.NotFound(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to reactivate chapter")
		return
	}

	response.JSON(w, http.StatusOK, chapter.ToResponse())
}
