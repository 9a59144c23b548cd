package complaint

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"smartconnect/internal/pkg/response"
	"smartconnect/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateComplaint(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	created, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "CREATE_FAILED", "Failed to file complaint")
		return
	}

	response.Success(c, http.StatusCreated, created)
}

func (h *Handler) ListComplaints(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.CustomError(c, http.StatusUnauthorized, "UNAUTHORIZED", "User not authenticated")
		return
	}

	list, err := h.service.ListByCitizen(c.Request.Context(), userID)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list complaints")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) GetComplaint(c *gin.Context) {
	userID := c.GetInt64("user_id")
	role := c.GetString("role")

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid complaint ID")
		return
	}

	cmpl, err := h.service.Get(c.Request.Context(), id, userID, role)
	if err != nil {
		if errors.Is(err, ErrComplaintNotFound) || errors.Is(err, ErrNotComplaintOwner) {
			// ownership failures answer not-found so ids stay unguessable
			response.NotFound(c)
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load complaint")
		return
	}

	response.Success(c, http.StatusOK, cmpl)
}

func (h *Handler) CommunityFeed(c *gin.Context) {
	items, err := h.service.CommunityFeed(c.Request.Context())
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to load community feed")
		return
	}

	response.Success(c, http.StatusOK, items)
}

// ListForReview serves the officials review queue.
func (h *Handler) ListForReview(c *gin.Context) {
	status := Status(c.Query("status"))

	list, err := h.service.ListForReview(c.Request.Context(), status)
	if err != nil {
		response.CustomError(c, http.StatusInternalServerError, "FETCH_FAILED", "Failed to list complaints")
		return
	}

	response.Success(c, http.StatusOK, list)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.CustomError(c, http.StatusBadRequest, "INVALID_ID", "Invalid complaint ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.CustomError(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	if errs := validator.Validate(req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, ErrComplaintNotFound) {
			response.CustomError(c, http.StatusNotFound, "NOT_FOUND", "Complaint not found")
			return
		}
		if errors.Is(err, ErrInvalidTransition) {
			response.CustomError(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
			return
		}
		response.CustomError(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update status")
		return
	}

	response.Success(c, http.StatusOK, updated)
}
