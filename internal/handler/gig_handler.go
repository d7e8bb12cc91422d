package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
	"onlydevs/internal/service"
)

// GigHandler handles gig endpoints.
type GigHandler struct {
	gigService service.GigService
}

// NewGigHandler creates a new gig handler.
func NewGigHandler(gigService service.GigService) *GigHandler {
	return &GigHandler{gigService: gigService}
}

// CreateGigRequest represents a gig creation request. ID, creation time, and
// the initial mentor list are server-generated and cannot be supplied.
type CreateGigRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Tags        []string `json:"tags"`
	Bounty      string   `json:"bounty" validate:"required"`
	Status      string   `json:"status" validate:"omitempty,oneof=open in-progress completed"`
	Author      string   `json:"author" validate:"required"`
}

// BulkUpdateGigRequest represents the bulk update form: target id plus the
// partial fields to replace.
type BulkUpdateGigRequest struct {
	ID      string          `json:"id" validate:"required"`
	Updates model.GigUpdate `json:"updates"`
}

// GigListResponse wraps the collection under its document root key.
type GigListResponse struct {
	Gigs []model.Gig `json:"gigs"`
}

// ListGigs godoc
// @Summary List all gigs, newest first
// @Tags gigs
// @Produce json
// @Success 200 {object} GigListResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs [get]
func (h *GigHandler) ListGigs(c echo.Context) error {
	gigs, err := h.gigService.ListGigs(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	if gigs == nil {
		gigs = []model.Gig{}
	}
	return c.JSON(http.StatusOK, GigListResponse{Gigs: gigs})
}

// GetGig godoc
// @Summary Get a gig by id
// @Tags gigs
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} model.Gig
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs/{id} [get]
func (h *GigHandler) GetGig(c echo.Context) error {
	gig, err := h.gigService.GetGig(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, gig)
}

// CreateGig godoc
// @Summary Post a new gig
// @Tags gigs
// @Accept json
// @Produce json
// @Param gig body CreateGigRequest true "Gig payload"
// @Success 200 {object} model.Gig
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs [post]
func (h *GigHandler) CreateGig(c echo.Context) error {
	var req CreateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), service.CreateGigInput{
		Title:       req.Title,
		Description: req.Description,
		Tags:        req.Tags,
		Bounty:      req.Bounty,
		Status:      model.GigStatus(req.Status),
		Author:      req.Author,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, gig)
}

// UpdateGigs godoc
// @Summary Update a gig (bulk form: id in body)
// @Tags gigs
// @Accept json
// @Produce json
// @Param request body BulkUpdateGigRequest true "Target id and partial fields"
// @Success 200 {object} model.Gig
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs [put]
func (h *GigHandler) UpdateGigs(c echo.Context) error {
	var req BulkUpdateGigRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}
	return h.applyUpdate(c, req.ID, req.Updates)
}

// UpdateGig godoc
// @Summary Update a gig by id
// @Tags gigs
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param updates body model.GigUpdate true "Partial fields"
// @Success 200 {object} model.Gig
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs/{id} [put]
func (h *GigHandler) UpdateGig(c echo.Context) error {
	var update model.GigUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	return h.applyUpdate(c, c.Param("id"), update)
}

func (h *GigHandler) applyUpdate(c echo.Context, id string, update model.GigUpdate) error {
	gig, err := h.gigService.UpdateGig(c.Request().Context(), id, update)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, gig)
}
