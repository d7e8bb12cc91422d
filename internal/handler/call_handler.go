package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/service"
)

// CallHandler handles video call endpoints.
type CallHandler struct {
	callService service.CallService
}

// NewCallHandler creates a new call handler.
func NewCallHandler(callService service.CallService) *CallHandler {
	return &CallHandler{callService: callService}
}

// StartCallRequest names the mentor to call about a gig.
type StartCallRequest struct {
	MentorID string `json:"mentor_id" validate:"required"`
}

// StartCallResponse carries the joinable call URL.
type StartCallResponse struct {
	URL string `json:"url"`
}

// StartCall godoc
// @Summary Start a call for a gig/mentor pair
// @Tags calls
// @Accept json
// @Produce json
// @Param id path string true "Gig ID"
// @Param request body StartCallRequest true "Mentor to call"
// @Success 200 {object} StartCallResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs/{id}/call [post]
func (h *CallHandler) StartCall(c echo.Context) error {
	var req StartCallRequest
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

	url, err := h.callService.StartCall(c.Request().Context(), c.Param("id"), req.MentorID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, StartCallResponse{URL: url})
}
