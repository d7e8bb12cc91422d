package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/payment"
	"onlydevs/internal/service"
)

// PayoutHandler handles wallet and bounty payout endpoints.
type PayoutHandler struct {
	payoutService service.PayoutService
	provider      payment.Provider
}

// NewPayoutHandler creates a new payout handler.
func NewPayoutHandler(payoutService service.PayoutService, provider payment.Provider) *PayoutHandler {
	return &PayoutHandler{payoutService: payoutService, provider: provider}
}

// Connect godoc
// @Summary Connect the payment wallet
// @Tags payments
// @Produce json
// @Success 200 {object} payment.Addresses
// @Failure 500 {object} errors.ErrorResponse
// @Router /wallet/connect [post]
func (h *PayoutHandler) Connect(c echo.Context) error {
	addrs, err := h.provider.Connect(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, addrs)
}

// PayBounty godoc
// @Summary Pay out a completed gig's bounty
// @Tags payments
// @Produce json
// @Param id path string true "Gig ID"
// @Success 200 {object} payment.Receipt
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /gigs/{id}/payout [post]
func (h *PayoutHandler) PayBounty(c echo.Context) error {
	receipt, err := h.payoutService.PayBounty(c.Request().Context(), c.Param("id"))
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, receipt)
}
