package service

import (
	"context"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
	"onlydevs/internal/payment"
)

// PayoutService transfers a gig's bounty to the mentor once the gig is done.
type PayoutService interface {
	PayBounty(ctx context.Context, gigID string) (*payment.Receipt, error)
}

type payoutService struct {
	gigs     GigService
	provider payment.Provider
}

// NewPayoutService creates a payout service on top of the gig service and a
// payment provider.
func NewPayoutService(gigs GigService, provider payment.Provider) PayoutService {
	return &payoutService{gigs: gigs, provider: provider}
}

// PayBounty looks up the gig and sends its bounty through the provider.
// Only completed gigs pay out.
func (s *payoutService) PayBounty(ctx context.Context, gigID string) (*payment.Receipt, error) {
	gig, err := s.gigs.GetGig(ctx, gigID)
	if err != nil {
		return nil, err
	}
	if gig.Status != model.GigStatusCompleted {
		return nil, apperrors.ErrPayoutNotReady
	}
	return s.provider.SendPayment(ctx, gig.Bounty)
}
