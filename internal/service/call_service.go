package service

import (
	"context"
	"fmt"

	"onlydevs/internal/call"
)

// CallService hands out joinable call URLs for a gig/mentor pair.
type CallService interface {
	StartCall(ctx context.Context, gigID, mentorID string) (string, error)
}

type callService struct {
	gigs     GigService
	provider call.Provider
}

// NewCallService creates a call service backed by a call provider.
func NewCallService(gigs GigService, provider call.Provider) CallService {
	return &callService{gigs: gigs, provider: provider}
}

// StartCall validates the gig exists and asks the provider for a join URL.
// The room name ties the call to the gig/mentor pair so both sides land in
// the same room without any session state on our end.
func (s *callService) StartCall(ctx context.Context, gigID, mentorID string) (string, error) {
	if _, err := s.gigs.GetGig(ctx, gigID); err != nil {
		return "", err
	}
	room := fmt.Sprintf("gig-%s-%s", gigID, mentorID)
	return s.provider.StartCall(ctx, room)
}
