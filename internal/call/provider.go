package call

import (
	"context"
	"fmt"
)

// Provider starts a call and returns a joinable URL. Invocations are
// fire-and-forget; the core never tracks call state.
type Provider interface {
	StartCall(ctx context.Context, room string) (string, error)
}

// HuddleProvider builds join URLs for a hosted meeting service.
type HuddleProvider struct {
	baseURL string
}

// NewHuddleProvider creates a provider rooted at baseURL.
func NewHuddleProvider(baseURL string) *HuddleProvider {
	if baseURL == "" {
		baseURL = "https://app.huddle01.com"
	}
	return &HuddleProvider{baseURL: baseURL}
}

// StartCall returns the join URL for the room.
func (p *HuddleProvider) StartCall(ctx context.Context, room string) (string, error) {
	if room == "" {
		return "", fmt.Errorf("room is required")
	}
	return fmt.Sprintf("%s/%s", p.baseURL, room), nil
}
