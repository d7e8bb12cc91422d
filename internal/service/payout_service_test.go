package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
	"onlydevs/internal/payment"
)

func TestPayoutService_PayBounty(t *testing.T) {
	st := new(MockStore)
	st.On("GetByID", mock.Anything, "1").Return(&model.Gig{
		ID:     "1",
		Bounty: "25",
		Status: model.GigStatusCompleted,
	}, nil)

	svc := NewPayoutService(newTestService(st), payment.NewSandboxProvider("0xmentor"))

	receipt, err := svc.PayBounty(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.Equal(t, "25", receipt.Amount)
	assert.Equal(t, "0xmentor", receipt.Recipient)
	assert.NotEmpty(t, receipt.TransactionID)
	assert.False(t, receipt.Timestamp.IsZero())
}

func TestPayoutService_PayBounty_NotCompleted(t *testing.T) {
	st := new(MockStore)
	st.On("GetByID", mock.Anything, "1").Return(&model.Gig{
		ID:     "1",
		Bounty: "25",
		Status: model.GigStatusOpen,
	}, nil)

	svc := NewPayoutService(newTestService(st), payment.NewSandboxProvider("0xmentor"))

	_, err := svc.PayBounty(context.Background(), "1")
	assert.ErrorIs(t, err, apperrors.ErrPayoutNotReady)
}

func TestPayoutService_PayBounty_UnknownGig(t *testing.T) {
	st := new(MockStore)
	st.On("GetByID", mock.Anything, "ghost").Return(nil, apperrors.ErrGigNotFound)

	svc := NewPayoutService(newTestService(st), payment.NewSandboxProvider("0xmentor"))

	_, err := svc.PayBounty(context.Background(), "ghost")
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

func TestCallService_StartCall(t *testing.T) {
	st := new(MockStore)
	st.On("GetByID", mock.Anything, "1").Return(&model.Gig{ID: "1"}, nil)

	providers := newTestService(st)
	svc := NewCallService(providers, stubCallProvider{})

	url, err := svc.StartCall(context.Background(), "1", "m1")
	require.NoError(t, err)
	assert.Equal(t, "call://gig-1-m1", url)
}

func TestCallService_StartCall_UnknownGig(t *testing.T) {
	st := new(MockStore)
	st.On("GetByID", mock.Anything, "ghost").Return(nil, apperrors.ErrGigNotFound)

	svc := NewCallService(newTestService(st), stubCallProvider{})

	_, err := svc.StartCall(context.Background(), "ghost", "m1")
	assert.ErrorIs(t, err, apperrors.ErrGigNotFound)
}

type stubCallProvider struct{}

func (stubCallProvider) StartCall(ctx context.Context, room string) (string, error) {
	return "call://" + room, nil
}
