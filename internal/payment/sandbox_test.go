package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "onlydevs/internal/errors"
)

func TestSandboxProvider_SendPayment(t *testing.T) {
	p := NewSandboxProvider("0xmentor")

	receipt, err := p.SendPayment(context.Background(), "12.50")
	require.NoError(t, err)
	assert.True(t, receipt.Success)
	assert.Equal(t, "12.5", receipt.Amount)
	assert.Equal(t, "0xmentor", receipt.Recipient)
	assert.NotEmpty(t, receipt.TransactionID)
}

func TestSandboxProvider_SendPayment_InvalidAmount(t *testing.T) {
	p := NewSandboxProvider("0xmentor")

	for _, amount := range []string{"", "abc", "0", "-1"} {
		receipt, err := p.SendPayment(context.Background(), amount)
		assert.ErrorIs(t, err, apperrors.ErrInvalidBounty, "amount %q", amount)
		assert.False(t, receipt.Success)
		assert.NotEmpty(t, receipt.Error)
	}
}

func TestSandboxProvider_Connect(t *testing.T) {
	p := NewSandboxProvider("0xmentor")

	addrs, err := p.Connect(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, addrs.Universal)
	assert.NotEmpty(t, addrs.SubAccount)
	assert.NotEqual(t, addrs.Universal, addrs.SubAccount)
}
