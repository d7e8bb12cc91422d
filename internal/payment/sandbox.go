package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apperrors "onlydevs/internal/errors"
)

// SandboxProvider simulates a wallet without touching a chain. It validates
// amounts the way the real transfer path would and hands out UUID transaction
// ids, which is enough for development and for exercising the payout flow in
// tests.
type SandboxProvider struct {
	recipient string
}

// NewSandboxProvider creates a provider paying out to the given recipient address.
func NewSandboxProvider(recipient string) *SandboxProvider {
	return &SandboxProvider{recipient: recipient}
}

// Connect returns a deterministic address pair.
func (p *SandboxProvider) Connect(ctx context.Context) (*Addresses, error) {
	return &Addresses{
		Universal:  "0x" + uuid.NewString()[:8] + "universal",
		SubAccount: "0x" + uuid.NewString()[:8] + "sub",
	}, nil
}

// SendPayment validates the amount and returns a successful receipt.
func (p *SandboxProvider) SendPayment(ctx context.Context, amount string) (*Receipt, error) {
	value, err := decimal.NewFromString(amount)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		return &Receipt{
			Success: false,
			Error:   fmt.Sprintf("invalid transfer amount %q", amount),
		}, apperrors.ErrInvalidBounty
	}
	return &Receipt{
		Success:       true,
		TransactionID: uuid.NewString(),
		Amount:        value.String(),
		Recipient:     p.recipient,
		Timestamp:     time.Now().UTC(),
	}, nil
}
