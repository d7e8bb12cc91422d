package payment

import (
	"context"
	"time"
)

// Addresses is the account pair a wallet connection yields: the universal
// account and the sub-account payments are sent from.
type Addresses struct {
	Universal  string `json:"universal_address"`
	SubAccount string `json:"sub_account_address"`
}

// Receipt is the outcome of a stablecoin transfer.
type Receipt struct {
	Success       bool      `json:"success"`
	TransactionID string    `json:"transactionId,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	Recipient     string    `json:"recipient,omitempty"`
	Timestamp     time.Time `json:"timestamp,omitempty"`
	Error         string    `json:"error,omitempty"`
}

// Provider is the narrow payment capability the core depends on. Amounts are
// decimal strings; the concrete provider owns token, chain, and gas concerns.
type Provider interface {
	Connect(ctx context.Context) (*Addresses, error)
	SendPayment(ctx context.Context, amount string) (*Receipt, error)
}
