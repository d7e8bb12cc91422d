package store

import (
	"context"

	"onlydevs/internal/model"
)

// Document is the persisted shape of the whole collection: a single root
// object with one "gigs" key. The file store writes exactly this layout.
type Document struct {
	Gigs []model.Gig `json:"gigs"`
}

// Store defines persistence operations for the gig collection.
//
// Insert prepends: a freshly created gig is the first element of the next
// LoadAll. UpdateByID replaces named fields wholesale (see model.GigUpdate);
// it never touches ID or CreatedAt. Implementations serialize their
// read-modify-write cycles so concurrent writers cannot lose updates.
type Store interface {
	LoadAll(ctx context.Context) ([]model.Gig, error)
	GetByID(ctx context.Context, id string) (*model.Gig, error)
	Insert(ctx context.Context, gig *model.Gig) error
	UpdateByID(ctx context.Context, id string, update model.GigUpdate) (*model.Gig, error)
	// Reset replaces the whole collection, used by the seed tool.
	Reset(ctx context.Context, gigs []model.Gig) error
}
