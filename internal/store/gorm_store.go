package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
)

// GormStore persists the gig collection in a relational database. Tags and
// mentors live as JSON columns on the gig row, keeping the mentors-owned-by-gig
// shape and the replace-on-update contract of the document layout.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on top of an open GORM connection and runs
// the gigs migration.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&model.Gig{}); err != nil {
		return nil, fmt.Errorf("%w: migrate gigs: %v", apperrors.ErrStoreUnavailable, err)
	}
	return &GormStore{db: db}, nil
}

// LoadAll returns the full collection, newest first (descending insertion
// sequence matches the file store's prepend order).
func (s *GormStore) LoadAll(ctx context.Context) ([]model.Gig, error) {
	var gigs []model.Gig
	if err := s.db.WithContext(ctx).Order("seq DESC").Find(&gigs).Error; err != nil {
		return nil, fmt.Errorf("%w: list gigs: %v", apperrors.ErrStoreUnavailable, err)
	}
	return gigs, nil
}

// GetByID returns the gig with the given id.
func (s *GormStore) GetByID(ctx context.Context, id string) (*model.Gig, error) {
	var gig model.Gig
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&gig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrGigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get gig: %v", apperrors.ErrStoreUnavailable, err)
	}
	return &gig, nil
}

// Insert stores a new gig. The auto-incremented sequence makes it the first
// result of the next LoadAll.
func (s *GormStore) Insert(ctx context.Context, gig *model.Gig) error {
	if err := s.db.WithContext(ctx).Create(gig).Error; err != nil {
		return fmt.Errorf("%w: insert gig: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}

// UpdateByID applies the partial update inside a transaction with the row
// locked, so concurrent writers serialize instead of losing updates.
func (s *GormStore) UpdateByID(ctx context.Context, id string, update model.GigUpdate) (*model.Gig, error) {
	var updated model.Gig
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var gig model.Gig
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&gig).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGigNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: get gig: %v", apperrors.ErrStoreUnavailable, err)
		}
		update.Apply(&gig)
		if err := tx.Save(&gig).Error; err != nil {
			return fmt.Errorf("%w: save gig: %v", apperrors.ErrStoreUnavailable, err)
		}
		updated = gig
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reset replaces the whole collection. Gigs are inserted in reverse so the
// first element of the input ends up newest, preserving display order.
func (s *GormStore) Reset(ctx context.Context, gigs []model.Gig) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Gig{}).Error; err != nil {
			return err
		}
		for i := len(gigs) - 1; i >= 0; i-- {
			gig := gigs[i]
			gig.Seq = 0 // let the database assign the sequence
			if err := tx.Create(&gig).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: reset gigs: %v", apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
