package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"onlydevs/internal/cache"
	apperrors "onlydevs/internal/errors"
	"onlydevs/internal/model"
	"onlydevs/internal/store"
)

const (
	gigCacheTTL     = 30 * time.Second
	gigListCacheKey = "gigs:all"
)

// Default mentor display fields. Counters are randomized per gig within the
// documented ranges: reputation in [1000,3000), completed gigs in [10,60).
const (
	defaultMentorName    = "DevHelper"
	defaultMentorRating  = 4.5
	defaultMentorMessage = "I'm here to help you solve this issue! I specialize in debugging " +
		"and have helped many developers overcome similar challenges."
)

var defaultMentorSpecialties = []string{"Debugging", "Problem Solving", "General Development"}

// CreateGigInput carries the caller-supplied fields of a new gig. ID,
// CreatedAt, and the initial mentor are synthesized server-side.
type CreateGigInput struct {
	Title       string
	Description string
	Tags        []string
	Bounty      string
	Status      model.GigStatus
	Author      string
}

// GigService exposes the gig collection operations.
type GigService interface {
	ListGigs(ctx context.Context) ([]model.Gig, error)
	GetGig(ctx context.Context, id string) (*model.Gig, error)
	CreateGig(ctx context.Context, input CreateGigInput) (*model.Gig, error)
	UpdateGig(ctx context.Context, id string, update model.GigUpdate) (*model.Gig, error)
}

type gigService struct {
	store store.Store
	cache *cache.Client

	// rng drives the default-mentor counters; seeded in tests for
	// reproducibility. rand.Rand is not goroutine-safe, hence the mutex.
	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewGigService builds a GigService with store, cache, and randomness source.
// A nil rng falls back to a time-seeded one.
func NewGigService(st store.Store, cache *cache.Client, rng *rand.Rand) GigService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &gigService{store: st, cache: cache, rng: rng}
}

func gigCacheKey(id string) string {
	return "gig:" + id
}

// ListGigs returns the whole collection, newest first.
func (s *gigService) ListGigs(ctx context.Context) ([]model.Gig, error) {
	if data, _ := s.cache.Get(ctx, gigListCacheKey); data != nil {
		var cached []model.Gig
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	gigs, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(gigs); err == nil {
		_ = s.cache.Set(ctx, gigListCacheKey, payload, gigCacheTTL)
	}
	return gigs, nil
}

// GetGig returns a single gig by id.
func (s *gigService) GetGig(ctx context.Context, id string) (*model.Gig, error) {
	if data, _ := s.cache.Get(ctx, gigCacheKey(id)); data != nil {
		var cached model.Gig
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	gig, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(gig); err == nil {
		_ = s.cache.Set(ctx, gigCacheKey(id), payload, gigCacheTTL)
	}
	return gig, nil
}

// CreateGig synthesizes id, creation time, and the default mentor, then
// inserts the gig at the head of the collection.
func (s *gigService) CreateGig(ctx context.Context, input CreateGigInput) (*model.Gig, error) {
	if err := validateBounty(input.Bounty); err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = model.GigStatusOpen
	}
	if !status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	gig := &model.Gig{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Tags:        datatypes.NewJSONSlice(input.Tags),
		Bounty:      input.Bounty,
		Status:      status,
		Author:      input.Author,
		CreatedAt:   time.Now().UTC(),
	}
	gig.Mentors = datatypes.NewJSONSlice([]model.Mentor{s.defaultMentor(gig.ID)})

	if err := s.store.Insert(ctx, gig); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, gigListCacheKey)
	return gig, nil
}

// UpdateGig applies a partial update. Named fields replace the stored value
// wholesale; id and createdAt are never touched.
func (s *gigService) UpdateGig(ctx context.Context, id string, update model.GigUpdate) (*model.Gig, error) {
	if update.Bounty != nil {
		if err := validateBounty(*update.Bounty); err != nil {
			return nil, err
		}
	}
	if update.Status != nil && !update.Status.Valid() {
		return nil, apperrors.ErrInvalidStatus
	}

	gig, err := s.store.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, gigListCacheKey, gigCacheKey(id))
	return gig, nil
}

// defaultMentor synthesizes the mentor every new gig starts with.
func (s *gigService) defaultMentor(gigID string) model.Mentor {
	s.rngMu.Lock()
	reputation := 1000 + s.rng.Intn(2000)
	completed := 10 + s.rng.Intn(50)
	baseName := fmt.Sprintf("devhelper%d.dev", s.rng.Intn(1000))
	s.rngMu.Unlock()

	return model.Mentor{
		ID:             "default-" + uuid.NewString(),
		Name:           defaultMentorName,
		Avatar:         "https://api.dicebear.com/7.x/avataaars/svg?seed=devhelper-" + gigID,
		Rating:         defaultMentorRating,
		Message:        defaultMentorMessage,
		Specialties:    defaultMentorSpecialties,
		BaseReputation: reputation,
		CompletedGigs:  completed,
		BaseName:       baseName,
	}
}

func validateBounty(bounty string) error {
	value, err := decimal.NewFromString(bounty)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrInvalidBounty
	}
	return nil
}
