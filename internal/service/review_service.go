package service

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/datamodels/review"
	"github.com/orafinite/ecom-fe/internal/infra/cache"
)

// ReviewRemote is the review API as seen from the storefront.
type ReviewRemote interface {
	List(ctx context.Context) ([]review.Review, error)
	Submit(ctx context.Context, r review.Review) (review.Review, error)
}

// ReviewSummary is the derived aggregate view over the review list.
type ReviewSummary struct {
	Average   string      `json:"average"`
	Count     int         `json:"count"`
	Histogram map[int]int `json:"histogram"`
}

// ReviewService keeps the in-memory review list and implements the
// availability-first behavior of the review feature: reads fall through
// remote -> cache -> bundled -> empty, and submissions that cannot reach the
// API are accepted locally as if the API had confirmed them.
type ReviewService struct {
	remote      ReviewRemote
	cache       *cache.Cache
	bundledPath string

	mu      sync.Mutex
	reviews []review.Review
	// helpful votes are per session and never persisted
	helpfulVoters map[string]map[string]bool
	helpfulCounts map[string]int

	now   func() time.Time
	newID func() string
}

func NewReviewService(remote ReviewRemote, c *cache.Cache, bundledPath string) *ReviewService {
	return &ReviewService{
		remote:        remote,
		cache:         c,
		bundledPath:   bundledPath,
		helpfulVoters: make(map[string]map[string]bool),
		helpfulCounts: make(map[string]int),
		now:           time.Now,
		newID:         func() string { return "r" + uuid.NewString() },
	}
}

// Load populates the in-memory list from the first tier that succeeds. Each
// tier is attempted only when the previous one fails; a successful remote
// load refreshes the cache.
func (s *ReviewService) Load(ctx context.Context) []review.Review {
	list, err := s.remote.List(ctx)
	if err == nil {
		if cerr := s.cache.Put(list); cerr != nil {
			zap.L().Warn("failed to refresh review cache", zap.Error(cerr))
		}
		return s.setReviews(list)
	}
	zap.L().Info("review api unavailable, falling back to local cache", zap.Error(err))

	var cached []review.Review
	if err := s.cache.Get(&cached); err == nil && len(cached) > 0 {
		return s.setReviews(cached)
	}

	if bundled := s.readBundled(); len(bundled) > 0 {
		return s.setReviews(bundled)
	}
	return s.setReviews([]review.Review{})
}

func (s *ReviewService) readBundled() []review.Review {
	raw, err := os.ReadFile(s.bundledPath)
	if err != nil {
		return nil
	}
	var list []review.Review
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil
	}
	return list
}

func (s *ReviewService) setReviews(list []review.Review) []review.Review {
	s.mu.Lock()
	s.reviews = list
	out := s.snapshotLocked()
	s.mu.Unlock()
	return out
}

// Submit validates the draft, sends it to the review API and prepends the
// accepted body to the in-memory list. When the API fails in any way the
// locally constructed review is prepended instead, exactly as if it had been
// accepted; the caller never sees a transport error. The updated list is
// cached either way.
func (s *ReviewService) Submit(ctx context.Context, name string, rating int, comment string) (review.Review, error) {
	rv := review.Review{
		ID:      s.newID(),
		Name:    name,
		Date:    s.now().Format(review.DateLayout),
		Rating:  rating,
		Comment: comment,
	}
	if err := rv.Validate(); err != nil {
		return review.Review{}, err
	}

	accepted, err := s.remote.Submit(ctx, rv)
	if err != nil {
		zap.L().Info("review api rejected or unreachable, accepting locally",
			zap.String("id", rv.ID), zap.Error(err))
		accepted = rv
	}

	s.mu.Lock()
	s.reviews = append([]review.Review{accepted}, s.reviews...)
	updated := s.snapshotLocked()
	s.mu.Unlock()

	if cerr := s.cache.Put(updated); cerr != nil {
		zap.L().Warn("failed to cache reviews after submit", zap.Error(cerr))
	}
	return accepted, nil
}

// Reviews returns the current list filtered by exact rating (0 = all) and
// ordered by the given sort mode.
func (s *ReviewService) Reviews(rating int, sortMode string) []review.Review {
	s.mu.Lock()
	list := s.snapshotLocked()
	s.mu.Unlock()
	return review.Sort(review.FilterByRating(list, rating), sortMode)
}

// Summary computes the aggregate view: average to one decimal place ("0.0"
// with no reviews) and the per-star histogram.
func (s *ReviewService) Summary() ReviewSummary {
	s.mu.Lock()
	list := s.snapshotLocked()
	s.mu.Unlock()
	return ReviewSummary{
		Average:   review.Average(list),
		Count:     len(list),
		Histogram: review.Histogram(list),
	}
}

// ToggleHelpful flips the session's helpful vote on a review and returns the
// new count. Votes live only for the process lifetime and are never synced.
func (s *ReviewService) ToggleHelpful(sessionID, reviewID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	voters, ok := s.helpfulVoters[sessionID]
	if !ok {
		voters = make(map[string]bool)
		s.helpfulVoters[sessionID] = voters
	}
	if voters[reviewID] {
		delete(voters, reviewID)
		s.helpfulCounts[reviewID]--
	} else {
		voters[reviewID] = true
		s.helpfulCounts[reviewID]++
	}
	return s.helpfulCounts[reviewID]
}

func (s *ReviewService) snapshotLocked() []review.Review {
	out := make([]review.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}
