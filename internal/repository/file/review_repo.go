package file

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/datamodels/review"
)

type reviewRepo struct {
	path string
}

// NewReviewRepository creates a review store over a single JSON file holding
// an array of reviews, rewritten in full on every successful append. There is
// no locking across processes: concurrent writers can lose an update, which
// is accepted for the single-user scope.
func NewReviewRepository(path string) review.Repository {
	return &reviewRepo{path: path}
}

// List reads the whole file. A missing, unreadable or non-array file yields
// an empty list, never an error.
func (r *reviewRepo) List(ctx context.Context) ([]review.Review, error) {
	return r.read(), nil
}

func (r *reviewRepo) Append(ctx context.Context, rv review.Review) (review.Review, error) {
	list := r.read()
	for _, existing := range list {
		if existing.ID == rv.ID {
			return existing, nil
		}
	}
	// newest first
	list = append([]review.Review{rv}, list...)
	if err := r.write(list); err != nil {
		zap.L().Error("failed to persist review", zap.String("id", rv.ID), zap.Error(err))
		return review.Review{}, err
	}
	return rv, nil
}

func (r *reviewRepo) read() []review.Review {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return []review.Review{}
	}
	var list []review.Review
	if err := json.Unmarshal(raw, &list); err != nil {
		zap.L().Warn("review file is not a JSON array, treating as empty", zap.String("path", r.path))
		return []review.Review{}
	}
	if list == nil {
		return []review.Review{}
	}
	return list
}

func (r *reviewRepo) write(list []review.Review) error {
	raw, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.path, raw, 0o644)
}
