package review

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the display format reviews are submitted with ("Jan 2, 2006").
const DateLayout = "Jan 2, 2006"

// ErrInvalid marks a submission that fails basic field validation. The draft
// form treats it as a silent no-op; the API answers 400.
var ErrInvalid = errors.New("invalid review")

// Review is a customer review. ID is caller-supplied and unique; reviews are
// never mutated or deleted once stored.
type Review struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Avatar  string `json:"avatar,omitempty"`
}

// Validate checks the required submission fields: non-empty name and comment,
// rating in 1..5.
func (r Review) Validate() error {
	if r.Name == "" || r.Comment == "" || r.Rating < 1 || r.Rating > 5 {
		return ErrInvalid
	}
	return nil
}

// Repository is the persistent review sequence, newest first.
type Repository interface {
	List(ctx context.Context) ([]Review, error)
	// Append stores r unless a review with the same id already exists, in
	// which case the pre-existing one is returned and nothing is written.
	Append(ctx context.Context, r Review) (Review, error)
}

// Average is the mean rating rendered to one decimal place, "0.0" when there
// are no reviews.
func Average(reviews []Review) string {
	if len(reviews) == 0 {
		return "0.0"
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(reviews)))
}

// Histogram counts reviews at each star value 1..5.
func Histogram(reviews []Review) map[int]int {
	counts := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, r := range reviews {
		if r.Rating >= 1 && r.Rating <= 5 {
			counts[r.Rating]++
		}
	}
	return counts
}

// FilterByRating keeps reviews with the exact rating; 0 means no filter.
func FilterByRating(reviews []Review, rating int) []Review {
	if rating == 0 {
		return reviews
	}
	out := make([]Review, 0, len(reviews))
	for _, r := range reviews {
		if r.Rating == rating {
			out = append(out, r)
		}
	}
	return out
}

// Sort modes for the review list.
const (
	SortNewest  = "newest"
	SortHighest = "highest"
	SortLowest  = "lowest"
)

// Sort orders reviews by the given mode. Ties keep their original relative
// order. Unknown modes (and SortNewest) sort by parsed date, descending;
// unparseable dates sort last.
func Sort(reviews []Review, mode string) []Review {
	out := make([]Review, len(reviews))
	copy(out, reviews)
	switch mode {
	case SortHighest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortLowest:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	default:
		sort.SliceStable(out, func(i, j int) bool { return parseDate(out[i].Date).After(parseDate(out[j].Date)) })
	}
	return out
}

func parseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
