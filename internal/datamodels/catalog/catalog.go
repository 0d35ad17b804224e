package catalog

import (
	"context"
	"errors"
)

// ErrNotFound is returned for unknown category or product slugs.
var ErrNotFound = errors.New("not found")

// Product is one entry of a category in the catalog document. Slug is not part
// of the document; it is derived from Title when the catalog is loaded and is
// stable across loads so it can be used in bookmarkable URLs.
type Product struct {
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Image       string   `json:"image,omitempty"`
	Specs       []string `json:"specs,omitempty"`
	Features    []string `json:"features,omitempty"`
	CtaText     string   `json:"ctaText,omitempty"`
	CtaLink     string   `json:"ctaLink,omitempty"`
}

// Category groups products under a slug of its own.
type Category struct {
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Products    []Product `json:"products"`
}

// Document is the shape of the catalog JSON file.
type Document struct {
	Categories []Category `json:"categories"`
}

// Repository is the read-only catalog source.
type Repository interface {
	Categories(ctx context.Context) ([]Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*Category, error)
	Product(ctx context.Context, categorySlug, productSlug string) (*Product, error)
}
