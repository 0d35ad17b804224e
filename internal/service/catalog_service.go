package service

import (
	"context"
	"strings"

	"github.com/orafinite/ecom-fe/internal/datamodels/catalog"
)

type CatalogService struct {
	repo catalog.Repository
}

func NewCatalogService(repo catalog.Repository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Categories(ctx context.Context) ([]catalog.Category, error) {
	return s.repo.Categories(ctx)
}

func (s *CatalogService) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	return s.repo.CategoryBySlug(ctx, slug)
}

func (s *CatalogService) Product(ctx context.Context, categorySlug, productSlug string) (*catalog.Product, error) {
	return s.repo.Product(ctx, categorySlug, productSlug)
}

// Search filters products across all categories by a case-insensitive
// substring match on the title.
func (s *CatalogService) Search(ctx context.Context, keyword string) ([]catalog.Product, error) {
	cats, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	kw := strings.ToLower(keyword)
	var out []catalog.Product
	for _, c := range cats {
		for _, p := range c.Products {
			if kw == "" || strings.Contains(strings.ToLower(p.Title), kw) {
				out = append(out, p)
			}
		}
	}
	return out, nil
}
