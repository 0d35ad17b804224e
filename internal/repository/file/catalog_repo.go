package file

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/orafinite/ecom-fe/internal/datamodels/catalog"
)

type CatalogRepository struct {
	path string

	mu  sync.RWMutex
	doc catalog.Document
}

// NewCatalogRepository loads the static catalog document and derives a stable
// slug for every product from its title (or its position when the title is
// empty).
func NewCatalogRepository(path string) (*CatalogRepository, error) {
	r := &CatalogRepository{path: path}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Watch reloads the catalog whenever the backing file changes. It blocks
// until ctx is done, so run it on its own goroutine.
func (r *CatalogRepository) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(r.path); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := r.reload(); err != nil {
				zap.L().Warn("catalog reload failed, keeping previous snapshot",
					zap.String("path", r.path), zap.Error(err))
				continue
			}
			zap.L().Info("catalog reloaded", zap.String("path", r.path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			zap.L().Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (r *CatalogRepository) reload() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}
	var doc catalog.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	for ci := range doc.Categories {
		for pi := range doc.Categories[ci].Products {
			p := &doc.Categories[ci].Products[pi]
			p.Slug = catalog.Slugify(p.Title, pi)
		}
	}
	r.mu.Lock()
	r.doc = doc
	r.mu.Unlock()
	return nil
}

func (r *CatalogRepository) Categories(ctx context.Context) ([]catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc.Categories, nil
}

func (r *CatalogRepository) CategoryBySlug(ctx context.Context, slug string) (*catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.doc.Categories {
		if r.doc.Categories[i].Slug == slug {
			c := r.doc.Categories[i]
			return &c, nil
		}
	}
	return nil, catalog.ErrNotFound
}

func (r *CatalogRepository) Product(ctx context.Context, categorySlug, productSlug string) (*catalog.Product, error) {
	c, err := r.CategoryBySlug(ctx, categorySlug)
	if err != nil {
		return nil, err
	}
	for i := range c.Products {
		if c.Products[i].Slug == productSlug {
			p := c.Products[i]
			return &p, nil
		}
	}
	return nil, catalog.ErrNotFound
}
