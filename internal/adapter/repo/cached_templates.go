package repo

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"videoprompt/internal/domain"
)

// CachedTemplates memoizes the read-mostly template listings. Any write
// flushes the cache. Search goes straight to the repository so free-form
// queries cannot grow the cache.
type CachedTemplates struct {
	domain.TemplateRepository
	cache *cache.Cache
}

func NewCachedTemplates(next domain.TemplateRepository, ttl time.Duration) *CachedTemplates {
	return &CachedTemplates{
		TemplateRepository: next,
		cache:              cache.New(ttl, 2*ttl),
	}
}

func (c *CachedTemplates) Create(ctx context.Context, tpl *domain.Template) error {
	if err := c.TemplateRepository.Create(ctx, tpl); err != nil {
		return err
	}
	c.cache.Flush()
	return nil
}

func (c *CachedTemplates) IncrementUsage(ctx context.Context, id int64) (*domain.Template, error) {
	tpl, err := c.TemplateRepository.IncrementUsage(ctx, id)
	if err != nil {
		return nil, err
	}
	c.cache.Flush()
	return tpl, nil
}

func (c *CachedTemplates) List(ctx context.Context, category string) ([]domain.Template, error) {
	return c.cached("list:"+category, func() ([]domain.Template, error) {
		return c.TemplateRepository.List(ctx, category)
	})
}

func (c *CachedTemplates) ListPopular(ctx context.Context) ([]domain.Template, error) {
	return c.cached("popular", func() ([]domain.Template, error) {
		return c.TemplateRepository.ListPopular(ctx)
	})
}

func (c *CachedTemplates) cached(key string, load func() ([]domain.Template, error)) ([]domain.Template, error) {
	if v, ok := c.cache.Get(key); ok {
		return copyTemplates(v.([]domain.Template)), nil
	}
	items, err := load()
	if err != nil {
		return nil, err
	}
	c.cache.SetDefault(key, copyTemplates(items))
	return items, nil
}

func copyTemplates(in []domain.Template) []domain.Template {
	out := make([]domain.Template, len(in))
	copy(out, in)
	return out
}

var _ domain.TemplateRepository = (*CachedTemplates)(nil)
