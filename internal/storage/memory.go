package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"videoprompt/internal/domain"
)

// MemoryStore keeps prompts and templates in process memory. Ids start at 1
// and increase monotonically per collection.
type MemoryStore struct {
	mu           sync.RWMutex
	prompts      map[int64]domain.GeneratedPrompt
	templates    map[int64]domain.Template
	nextPromptID int64
	nextTplID    int64
	now          func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prompts:      make(map[int64]domain.GeneratedPrompt),
		templates:    make(map[int64]domain.Template),
		nextPromptID: 1,
		nextTplID:    1,
		now:          time.Now,
	}
}

// Prompts exposes the store as a domain.PromptRepository.
func (s *MemoryStore) Prompts() domain.PromptRepository { return memoryPrompts{s} }

// Templates exposes the store as a domain.TemplateRepository.
func (s *MemoryStore) Templates() domain.TemplateRepository { return memoryTemplates{s} }

type memoryPrompts struct{ s *MemoryStore }

func (m memoryPrompts) Create(ctx context.Context, p *domain.GeneratedPrompt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.nextPromptID
	s.nextPromptID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now().UTC()
	}
	s.prompts[p.ID] = clonePrompt(*p)
	return nil
}

func (m memoryPrompts) GetByID(ctx context.Context, id int64) (*domain.GeneratedPrompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	p, ok := m.s.prompts[id]
	if !ok {
		return nil, fmt.Errorf("prompt %d: %w", id, domain.ErrNotFound)
	}
	out := clonePrompt(p)
	return &out, nil
}

// ListRecent orders by creation time, then id, newest first.
func (m memoryPrompts) ListRecent(ctx context.Context, limit int) ([]domain.GeneratedPrompt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	items := make([]domain.GeneratedPrompt, 0, len(m.s.prompts))
	for _, p := range m.s.prompts {
		items = append(items, clonePrompt(p))
	}
	m.s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID > items[j].ID
	})
	if limit >= 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

type memoryTemplates struct{ s *MemoryStore }

func (m memoryTemplates) Create(ctx context.Context, tpl *domain.Template) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := m.s
	s.mu.Lock()
	defer s.mu.Unlock()
	tpl.ID = s.nextTplID
	s.nextTplID++
	if tpl.CreatedAt.IsZero() {
		tpl.CreatedAt = s.now().UTC()
	}
	s.templates[tpl.ID] = cloneTemplate(*tpl)
	return nil
}

func (m memoryTemplates) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	tpl, ok := m.s.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	out := cloneTemplate(tpl)
	return &out, nil
}

func (m memoryTemplates) List(ctx context.Context, category string) ([]domain.Template, error) {
	return m.filter(ctx, func(t domain.Template) bool {
		return category == "" || t.Category == category
	})
}

func (m memoryTemplates) ListPopular(ctx context.Context) ([]domain.Template, error) {
	return m.filter(ctx, func(t domain.Template) bool { return t.IsPopular })
}

// Search matches query against name, description and category using Unicode
// case folding.
func (m memoryTemplates) Search(ctx context.Context, query string) ([]domain.Template, error) {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	return m.filter(ctx, func(t domain.Template) bool {
		for _, field := range []string{t.Name, t.Description, t.Category} {
			if strings.Contains(fold.String(field), needle) {
				return true
			}
		}
		return false
	})
}

func (m memoryTemplates) IncrementUsage(ctx context.Context, id int64) (*domain.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	tpl, ok := m.s.templates[id]
	if !ok {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	tpl.UsageCount++
	m.s.templates[id] = tpl
	out := cloneTemplate(tpl)
	return &out, nil
}

func (m memoryTemplates) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	return len(m.s.templates), nil
}

// filter returns matching templates ordered by usage count descending, then id.
func (m memoryTemplates) filter(ctx context.Context, keep func(domain.Template) bool) ([]domain.Template, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.s.mu.RLock()
	items := make([]domain.Template, 0, len(m.s.templates))
	for _, t := range m.s.templates {
		if keep(t) {
			items = append(items, cloneTemplate(t))
		}
	}
	m.s.mu.RUnlock()

	sort.Slice(items, func(i, j int) bool {
		if items[i].UsageCount != items[j].UsageCount {
			return items[i].UsageCount > items[j].UsageCount
		}
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func clonePrompt(p domain.GeneratedPrompt) domain.GeneratedPrompt {
	p.Prompt = append([]byte(nil), p.Prompt...)
	p.Metadata.EnabledFeatures = append([]string(nil), p.Metadata.EnabledFeatures...)
	return p
}

func cloneTemplate(t domain.Template) domain.Template {
	if t.Config != nil {
		cfg := *t.Config
		t.Config = &cfg
	}
	return t
}

var (
	_ domain.PromptRepository   = memoryPrompts{}
	_ domain.TemplateRepository = memoryTemplates{}
)
