package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"videoprompt/internal/domain"
	"videoprompt/internal/sqlinline"
)

func templateValues(id int64, usage int, config []byte) []any {
	return []any{
		id,
		"Golden Hour Portrait",
		"Warm backlit portrait",
		"Fashion & Beauty",
		"A model turns toward the setting sun",
		config,
		true,
		usage,
		4.5,
		fixedTime,
	}
}

func TestTemplateRepositoryCreateEncodesConfig(t *testing.T) {
	db := &fakeDB{row: func(string, []any) pgx.Row { return valuesRow(int64(3), fixedTime) }}
	tpl := &domain.Template{
		Name:     "Street Food",
		Category: "Food & Cooking",
		Config:   &domain.PromptConfig{Category: "Food & Cooking", Style: "Documentary"},
	}
	if err := NewTemplateRepository(db).Create(context.Background(), tpl); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tpl.ID != 3 {
		t.Fatalf("id = %d", tpl.ID)
	}
	if cfg, ok := db.calls[0].args[4].([]byte); !ok || len(cfg) == 0 {
		t.Fatalf("config arg = %#v", db.calls[0].args[4])
	}

	db.calls = nil
	if err := NewTemplateRepository(db).Create(context.Background(), &domain.Template{Name: "bare"}); err != nil {
		t.Fatalf("Create without config: %v", err)
	}
	if cfg := db.calls[0].args[4].([]byte); cfg != nil {
		t.Fatalf("nil config should be sent as NULL, got %s", cfg)
	}
}

func TestTemplateRepositoryScansConfig(t *testing.T) {
	db := &fakeDB{row: func(string, []any) pgx.Row {
		return valuesRow(templateValues(1, 2, []byte(`{"category":"Fashion & Beauty","style":"Artistic"}`))...)
	}}
	tpl, err := NewTemplateRepository(db).GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if tpl.Config == nil || tpl.Config.Style != "Artistic" {
		t.Fatalf("config = %+v", tpl.Config)
	}
	if tpl.UsageCount != 2 || tpl.Rating != 4.5 || !tpl.CreatedAt.Equal(fixedTime) {
		t.Fatalf("template = %+v", tpl)
	}
}

func TestTemplateRepositoryIncrementUsageNotFound(t *testing.T) {
	db := &fakeDB{}
	_, err := NewTemplateRepository(db).IncrementUsage(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if db.calls[0].query != sqlinline.QIncrementTemplateUsage {
		t.Fatalf("unexpected query %q", db.calls[0].query)
	}
}

func TestTemplateRepositoryListPassesCategory(t *testing.T) {
	db := &fakeDB{rows: func(query string, args []any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{templateValues(1, 5, nil), templateValues(2, 1, nil)}}, nil
	}}
	items, err := NewTemplateRepository(db).List(context.Background(), "Fashion & Beauty")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 || items[0].Config != nil {
		t.Fatalf("items = %+v", items)
	}
	if db.calls[0].args[0] != "Fashion & Beauty" {
		t.Fatalf("category arg = %v", db.calls[0].args[0])
	}
}

func TestTemplateRepositorySearchEmptyIsNotNil(t *testing.T) {
	db := &fakeDB{}
	items, err := NewTemplateRepository(db).Search(context.Background(), "nothing")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestLikePattern(t *testing.T) {
	tests := map[string]string{
		"Portrait":   "%portrait%",
		" 100% ":     `%100\%%`,
		"snake_case": `%snake\_case%`,
		`back\slash`: `%back\\slash%`,
	}
	for in, want := range tests {
		if got := likePattern(in); got != want {
			t.Fatalf("likePattern(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTemplateRepositoryCount(t *testing.T) {
	db := &fakeDB{row: func(string, []any) pgx.Row { return valuesRow(12) }}
	n, err := NewTemplateRepository(db).Count(context.Background())
	if err != nil || n != 12 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

type countingTemplates struct {
	domain.TemplateRepository
	lists    int
	searches int
}

func (c *countingTemplates) Search(ctx context.Context, query string) ([]domain.Template, error) {
	c.searches++
	return c.TemplateRepository.Search(ctx, query)
}

func (c *countingTemplates) List(ctx context.Context, category string) ([]domain.Template, error) {
	c.lists++
	return c.TemplateRepository.List(ctx, category)
}

func TestCachedTemplatesFlushesOnWrite(t *testing.T) {
	db := &fakeDB{
		rows: func(string, []any) (pgx.Rows, error) {
			return &fakeRows{data: [][]any{templateValues(1, 0, nil)}}, nil
		},
		row: func(query string, args []any) pgx.Row {
			return valuesRow(templateValues(1, 1, nil)...)
		},
	}
	inner := &countingTemplates{TemplateRepository: NewTemplateRepository(db)}
	cached := NewCachedTemplates(inner, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cached.List(ctx, ""); err != nil {
			t.Fatalf("List: %v", err)
		}
	}
	if inner.lists != 1 {
		t.Fatalf("expected one backend list, got %d", inner.lists)
	}

	if _, err := cached.IncrementUsage(ctx, 1); err != nil {
		t.Fatalf("IncrementUsage: %v", err)
	}
	if _, err := cached.List(ctx, ""); err != nil {
		t.Fatalf("List: %v", err)
	}
	if inner.lists != 2 {
		t.Fatalf("cache not flushed after write, lists=%d", inner.lists)
	}
}

func TestCachedTemplatesSearchIsNotCached(t *testing.T) {
	db := &fakeDB{rows: func(string, []any) (pgx.Rows, error) {
		return &fakeRows{data: [][]any{templateValues(1, 0, nil)}}, nil
	}}
	inner := &countingTemplates{TemplateRepository: NewTemplateRepository(db)}
	cached := NewCachedTemplates(inner, time.Minute)
	ctx := context.Background()

	for _, q := range []string{"forest", "forest", "Forest ", "neon"} {
		items, err := cached.Search(ctx, q)
		if err != nil || len(items) != 1 {
			t.Fatalf("Search(%q) = %v, %v", q, items, err)
		}
	}
	if inner.searches != 4 {
		t.Fatalf("expected every search to reach the repository, got %d", inner.searches)
	}
	if n := cached.cache.ItemCount(); n != 0 {
		t.Fatalf("search populated the cache with %d entries", n)
	}
}
