package domain

import "context"

// PromptRepository persists generated prompts.
type PromptRepository interface {
	Create(ctx context.Context, prompt *GeneratedPrompt) error
	GetByID(ctx context.Context, id int64) (*GeneratedPrompt, error)
	ListRecent(ctx context.Context, limit int) ([]GeneratedPrompt, error)
}

// TemplateRepository stores the template library.
type TemplateRepository interface {
	Create(ctx context.Context, tpl *Template) error
	GetByID(ctx context.Context, id int64) (*Template, error)
	// List returns templates matching category exactly, or every template
	// ordered by usage count descending when category is empty.
	List(ctx context.Context, category string) ([]Template, error)
	ListPopular(ctx context.Context) ([]Template, error)
	Search(ctx context.Context, query string) ([]Template, error)
	// IncrementUsage bumps the usage count by one and returns the updated
	// template, or ErrNotFound.
	IncrementUsage(ctx context.Context, id int64) (*Template, error)
	Count(ctx context.Context) (int, error)
}
