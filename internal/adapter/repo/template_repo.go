package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"videoprompt/internal/domain"
	"videoprompt/internal/infra"
	"videoprompt/internal/sqlinline"
)

// TemplateRepositoryPG implements domain.TemplateRepository on Postgres.
type TemplateRepositoryPG struct {
	db infra.SQLExecutor
}

func NewTemplateRepository(db infra.SQLExecutor) *TemplateRepositoryPG {
	return &TemplateRepositoryPG{db: db}
}

func (r *TemplateRepositoryPG) Create(ctx context.Context, tpl *domain.Template) error {
	var config []byte
	if tpl.Config != nil {
		b, err := json.Marshal(tpl.Config)
		if err != nil {
			return fmt.Errorf("encode template config: %w", err)
		}
		config = b
	}
	row := r.db.QueryRow(ctx, sqlinline.QInsertTemplate,
		tpl.Name,
		tpl.Description,
		tpl.Category,
		tpl.PromptTemplate,
		config,
		tpl.IsPopular,
		tpl.UsageCount,
		tpl.Rating,
	)
	if err := row.Scan(&tpl.ID, &tpl.CreatedAt); err != nil {
		return fmt.Errorf("insert template: %w", err)
	}
	return nil
}

func (r *TemplateRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.Template, error) {
	tpl, err := scanTemplate(r.db.QueryRow(ctx, sqlinline.QSelectTemplateByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select template %d: %w", id, err)
	}
	return tpl, nil
}

func (r *TemplateRepositoryPG) List(ctx context.Context, category string) ([]domain.Template, error) {
	return r.queryTemplates(ctx, sqlinline.QListTemplates, category)
}

func (r *TemplateRepositoryPG) ListPopular(ctx context.Context) ([]domain.Template, error) {
	return r.queryTemplates(ctx, sqlinline.QListPopularTemplates)
}

func (r *TemplateRepositoryPG) Search(ctx context.Context, query string) ([]domain.Template, error) {
	return r.queryTemplates(ctx, sqlinline.QSearchTemplates, likePattern(query))
}

func (r *TemplateRepositoryPG) IncrementUsage(ctx context.Context, id int64) (*domain.Template, error) {
	tpl, err := scanTemplate(r.db.QueryRow(ctx, sqlinline.QIncrementTemplateUsage, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("template %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("increment template %d: %w", id, err)
	}
	return tpl, nil
}

func (r *TemplateRepositoryPG) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, sqlinline.QCountTemplates).Scan(&n); err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return n, nil
}

func (r *TemplateRepositoryPG) queryTemplates(ctx context.Context, query string, args ...any) ([]domain.Template, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	items := []domain.Template{}
	for rows.Next() {
		tpl, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		items = append(items, *tpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	return items, nil
}

func scanTemplate(row pgx.Row) (*domain.Template, error) {
	var (
		tpl    domain.Template
		config []byte
	)
	if err := row.Scan(
		&tpl.ID,
		&tpl.Name,
		&tpl.Description,
		&tpl.Category,
		&tpl.PromptTemplate,
		&config,
		&tpl.IsPopular,
		&tpl.UsageCount,
		&tpl.Rating,
		&tpl.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(config) > 0 {
		var cfg domain.PromptConfig
		if err := json.Unmarshal(config, &cfg); err != nil {
			return nil, fmt.Errorf("decode template config: %w", err)
		}
		tpl.Config = &cfg
	}
	return &tpl, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a contains pattern for QSearchTemplates.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(query))) + "%"
}

var _ domain.TemplateRepository = (*TemplateRepositoryPG)(nil)
