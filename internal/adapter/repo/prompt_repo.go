package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"videoprompt/internal/domain"
	"videoprompt/internal/infra"
	"videoprompt/internal/sqlinline"
)

// PromptRepositoryPG implements domain.PromptRepository on Postgres.
type PromptRepositoryPG struct {
	db infra.SQLExecutor
}

func NewPromptRepository(db infra.SQLExecutor) *PromptRepositoryPG {
	return &PromptRepositoryPG{db: db}
}

// Create inserts p and fills in its id and creation time.
func (r *PromptRepositoryPG) Create(ctx context.Context, p *domain.GeneratedPrompt) error {
	elements, err := json.Marshal(p.Elements)
	if err != nil {
		return fmt.Errorf("encode elements: %w", err)
	}
	metadata, err := json.Marshal(p.Metadata)
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	row := r.db.QueryRow(ctx, sqlinline.QInsertPrompt,
		[]byte(p.Prompt),
		p.Category,
		p.Style,
		p.Duration,
		p.Complexity,
		elements,
		metadata,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return fmt.Errorf("insert prompt: %w", err)
	}
	return nil
}

func (r *PromptRepositoryPG) GetByID(ctx context.Context, id int64) (*domain.GeneratedPrompt, error) {
	p, err := scanPrompt(r.db.QueryRow(ctx, sqlinline.QSelectPromptByID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("prompt %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("select prompt %d: %w", id, err)
	}
	return p, nil
}

func (r *PromptRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.GeneratedPrompt, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListRecentPrompts, limit)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	items := make([]domain.GeneratedPrompt, 0, limit)
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return items, nil
}

func scanPrompt(row pgx.Row) (*domain.GeneratedPrompt, error) {
	var (
		p                  domain.GeneratedPrompt
		prompt             []byte
		elements, metadata []byte
	)
	if err := row.Scan(
		&p.ID,
		&prompt,
		&p.Category,
		&p.Style,
		&p.Duration,
		&p.Complexity,
		&elements,
		&metadata,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.Prompt = json.RawMessage(prompt)
	if err := decodeJSON(elements, &p.Elements); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	if err := decodeJSON(metadata, &p.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &p, nil
}

func decodeJSON(raw []byte, dest any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

var _ domain.PromptRepository = (*PromptRepositoryPG)(nil)
