// Package seed loads the built-in template library.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"videoprompt/internal/domain"
)

//go:embed templates.yaml
var templatesYAML []byte

type entry struct {
	Name           string         `yaml:"name"`
	Description    string         `yaml:"description"`
	Category       string         `yaml:"category"`
	PromptTemplate string         `yaml:"prompt_template"`
	Popular        bool           `yaml:"popular"`
	Usage          int            `yaml:"usage"`
	Rating         float64        `yaml:"rating"`
	Config         map[string]any `yaml:"config"`
}

// Templates decodes the embedded library.
func Templates() ([]domain.Template, error) {
	return parse(templatesYAML)
}

func parse(data []byte) ([]domain.Template, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("seed: decode templates: %w", err)
	}
	out := make([]domain.Template, 0, len(entries))
	for _, e := range entries {
		tpl := domain.Template{
			Name:           e.Name,
			Description:    e.Description,
			Category:       e.Category,
			PromptTemplate: e.PromptTemplate,
			IsPopular:      e.Popular,
			UsageCount:     e.Usage,
			Rating:         e.Rating,
		}
		if e.Config != nil {
			cfg, err := configFromMap(e.Config)
			if err != nil {
				return nil, fmt.Errorf("seed: template %q: %w", e.Name, err)
			}
			tpl.Config = &cfg
		}
		out = append(out, tpl)
	}
	return out, nil
}

// ParseConfig reads a PromptConfig from YAML or JSON using the request's
// field names, then validates it.
func ParseConfig(data []byte) (domain.PromptConfig, error) {
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return domain.PromptConfig{}, fmt.Errorf("decode config: %w", err)
	}
	return configFromMap(m)
}

func configFromMap(m map[string]any) (domain.PromptConfig, error) {
	var cfg domain.PromptConfig
	raw, err := json.Marshal(m)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Load inserts the library into repo when it holds no templates yet. It
// returns the number of templates inserted.
func Load(ctx context.Context, repo domain.TemplateRepository) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: count templates: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	items, err := Templates()
	if err != nil {
		return 0, err
	}
	for i := range items {
		if err := repo.Create(ctx, &items[i]); err != nil {
			return i, fmt.Errorf("seed: insert %q: %w", items[i].Name, err)
		}
	}
	return len(items), nil
}
