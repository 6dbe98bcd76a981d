package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"videoprompt/internal/domain"
)

// Archive writes a JSON copy of each generated prompt under a root directory,
// laid out as prompts/YYYY/MM/DD/prompt-<id>.json.
type Archive struct {
	root string
}

// NewArchive creates root if needed. An empty root disables archiving and
// returns a nil Archive.
func NewArchive(root string) (*Archive, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, nil
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("archive: create root: %w", err)
	}
	return &Archive{root: root}, nil
}


// Save archives p and returns its key relative to the root. A nil Archive is a
// no-op.
func (a *Archive) Save(ctx context.Context, p *domain.GeneratedPrompt) (string, error) {
	if a == nil {
		return "", nil
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("archive: encode prompt %d: %w", p.ID, err)
	}
	created := p.CreatedAt.UTC()
	key := path.Join("prompts", created.Format("2006/01/02"), fmt.Sprintf("prompt-%d.json", p.ID))
	return a.write(ctx, key, data)
}

func (a *Archive) write(ctx context.Context, key string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	full := filepath.Join(a.root, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("archive: create directory: %w", err)
	}
	tmp := full + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("archive: write file: %w", err)
	}
	if err := os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("archive: finalize file: %w", err)
	}
	return clean, nil
}

// sanitizeKey normalizes key and refuses paths that escape the root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, "\\", "/"))
	key = strings.TrimLeft(strings.TrimPrefix(key, "./"), "/")
	if key == "" {
		return "", errors.New("archive: key is required")
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("archive: invalid key")
	}
	return cleaned, nil
}
