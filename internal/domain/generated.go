package domain

import (
	"encoding/json"
	"time"
)

// GeneratedPrompt is a persisted assembler result. Records are immutable once
// stored.
type GeneratedPrompt struct {
	ID         int64           `json:"id"`
	Prompt     json.RawMessage `json:"prompt"`
	Category   string          `json:"category"`
	Style      string          `json:"style"`
	Duration   string          `json:"duration"`
	Complexity string          `json:"complexity"`
	Elements   Elements        `json:"elements"`
	Metadata   PromptMetadata  `json:"metadata"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// PromptMetadata records how a prompt was produced.
type PromptMetadata struct {
	GeneratedAt     time.Time `json:"generated_at"`
	Version         string    `json:"version"`
	Format          string    `json:"format"`
	EnabledFeatures []string  `json:"enabled_features"`
	RequestID       string    `json:"request_id,omitempty"`
}

// PromptText returns the prompt as plain text when it was stored as a JSON
// string, otherwise the raw JSON document.
func (p GeneratedPrompt) PromptText() string {
	var s string
	if err := json.Unmarshal(p.Prompt, &s); err == nil {
		return s
	}
	return string(p.Prompt)
}
