package domain

import "time"

// Template is a quick-start entry in the template library. Only UsageCount
// changes after creation.
type Template struct {
	ID             int64         `json:"id"`
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	Category       string        `json:"category"`
	PromptTemplate string        `json:"promptTemplate"`
	Config         *PromptConfig `json:"config,omitempty"`
	IsPopular      bool          `json:"isPopular"`
	UsageCount     int           `json:"usageCount"`
	Rating         float64       `json:"rating"`
	CreatedAt      time.Time     `json:"createdAt"`
}
