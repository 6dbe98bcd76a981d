package promptgen

import "videoprompt/internal/domain"

// Variations assembles count prompts from cfg, each with its complexity
// replaced by a fresh uniform draw. Duplicates are allowed.
func (a *Assembler) Variations(cfg domain.PromptConfig, count int) []Result {
	if count <= 0 {
		return []Result{}
	}
	out := make([]Result, 0, count)
	for i := 0; i < count; i++ {
		variant := cfg
		variant.Complexity = a.sel.Choose(complexities)
		out = append(out, a.Assemble(variant))
	}
	return out
}
