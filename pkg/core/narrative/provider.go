// Package narrative generates an investor-facing executive summary from a
// SimulationResult via a pluggable LLM provider. Grounded on
// pkg/core/llm/{provider,gemini}.go: the Provider interface and
// GeminiProvider are kept in the same shape, repointed at narrating
// simulation results instead of financial-statement analysis.
package narrative

import "context"

// Provider is the interface for all narrative-generation backends.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}
