package narrative

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"zngsim/pkg/models"
)

// GeminiProvider generates executive summaries via the Gemini API. Grounded
// on pkg/core/llm/gemini.go: same client construction, generation config,
// and system-instruction wiring, repointed at simulation results.
type GeminiProvider struct {
	Model string // e.g. "gemini-2.0-flash-exp"
}

var _ Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	model := p.Model
	if model == "" {
		model = "gemini-2.0-flash-exp"
	}
	if val, ok := options["model"].(string); ok && val != "" {
		model = val
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}
	if systemPrompt != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: systemPrompt},
			},
		}
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	text := result.Text()
	if len(result.Candidates) > 0 {
		cand := result.Candidates[0]
		if cand.GroundingMetadata != nil && len(cand.GroundingMetadata.GroundingChunks) > 0 {
			var citations []string
			for _, chunk := range cand.GroundingMetadata.GroundingChunks {
				if chunk.Web != nil {
					citations = append(citations, fmt.Sprintf("[%s](%s)", chunk.Web.Title, chunk.Web.URI))
				}
			}
			if len(citations) > 0 {
				text = fmt.Sprintf("%s\n\n**Sources:**\n%s", text, strings.Join(citations, "\n"))
			}
		}
	}
	return text, nil
}

// AdaptInstructions is a no-op for Gemini; kept for symmetry with the
// provider interface's original shape.
func (p *GeminiProvider) AdaptInstructions(raw string) string {
	return raw
}

// BuildExecutiveSummaryPrompt turns a simulation result into the prompt and
// system-prompt pair handed to GenerateResponse, asking for a short
// investor-facing executive summary rather than a raw data dump.
func BuildExecutiveSummaryPrompt(scenarioName string, result models.SimulationResult, dcf models.DCFResult) (prompt string, systemPrompt string) {
	systemPrompt = "You are a financial analyst writing a one-page executive summary for investors " +
		"evaluating a commercial battery-swap network pilot. Be concise, factual, and do not invent " +
		"numbers beyond what is given. Flag the single biggest risk you see in the figures."

	var b strings.Builder
	fmt.Fprintf(&b, "Scenario: %s\n", scenarioName)
	fmt.Fprintf(&b, "Engine: %s, horizon: %d months\n\n", result.EngineType, len(result.Months))
	fmt.Fprintf(&b, "Total net cash flow: %.2f\n", result.Summary.TotalNetCashFlow)
	fmt.Fprintf(&b, "Average cost per cycle: %.2f\n", result.Summary.AvgCostPerCycle)
	if result.Summary.BreakEvenMonth != nil {
		fmt.Fprintf(&b, "Break-even month: %d\n", *result.Summary.BreakEvenMonth)
	} else {
		fmt.Fprintf(&b, "Break-even month: not reached within the horizon\n")
	}
	fmt.Fprintf(&b, "NPV: %.2f\n", dcf.NPV)
	if dcf.IRR != nil {
		fmt.Fprintf(&b, "IRR (annual): %.2f%%\n", *dcf.IRR*100)
	}
	if result.MonteCarlo != nil {
		mc := *result.MonteCarlo
		fmt.Fprintf(&b, "\nMonte Carlo (%d runs):\n", mc.NumRuns)
		fmt.Fprintf(&b, "  NCF P10/P50/P90: %.2f / %.2f / %.2f\n", mc.NCFP10, mc.NCFP50, mc.NCFP90)
	}
	fmt.Fprintf(&b, "\nWrite a 3-5 sentence executive summary of this pilot's financial viability.")

	return b.String(), systemPrompt
}
