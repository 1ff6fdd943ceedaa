package classify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Gemini classifies description batches with one generate-content call to
// the Gemini API.
type Gemini struct {
	client     *genai.Client
	model      string
	keywords   []string
	charBudget int
}

// NewGemini creates a Gemini classifier. An empty API key is an error; the
// caller decides whether that disables classification or aborts the run.
func NewGemini(ctx context.Context, apiKey, model string, keywords []string, charBudget int) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("classify: missing Gemini API key")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("classify: create client: %w", err)
	}
	return &Gemini{
		client:     client,
		model:      model,
		keywords:   keywords,
		charBudget: charBudget,
	}, nil
}

// ClassifyBulk sends the whole batch in a single request and parses the
// response as a JSON boolean array. Descriptions past the character budget
// are never sent and come back false.
func (g *Gemini) ClassifyBulk(ctx context.Context, descriptions []string) ([]bool, error) {
	if len(descriptions) == 0 {
		return []bool{}, nil
	}

	kept := truncateBatch(descriptions, g.charBudget)
	verdicts := make([]bool, len(descriptions))
	if kept == 0 {
		return verdicts, nil
	}

	prompt, err := g.buildPrompt(descriptions[:kept])
	if err != nil {
		return nil, fmt.Errorf("classify: build prompt: %w", err)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("classify: generate content: %w", err)
	}

	var parsed []bool
	raw := stripCodeFence(resp.Text())
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, fmt.Errorf("classify: parse response %q: %w", raw, err)
	}
	if len(parsed) != kept {
		return nil, fmt.Errorf("classify: response length %d does not match batch length %d", len(parsed), kept)
	}

	copy(verdicts, parsed)
	return verdicts, nil
}

func (g *Gemini) buildPrompt(batch []string) (string, error) {
	encoded, err := json.Marshal(batch)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"You will receive a JSON array of company descriptions. "+
			"For each description, decide if it is relevant to energy investing. "+
			"Keywords: %s. "+
			"Return a JSON array of booleans with the same length and order, no extra text.\n\n"+
			"Descriptions:\n%s",
		strings.Join(g.keywords, ", "), encoded), nil
}

// stripCodeFence unwraps a ```json ... ``` fenced answer. Models add the
// fence despite the no-extra-text instruction.
func stripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}
	raw = strings.Trim(raw, "`")
	raw = strings.TrimPrefix(raw, "json")
	return strings.TrimSpace(raw)
}
