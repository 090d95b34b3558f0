package assistant

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdelghafour233/MATJARUNA/internal/store"
	"github.com/abdelghafour233/MATJARUNA/pkg/config"
	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Gemini implements Responder against the Generative Language API.
type Gemini struct {
	client *resty.Client
	model  string
	apiKey string
}

// NewGemini creates a Gemini responder from the assistant configuration.
func NewGemini(cfg config.AssistantConfig) *Gemini {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Gemini{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(cfg.Timeout),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Reply sends the catalog-grounded prompt to the model and returns its text.
// Any transport or API failure comes back wrapped in ErrService.
func (g *Gemini) Reply(ctx context.Context, question string, products []store.Product) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(question, products)}}}},
	}

	var result generateResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", g.apiKey).
		SetBody(body).
		SetResult(&result).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrService, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("%w: unexpected status %d", ErrService, resp.StatusCode())
	}

	for _, candidate := range result.Candidates {
		for _, p := range candidate.Content.Parts {
			if p.Text != "" {
				return p.Text, nil
			}
		}
	}
	return "", fmt.Errorf("%w: empty reply", ErrService)
}

// buildPrompt renders the shop instructions, one catalog line per product, and
// the customer question into a single prompt.
func buildPrompt(question string, products []store.Product) string {
	var b strings.Builder
	b.WriteString("You are a smart shopping assistant for an online shop in Morocco called MATJARUNA.\n")
	b.WriteString("Products currently available:\n")
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (%d MAD): %s\n", p.Name, p.Price, p.Description)
	}
	b.WriteString("\nInstructions:\n")
	b.WriteString("1. Answer politely and helpfully.\n")
	b.WriteString("2. Only recommend products from the list above.\n")
	b.WriteString("3. If asked about delivery, say we cover all Moroccan cities with cash on delivery.\n")
	b.WriteString("4. Be brief and friendly.\n")
	b.WriteString("\nCustomer question: ")
	b.WriteString(question)
	return b.String()
}
