package venice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// uncensoredKeywords mark catalog models considered uncensored. A model
// matches when its id or name contains any keyword, case-insensitively.
var uncensoredKeywords = []string{"uncensored", "flux-dev", "lustify"}

// CatalogModel is one entry from the Venice model catalog, flattened from the
// API's model_spec nesting.
type CatalogModel struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Context int    `json:"context,omitempty"`

	Vision    bool `json:"vision"`
	Tools     bool `json:"tools"`
	WebSearch bool `json:"web_search"`
	Reasoning bool `json:"reasoning"`

	TemperatureSupported bool    `json:"temperature_supported"`
	TemperatureDefault   float64 `json:"temperature_default,omitempty"`
}

// catalogEnvelope mirrors the /models response wire shape.
type catalogEnvelope struct {
	Data []struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		ModelSpec struct {
			Name                   string `json:"name"`
			AvailableContextTokens int    `json:"availableContextTokens"`
			Capabilities           struct {
				SupportsVision    bool `json:"supportsVision"`
				SupportsFunctions bool `json:"supportsFunctionCalling"`
				SupportsWebSearch bool `json:"supportsWebSearch"`
				SupportsReasoning bool `json:"supportsReasoning"`
			} `json:"capabilities"`
			Constraints struct {
				Temperature *struct {
					Default float64 `json:"default"`
				} `json:"temperature"`
			} `json:"constraints"`
		} `json:"model_spec"`
	} `json:"data"`
}

// Models fetches the model catalog, optionally filtered by type ("text",
// "image", or empty for all).
func (c *Client) Models(ctx context.Context, modelType string) ([]CatalogModel, error) {
	req := c.authorized().SetContext(ctx)
	if modelType != "" {
		req.SetQueryParam("type", modelType)
	}

	resp, err := req.Get(c.baseURL + modelsPath)
	if err != nil {
		return nil, fmt.Errorf("model catalog request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, apiError(resp)
	}

	var envelope catalogEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return nil, fmt.Errorf("decoding model catalog: %w", err)
	}

	models := make([]CatalogModel, 0, len(envelope.Data))
	for _, entry := range envelope.Data {
		model := CatalogModel{
			ID:        entry.ID,
			Name:      entry.ModelSpec.Name,
			Type:      entry.Type,
			Context:   entry.ModelSpec.AvailableContextTokens,
			Vision:    entry.ModelSpec.Capabilities.SupportsVision,
			Tools:     entry.ModelSpec.Capabilities.SupportsFunctions,
			WebSearch: entry.ModelSpec.Capabilities.SupportsWebSearch,
			Reasoning: entry.ModelSpec.Capabilities.SupportsReasoning,
		}

		if t := entry.ModelSpec.Constraints.Temperature; t != nil {
			model.TemperatureSupported = true
			model.TemperatureDefault = t.Default
		}

		if model.Name == "" {
			model.Name = model.ID
		}

		models = append(models, model)
	}

	return models, nil
}

// UncensoredModels fetches the catalog and keeps only uncensored entries.
func (c *Client) UncensoredModels(ctx context.Context, modelType string) ([]CatalogModel, error) {
	models, err := c.Models(ctx, modelType)
	if err != nil {
		return nil, err
	}
	return FilterUncensored(models), nil
}

// FilterUncensored keeps the models whose id or name matches an uncensored
// keyword.
func FilterUncensored(models []CatalogModel) []CatalogModel {
	filtered := make([]CatalogModel, 0, len(models))
	for _, model := range models {
		if IsUncensored(model) {
			filtered = append(filtered, model)
		}
	}
	return filtered
}

// IsUncensored reports whether a catalog model matches the keyword list.
func IsUncensored(model CatalogModel) bool {
	id := strings.ToLower(model.ID)
	name := strings.ToLower(model.Name)
	for _, keyword := range uncensoredKeywords {
		if strings.Contains(id, keyword) || strings.Contains(name, keyword) {
			return true
		}
	}
	return false
}
