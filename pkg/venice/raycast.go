package venice

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/venxlabs/venx/pkg/providers"
)

// keyPlaceholder is written into generated configs instead of the literal
// secret. Raycast resolves it from the environment at use time, so the key
// never lands on disk.
const keyPlaceholder = "${" + EnvAPIKey + "}"

// RaycastProvider builds a providers-file record exposing the given catalog
// models through the Venice OpenAI-compatible endpoint.
func RaycastProvider(models []CatalogModel) providers.Provider {
	p := providers.Provider{
		ID:      "venice",
		Name:    "Venice AI",
		BaseURL: DefaultBaseURL,
		APIKeys: providers.KeyRing{{Type: "openai", Value: keyPlaceholder}},
	}

	for _, model := range models {
		entry := providers.Model{
			ID:       model.ID,
			Name:     model.Name,
			Context:  model.Context,
			Provider: "venice",
			Abilities: &providers.Abilities{
				Temperature: providers.TemperatureAbility{
					Supported: model.TemperatureSupported,
					Default:   model.TemperatureDefault,
				},
				Vision:    providers.Ability{Supported: model.Vision},
				Tools:     providers.Ability{Supported: model.Tools},
				WebSearch: providers.Ability{Supported: model.WebSearch},
				Reasoning: providers.Ability{Supported: model.Reasoning},
			},
		}
		p.Models = append(p.Models, entry)
	}

	return p
}

// WriteRaycastConfig renders the provider record for the given models and
// writes it as a providers YAML document. An empty path targets the default
// Raycast location. Returns the path written and the model count.
func WriteRaycastConfig(path string, models []CatalogModel) (string, int, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", 0, fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, ".config", "raycast", "ai", "providers.yaml")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", 0, fmt.Errorf("creating config directory: %w", err)
	}

	doc := struct {
		Providers []providers.Provider `yaml:"providers"`
	}{
		Providers: []providers.Provider{RaycastProvider(models)},
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", 0, fmt.Errorf("encoding providers config: %w", err)
	}

	if err := writeAtomic(path, data); err != nil {
		return "", 0, err
	}

	return path, len(models), nil
}
