package providers

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Provider identifies one chat-completion backend declared in the Raycast
// providers file. Providers are read-only after load.
type Provider struct {
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name,omitempty"`
	BaseURL string  `yaml:"base_url,omitempty"`
	APIKey  string  `yaml:"api_key,omitempty"`
	APIKeys KeyRing `yaml:"api_keys,omitempty"`
	Models  []Model `yaml:"models,omitempty"`
}

// Model is one model entry inside a provider's catalog.
type Model struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name,omitempty"`
	Context   int        `yaml:"context,omitempty"`
	Provider  string     `yaml:"provider,omitempty"`
	Abilities *Abilities `yaml:"abilities,omitempty"`
}

// Abilities mirrors the Raycast capability flags per model.
type Abilities struct {
	Temperature TemperatureAbility `yaml:"temperature"`
	Vision      Ability            `yaml:"vision"`
	Tools       Ability            `yaml:"tools"`
	WebSearch   Ability            `yaml:"web_search"`
	Reasoning   Ability            `yaml:"reasoning"`
}

// Ability is a single supported/unsupported capability flag.
type Ability struct {
	Supported bool `yaml:"supported"`
}

// TemperatureAbility carries the temperature flag plus its default value.
type TemperatureAbility struct {
	Supported bool    `yaml:"supported"`
	Default   float64 `yaml:"default,omitempty"`
}

// Key is a single named credential entry in a provider's api_keys mapping.
// The value is either a literal secret or a ${VAR} placeholder.
type Key struct {
	Type  string
	Value string
}

// KeyRing preserves the document order of a provider's api_keys mapping.
// Order matters: when no key-type is preferred, the first non-empty value
// in file order wins.
type KeyRing []Key

// UnmarshalYAML decodes a YAML mapping into an ordered KeyRing.
func (k *KeyRing) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("api_keys: expected a mapping, got %s", node.Tag)
	}

	ring := make(KeyRing, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		ring = append(ring, Key{
			Type:  node.Content[i].Value,
			Value: node.Content[i+1].Value,
		})
	}

	*k = ring
	return nil
}

// MarshalYAML encodes the KeyRing back into a YAML mapping in order.
func (k KeyRing) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range k {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key.Type},
			&yaml.Node{Kind: yaml.ScalarNode, Value: key.Value},
		)
	}
	return node, nil
}

// Get returns the value stored under the given key type.
func (k KeyRing) Get(keyType string) (string, bool) {
	for _, key := range k {
		if key.Type == keyType {
			return key.Value, true
		}
	}
	return "", false
}
