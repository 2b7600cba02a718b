// Package credentials resolves provider API keys. A stored value is either a
// literal secret or a ${VAR} placeholder naming an environment variable.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/venxlabs/venx/pkg/providers"
)

// preferredKeyType is the api_keys entry used when a provider offers several.
const preferredKeyType = "openai"

// ErrEnvNotSet reports a ${VAR} placeholder whose environment variable is
// unset. Callers must treat this as a hard failure, never as an empty secret.
var ErrEnvNotSet = errors.New("environment variable not set")

// ErrNoCredential reports a provider with no usable credential value.
var ErrNoCredential = errors.New("no API key configured")

// placeholderPattern matches exactly ${NAME} where NAME is an identifier.
var placeholderPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// Resolve turns a stored credential value into a usable secret. A value of
// the exact form ${NAME} resolves through the environment; anything else is
// returned as the literal secret.
func Resolve(value string) (string, error) {
	if value == "" {
		return "", ErrNoCredential
	}

	m := placeholderPattern.FindStringSubmatch(value)
	if m == nil {
		return value, nil
	}

	name := m[1]
	secret, ok := os.LookupEnv(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrEnvNotSet, name)
	}

	return secret, nil
}

// ResolveProvider picks a provider's credential and resolves it. The api_keys
// entry named "openai" is preferred; otherwise the first non-empty value in
// file order wins. A bare api_key field is the fallback when no api_keys
// mapping is present.
func ResolveProvider(p providers.Provider) (string, error) {
	if value, ok := p.APIKeys.Get(preferredKeyType); ok && value != "" {
		return Resolve(value)
	}

	for _, key := range p.APIKeys {
		if key.Value != "" {
			return Resolve(key.Value)
		}
	}

	if p.APIKey != "" {
		return Resolve(p.APIKey)
	}

	return "", fmt.Errorf("%w for provider %q", ErrNoCredential, p.ID)
}
