package redact_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/venxlabs/venx/pkg/redact"
)

func TestRedact(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Redact Suite")
}

var _ = Describe("Redact", func() {
	It("masks sensitive keys at any nesting depth", func() {
		input := map[string]any{
			"api_key": "x",
			"nested":  map[string]any{"Token": "y"},
			"list":    []any{map[string]any{"secret": "z"}},
		}

		got := redact.Redact(input)
		Expect(got).To(Equal(map[string]any{
			"api_key": redact.Marker,
			"nested":  map[string]any{"Token": redact.Marker},
			"list":    []any{map[string]any{"secret": redact.Marker}},
		}))
	})

	It("normalizes key casing and separators", func() {
		input := map[string]any{
			"API-Key":       "a",
			"Access_Token":  "b",
			"Authorization": "c",
			"client-secret": "d",
		}

		got := redact.Redact(input).(map[string]any)
		for key := range input {
			Expect(got[key]).To(Equal(redact.Marker), "key %q should be masked", key)
		}
	})

	It("leaves non-sensitive keys and scalars untouched", func() {
		input := map[string]any{
			"model":       "venice-uncensored",
			"temperature": 0.7,
			"messages":    []any{"hello", 42, true},
		}

		Expect(redact.Redact(input)).To(Equal(input))
	})

	It("masks sensitive values regardless of their type", func() {
		input := map[string]any{
			"api_keys": map[string]any{"openai": "sk-123"},
		}

		got := redact.Redact(input).(map[string]any)
		Expect(got["api_keys"]).To(Equal(redact.Marker))
	})

	It("is idempotent", func() {
		input := map[string]any{
			"api_key": "x",
			"nested":  map[string]any{"password": "y", "keep": "z"},
		}

		once := redact.Redact(input)
		twice := redact.Redact(once)
		Expect(twice).To(Equal(once))
	})

	It("passes through bare scalars and nil", func() {
		Expect(redact.Redact("plain")).To(Equal("plain"))
		Expect(redact.Redact(nil)).To(BeNil())
	})
})
