package chat_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/venxlabs/venx/pkg/chat"
	"github.com/venxlabs/venx/pkg/httpx"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/providers"
)

func TestChat(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Chat Suite")
}

// loadStore builds a provider store whose single provider points at baseURL.
func loadStore(tmpDir, baseURL string) *providers.Store {
	config := fmt.Sprintf(`providers:
  - id: venice
    base_url: %s
    api_keys:
      openai: test-key
    models:
      - id: venice-uncensored
      - id: qwen3-235b
  - id: nokey
    base_url: %s
    api_keys:
      openai: "${VENX_TEST_UNSET_KEY}"
    models:
      - id: venice-uncensored
  - id: nourl
    api_keys:
      openai: test-key
    models:
      - id: venice-uncensored
`, baseURL, baseURL)

	path := filepath.Join(tmpDir, "providers.yaml")
	Expect(os.WriteFile(path, []byte(config), 0o600)).To(Succeed())

	store := providers.NewStore(logger.New(logger.WithWriter(io.Discard)))
	Expect(store.Load(path)).To(Succeed())
	return store
}

var _ = Describe("Dispatcher", func() {
	var (
		tmpDir  string
		calls   atomic.Int32
		handler func(w http.ResponseWriter, r *http.Request)
		server  *httptest.Server
	)

	BeforeEach(func() {
		var err error
		tmpDir, err = os.MkdirTemp("", "chat-test-*")
		Expect(err).NotTo(HaveOccurred())

		calls.Store(0)
		handler = func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"id": "cmpl-1", "choices": [{"message": {"role": "assistant", "content": "hi"}}]}`)
		}
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			handler(w, r)
		}))
	})

	AfterEach(func() {
		server.Close()
		os.RemoveAll(tmpDir)
	})

	newDispatcher := func(store *providers.Store) *chat.Dispatcher {
		session := httpx.NewSession(httpx.WithoutJitter())
		session.SetRetryWaitTime(time.Millisecond).SetRetryMaxWaitTime(5 * time.Millisecond)
		return chat.NewDispatcher(store,
			chat.WithSession(session),
			chat.WithLogger(logger.New(logger.WithWriter(io.Discard))),
		)
	}

	request := func(provider, model string) chat.Request {
		return chat.Request{
			ProviderID: provider,
			ModelID:    model,
			Messages:   []chat.Message{{Role: "user", Content: "hello"}},
		}
	}

	Describe("validation", func() {
		It("fails on unknown providers without issuing a network call", func() {
			d := newDispatcher(loadStore(tmpDir, server.URL))

			result := d.Complete(context.Background(), request("ghost", "venice-uncensored"))
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("ghost"))
			Expect(result.Error).To(ContainSubstring("not in the loaded configuration"))
			Expect(calls.Load()).To(BeZero())
		})

		It("fails on providers lacking a base_url", func() {
			d := newDispatcher(loadStore(tmpDir, server.URL))

			result := d.Complete(context.Background(), request("nourl", "venice-uncensored"))
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("base_url"))
			Expect(calls.Load()).To(BeZero())
		})

		It("fails on unresolved credential placeholders", func() {
			d := newDispatcher(loadStore(tmpDir, server.URL))

			result := d.Complete(context.Background(), request("nokey", "venice-uncensored"))
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("environment variable not set"))
			Expect(result.Error).To(ContainSubstring("VENX_TEST_UNSET_KEY"))
			Expect(calls.Load()).To(BeZero())
		})

		It("enumerates known model ids for unknown models", func() {
			d := newDispatcher(loadStore(tmpDir, server.URL))

			result := d.Complete(context.Background(), request("venice", "bogus-model"))
			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("venice-uncensored"))
			Expect(result.Error).To(ContainSubstring("qwen3-235b"))
			Expect(calls.Load()).To(BeZero())
		})
	})

	Describe("dispatch", func() {
		It("returns the parsed response on HTTP 200", func() {
			d := newDispatcher(loadStore(tmpDir, server.URL))

			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))
			Expect(result.Success).To(BeTrue())
			Expect(result.StatusCode).To(Equal(200))
			Expect(result.Response["id"]).To(Equal("cmpl-1"))
		})

		It("sends the bearer token and default temperature", func() {
			var gotAuth string
			var gotBody map[string]any
			handler = func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
				fmt.Fprint(w, `{}`)
			}

			d := newDispatcher(loadStore(tmpDir, server.URL))
			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))

			Expect(result.Success).To(BeTrue())
			Expect(gotAuth).To(Equal("Bearer test-key"))
			Expect(gotBody["model"]).To(Equal("venice-uncensored"))
			Expect(gotBody["temperature"]).To(BeNumerically("~", chat.DefaultTemperature, 0.001))
			Expect(gotBody).NotTo(HaveKey("max_tokens"))
		})

		It("sends an explicit temperature of zero as-is", func() {
			var gotBody map[string]any
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
				fmt.Fprint(w, `{}`)
			}

			d := newDispatcher(loadStore(tmpDir, server.URL))
			req := request("venice", "venice-uncensored")
			zero := 0.0
			req.Temperature = &zero

			Expect(d.Complete(context.Background(), req).Success).To(BeTrue())
			Expect(gotBody["temperature"]).To(BeNumerically("==", 0))
		})

		It("includes max_tokens and non-nil extra parameters", func() {
			var gotBody map[string]any
			handler = func(w http.ResponseWriter, r *http.Request) {
				Expect(json.NewDecoder(r.Body).Decode(&gotBody)).To(Succeed())
				fmt.Fprint(w, `{}`)
			}

			d := newDispatcher(loadStore(tmpDir, server.URL))
			req := request("venice", "venice-uncensored")
			req.MaxTokens = 256
			req.Extra = map[string]any{"top_p": 0.9, "skipped": nil}

			Expect(d.Complete(context.Background(), req).Success).To(BeTrue())
			Expect(gotBody["max_tokens"]).To(BeNumerically("==", 256))
			Expect(gotBody["top_p"]).To(BeNumerically("~", 0.9, 0.001))
			Expect(gotBody).NotTo(HaveKey("skipped"))
		})

		It("carries status and body text on non-200 responses", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				fmt.Fprint(w, "insufficient credits")
			}

			d := newDispatcher(loadStore(tmpDir, server.URL))
			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))

			Expect(result.Success).To(BeFalse())
			Expect(result.StatusCode).To(Equal(http.StatusPaymentRequired))
			Expect(result.Error).To(ContainSubstring("402"))
			Expect(result.Error).To(ContainSubstring("insufficient credits"))
		})

		It("identifies the provider on transport failures", func() {
			store := loadStore(tmpDir, server.URL)
			server.Close()

			d := newDispatcher(store)
			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))

			Expect(result.Success).To(BeFalse())
			Expect(result.Error).To(ContainSubstring("venice"))
		})

		It("succeeds after transient 503 responses via the retry policy", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				if calls.Load() <= 3 {
					w.WriteHeader(http.StatusServiceUnavailable)
					return
				}
				fmt.Fprint(w, `{"id": "cmpl-2"}`)
			}

			d := newDispatcher(loadStore(tmpDir, server.URL))
			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))

			Expect(result.Success).To(BeTrue())
			Expect(result.Response["id"]).To(Equal("cmpl-2"))
			Expect(calls.Load()).To(Equal(int32(4)))
		})

		It("surfaces a failure within the configured timeout", func() {
			handler = func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(2 * time.Second)
				fmt.Fprint(w, `{}`)
			}

			session := httpx.NewSession(httpx.WithoutJitter())
			session.SetRetryCount(0)
			d := chat.NewDispatcher(loadStore(tmpDir, server.URL),
				chat.WithSession(session),
				chat.WithTimeout(100*time.Millisecond),
				chat.WithLogger(logger.New(logger.WithWriter(io.Discard))),
			)

			start := time.Now()
			result := d.Complete(context.Background(), request("venice", "venice-uncensored"))

			Expect(result.Success).To(BeFalse())
			Expect(time.Since(start)).To(BeNumerically("<", time.Second))
		})
	})
})
