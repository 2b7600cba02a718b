// Package chatcmder provides the chat command for dispatching completions to
// OpenAI-compatible providers from the Raycast provider configuration.
package chatcmder

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/venxlabs/venx/pkg/chat"
	"github.com/venxlabs/venx/pkg/cliui"
	"github.com/venxlabs/venx/pkg/config"
	"github.com/venxlabs/venx/pkg/logger"
	"github.com/venxlabs/venx/pkg/providers"
	"github.com/venxlabs/venx/pkg/redact"
)

var (
	userPrompt      = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true).Render("you> ")
	assistantPrompt = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Render("assistant> ")
)

type chatCommander struct {
	providerID    string
	modelID       string
	providersPath string
	system        string
	temperature   float64
	maxTokens     int
	timeout       uint
	jsonOut       bool
	debug         bool

	logger *slog.Logger
	store  *providers.Store
}

const chatLongDesc string = `Send chat completions to an OpenAI-compatible provider.

Providers and their models come from the Raycast providers.yaml config.
With a prompt argument the command sends one completion and exits; without
one it starts an interactive session.

Credentials are resolved from the provider's api_keys mapping; values of the
form ${NAME} are read from the environment at dispatch time.

Examples:
  venx chat -p venice -m venice-uncensored "what is a monad?"
  venx chat -p venice -m venice-uncensored
  venx chat -p openrouter -m qwen3-235b --temperature 0.2 --json "hi"`

const chatShortDesc string = "Chat with a configured provider"

func NewChatCmd() *cobra.Command {
	cmder := &chatCommander{}

	cmd := &cobra.Command{
		Use:   "chat [prompt]",
		Short: chatShortDesc,
		Long:  chatLongDesc,
		Args:  cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			// Flags fall through to VENX_* env vars, then config.toml,
			// then defaults.
			configDir, _ := cmd.Flags().GetString("config-dir")
			v, err := config.InitViper(configDir)
			if err != nil {
				return err
			}
			config.BindRegisteredFlags(v, cmd, config.ChatFlags(),
				[]string{config.FlagProvidersPath, config.FlagTemperature})

			cmder.providersPath = v.GetString("chat.providers_path")
			cmder.temperature = v.GetFloat64("chat.temperature")
			cmder.timeout = v.GetUint("chat.timeout_seconds")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cmder.debug, err = cmd.Flags().GetBool("debug")
			if err != nil {
				return fmt.Errorf("could not get debug flag: %w", err)
			}
			cmder.jsonOut, _ = cmd.Flags().GetBool("json")

			return cmder.run(cmd.Context(), strings.Join(args, " "))
		},
	}

	fs := config.ChatFlags()
	cmd.Flags().StringVarP(&cmder.providerID, "provider", "p", "", "Provider id from the providers config (required)")
	cmd.Flags().StringVarP(&cmder.modelID, "model", "m", "", "Model id declared by the provider (required)")
	config.AddStringFlag(cmd, fs, config.FlagProvidersPath, &cmder.providersPath)
	config.AddFloat64Flag(cmd, fs, config.FlagTemperature, &cmder.temperature)
	cmd.Flags().StringVar(&cmder.system, "system", "", "System prompt to prepend")
	cmd.Flags().IntVar(&cmder.maxTokens, "max-tokens", 0, "Maximum tokens in the response (0 = provider default)")

	_ = cmd.MarkFlagRequired("provider")
	_ = cmd.MarkFlagRequired("model")

	return cmd
}

func (c *chatCommander) run(ctx context.Context, prompt string) error {
	c.logger = logger.New(logger.WithPretty(true), logger.WithDebug(c.debug))

	store, err := c.loadProviders()
	if err != nil {
		return err
	}
	c.store = store

	dispatcher := chat.NewDispatcher(store,
		chat.WithLogger(c.logger),
		chat.WithTimeout(time.Duration(c.timeout)*time.Second),
	)

	if prompt != "" {
		return c.oneShot(ctx, dispatcher, prompt)
	}
	return c.interactive(ctx, dispatcher)
}

// loadProviders loads the provider store from the configured path, falling
// back to the default Raycast locations.
func (c *chatCommander) loadProviders() (*providers.Store, error) {
	store := providers.NewStore(c.logger)

	paths := []string{c.providersPath}
	if c.providersPath == "" {
		paths = providers.DefaultSearchPaths()
	}

	var lastErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := store.Load(path); err != nil {
			lastErr = err
			continue
		}
		return store, nil
	}

	if lastErr != nil {
		return nil, fmt.Errorf("loading providers config: %w", lastErr)
	}
	return store, nil
}

// oneShot sends a single completion and prints the response.
func (c *chatCommander) oneShot(ctx context.Context, dispatcher *chat.Dispatcher, prompt string) error {
	result := dispatcher.Complete(ctx, c.request(nil, prompt))

	if c.jsonOut {
		return cliui.PrintJSON(os.Stdout, redactResult(result))
	}

	if !result.Success {
		return fmt.Errorf("%s", result.Error)
	}

	content := assistantContent(result.Response)
	rendered, err := cliui.RenderMarkdown(content)
	if err != nil {
		fmt.Println(content)
		return nil
	}
	fmt.Print(rendered)
	return nil
}

// interactive runs a line-based chat loop keeping the conversation history.
func (c *chatCommander) interactive(ctx context.Context, dispatcher *chat.Dispatcher) error {
	fmt.Println()
	fmt.Printf("  %s %s  %s %s\n",
		cliui.KeyStyle.Render("Provider:"),
		cliui.NameStyle.Render(c.providerID),
		cliui.KeyStyle.Render("Model:"),
		cliui.NameStyle.Render(c.modelID),
	)
	fmt.Printf("  %s\n\n", cliui.DimStyle.Render("Type your message and press Enter. /exit or Ctrl+D to quit."))

	var history []chat.Message
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print(userPrompt)
		if !scanner.Scan() {
			// EOF or error
			break
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "/exit" {
			break
		}

		result := dispatcher.Complete(ctx, c.request(history, input))
		if !result.Success {
			fmt.Fprintf(os.Stderr, "  %s %s\n", cliui.FailMark, result.Error)
			continue
		}

		content := assistantContent(result.Response)
		fmt.Print(assistantPrompt)
		fmt.Println(content)
		fmt.Println()

		history = append(history,
			chat.Message{Role: "user", Content: input},
			chat.Message{Role: "assistant", Content: content},
		)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	fmt.Println()
	return nil
}

// request assembles the dispatch request from history plus the new prompt.
func (c *chatCommander) request(history []chat.Message, prompt string) chat.Request {
	var messages []chat.Message
	if c.system != "" {
		messages = append(messages, chat.Message{Role: "system", Content: c.system})
	}
	messages = append(messages, history...)
	messages = append(messages, chat.Message{Role: "user", Content: prompt})

	return chat.Request{
		ProviderID:  c.providerID,
		ModelID:     c.modelID,
		Messages:    messages,
		Temperature: &c.temperature,
		MaxTokens:   c.maxTokens,
	}
}

// assistantContent extracts the first choice's message content.
func assistantContent(response map[string]any) string {
	choices, ok := response["choices"].([]any)
	if !ok || len(choices) == 0 {
		return ""
	}

	choice, ok := choices[0].(map[string]any)
	if !ok {
		return ""
	}

	message, ok := choice["message"].(map[string]any)
	if !ok {
		return ""
	}

	content, _ := message["content"].(string)
	return content
}

// redactResult scrubs secrets from the result before it reaches stdout.
func redactResult(result chat.Result) map[string]any {
	doc := map[string]any{
		"success": result.Success,
	}
	if result.StatusCode != 0 {
		doc["status_code"] = result.StatusCode
	}
	if result.Response != nil {
		doc["response"] = result.Response
	}
	if result.Error != "" {
		doc["error"] = result.Error
	}

	redacted, _ := redact.Redact(doc).(map[string]any)
	return redacted
}
