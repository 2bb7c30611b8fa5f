package suggest

import (
	"context"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/muurk/sanad/internal/logging"
)

const (
	// DefaultModel is the completion model used when none is configured
	DefaultModel = "gpt-3.5-turbo"

	// DefaultTimeout is the per-request deadline
	DefaultTimeout = 30 * time.Second

	// maxSuggestionTokens bounds the generated text length
	maxSuggestionTokens = 200

	// suggestionTemperature is the fixed sampling temperature
	suggestionTemperature = 0.7
)

// Config configures a suggestion Client. APIKey is the bearer credential;
// everything else has a working default.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // override for OpenAI-compatible endpoints, "" for api.openai.com
	Timeout time.Duration
}

// Client issues single-attempt suggestion requests against a chat-completion
// endpoint. It performs no retries; failures map onto the SuggestError
// taxonomy for the caller to surface.
type Client struct {
	api        *openai.Client
	model      string
	timeout    time.Duration
	configured bool
}

// NewClient builds a suggestion client. When no API key is available it
// returns the client together with a NotConfigured error: the client is still
// usable, but every Suggest call fails fast with the same error before any
// network attempt, so the wizard can run with suggestions disabled.
func NewClient(cfg Config) (*Client, error) {
	c := &Client{
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}
	if c.model == "" {
		c.model = DefaultModel
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}

	if cfg.APIKey == "" {
		return c, NewNotConfiguredError()
	}

	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	c.configured = true
	return c, nil
}

// Configured reports whether the client holds a credential.
func (c *Client) Configured() bool {
	return c.configured
}

// Suggest requests one generated text for the given prompt seed. The seed is
// sent verbatim as the user message; substituting a default seed for an empty
// field is the caller's job. The returned text is whitespace-trimmed.
func (c *Client) Suggest(ctx context.Context, seed string, kind FieldKind, language string) (string, error) {
	if !c.configured {
		return "", NewNotConfiguredError()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: SystemPrompt(kind, language),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: seed,
			},
		},
		MaxTokens:   maxSuggestionTokens,
		Temperature: suggestionTemperature,
	}

	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", Classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &SuggestError{
			Kind:    ErrKindProvider,
			Message: "provider returned no completion",
		}
	}

	logging.Debug("Suggestion completed")
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
