package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jha_chat/pkg/config"
	"jha_chat/pkg/version"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/tidwall/gjson"
)

// Fixed request parameters. Callers cannot override them.
const (
	requestTemperature      = 0.7
	requestMaxTokens        = 100
	requestPresencePenalty  = 0.1
	requestFrequencyPenalty = 0.1
)

// TypingDelay is how long SendMessageWithTypingEffect holds a reply.
const TypingDelay = 500 * time.Millisecond

// Client sends conversations to a chat-completion endpoint. It holds only
// immutable configuration and is safe for concurrent use.
type Client struct {
	sdk    openai.Client
	apiKey string
	apiURL string
	model  string
	logger *slog.Logger
}

type clientOptions struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*clientOptions)

// WithHTTPClient sets the HTTP client used for provider calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithLogger sets the logger failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// New creates a Client from endpoint config. It fails with ErrMissingCredential
// when no API key is set.
func New(cfg config.EndpointConfig, opts ...Option) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("chat client: %w", ErrMissingCredential)
	}
	if strings.TrimSpace(cfg.APIURL) == "" {
		return nil, fmt.Errorf("chat client: api_url is required")
	}
	endpoint, err := url.ParseRequestURI(cfg.APIURL)
	if err != nil || endpoint.Host == "" {
		return nil, fmt.Errorf("chat client: invalid api_url %q", cfg.APIURL)
	}
	if endpoint.Scheme != "http" && endpoint.Scheme != "https" {
		return nil, fmt.Errorf("chat client: api_url must use http or https, got %q", cfg.APIURL)
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, fmt.Errorf("chat client: model is required")
	}

	o := clientOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.httpClient == nil {
		timeout := cfg.APITimeoutSeconds
		if timeout <= 0 {
			timeout = config.DefaultAPITimeoutSeconds
		}
		o.httpClient = &http.Client{Timeout: time.Duration(timeout) * time.Second}
	}

	sdk := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.APIURL),
		option.WithHTTPClient(o.httpClient),
		option.WithMaxRetries(0),
		option.WithHeader("User-Agent", "jha/"+version.Summary()),
		option.WithMiddleware(pinEndpoint(endpoint)),
	)

	o.logger.Debug("chat_client_ready",
		"api_url", cfg.APIURL,
		"model", cfg.Model,
		"api_key_set", true,
	)
	return &Client{
		sdk:    sdk,
		apiKey: cfg.APIKey,
		apiURL: cfg.APIURL,
		model:  cfg.Model,
		logger: o.logger,
	}, nil
}

// pinEndpoint sends every request to the configured URL as-is. The SDK would
// otherwise append its own resource path to the base URL.
func pinEndpoint(endpoint *url.URL) option.Middleware {
	return func(req *http.Request, next option.MiddlewareNext) (*http.Response, error) {
		u := *endpoint
		req.URL = &u
		req.Host = u.Host
		return next(req)
	}
}

// SendMessage sends the system prompt, history and message as one request and
// returns the assistant's reply. Every failure is logged and reported to the
// caller as ErrNoResponse.
func (c *Client) SendMessage(ctx context.Context, message string, history []ChatMessage) (ChatResponse, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return ChatResponse{}, c.fail(&Error{Kind: KindConfiguration, Err: ErrMissingCredential})
	}

	params, err := c.buildChatParams(message, history)
	if err != nil {
		return ChatResponse{}, c.fail(&Error{Kind: KindRequest, Err: err})
	}

	c.logger.Debug("chat_request",
		"model", c.model,
		"message_count", len(params.Messages),
		"history_messages", len(history),
	)

	var raw []byte
	_, err = c.sdk.Chat.Completions.New(ctx, params,
		option.WithJSONSet("stream", false),
		option.WithResponseBodyInto(&raw),
	)
	if err != nil {
		return ChatResponse{}, c.fail(transportError(err))
	}

	content, err := parseContent(raw)
	if err != nil {
		return ChatResponse{}, c.fail(&Error{Kind: KindFormat, Err: err})
	}

	c.logger.Debug("chat_response", "response_bytes", len(raw))
	return newAssistantResponse(content), nil
}

// SendMessageWithTypingEffect behaves like SendMessage but holds a successful
// reply for TypingDelay before returning it.
func (c *Client) SendMessageWithTypingEffect(ctx context.Context, message string, history []ChatMessage) (ChatResponse, error) {
	resp, err := c.SendMessage(ctx, message, history)
	if err != nil {
		return ChatResponse{}, err
	}
	time.Sleep(TypingDelay)
	return resp, nil
}

// Welcome returns the greeting for userName, or for "there" when blank.
func (c *Client) Welcome(userName string) ChatResponse {
	return newAssistantResponse(welcomeText(userName))
}

// Help returns the list of supported topics.
func (c *Client) Help() ChatResponse {
	return newAssistantResponse(helpText)
}

func (c *Client) buildChatParams(message string, history []ChatMessage) (openai.ChatCompletionNewParams, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(SystemPrompt))
	for i, msg := range history {
		param, err := toChatMessageParam(msg)
		if err != nil {
			return openai.ChatCompletionNewParams{}, fmt.Errorf("history[%d]: %w", i, err)
		}
		messages = append(messages, param)
	}
	messages = append(messages, openai.UserMessage(message))

	return openai.ChatCompletionNewParams{
		Model:            openai.ChatModel(c.model),
		Messages:         messages,
		Temperature:      openai.Float(requestTemperature),
		MaxTokens:        openai.Int(requestMaxTokens),
		PresencePenalty:  openai.Float(requestPresencePenalty),
		FrequencyPenalty: openai.Float(requestFrequencyPenalty),
	}, nil
}

func toChatMessageParam(msg ChatMessage) (openai.ChatCompletionMessageParamUnion, error) {
	switch strings.ToLower(strings.TrimSpace(msg.Role)) {
	case RoleUser:
		return openai.UserMessage(msg.Content), nil
	case RoleAssistant:
		return openai.AssistantMessage(msg.Content), nil
	default:
		return openai.ChatCompletionMessageParamUnion{}, fmt.Errorf("unsupported role: %s", msg.Role)
	}
}

func transportError(err error) *Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return &Error{Kind: KindTransport, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &Error{Kind: KindTransport, Err: err}
}

// parseContent extracts choices[0].message.content from a raw response body.
func parseContent(raw []byte) (string, error) {
	if !gjson.ValidBytes(raw) {
		return "", errors.New("response body is not valid JSON")
	}
	choices := gjson.GetBytes(raw, "choices")
	if !choices.IsArray() || len(choices.Array()) == 0 {
		return "", errors.New("response has no choices")
	}
	content := gjson.GetBytes(raw, "choices.0.message.content")
	if content.Type != gjson.String {
		return "", errors.New("choices[0].message.content is missing or not a string")
	}
	return content.String(), nil
}

func (c *Client) fail(e *Error) error {
	logger := c.logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{"kind", string(e.Kind), "error", e.Err.Error()}
	if e.StatusCode != 0 {
		attrs = append(attrs, "status_code", e.StatusCode)
	}
	logger.Error("chat_request_failed", attrs...)
	return ErrNoResponse
}
