package remote

// Package remote wraps the single network call of the system: sending one
// user utterance to the remote chat endpoint. It owns the credential cache,
// the hard timeout, and the classification of failures into ChannelError.
// It never touches the conversation store.

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/comigor/medchat-go/internal/config"
	"github.com/comigor/medchat-go/internal/identity"
	"github.com/comigor/medchat-go/internal/logger"
)

const defaultTimeout = 15 * time.Second

// ChatAPI is the minimal subset of the remote API the client uses; it is
// easy to mock in tests.
type ChatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	ListModels(ctx context.Context) (openai.ModelsList, error)
}

// Client is the remote channel client. The credential is fetched lazily from
// the identity provider, cached, and invalidated when the server reports it
// invalid so the next call re-fetches.
type Client struct {
	cfg     config.RemoteConfig
	idp     identity.Provider
	newAPI  func(token string) ChatAPI
	mu      sync.Mutex
	api     ChatAPI // nil until the first credentialed call
	timeout time.Duration
}

// New creates a remote channel client backed by the real endpoint.
func New(cfg config.RemoteConfig, idp identity.Provider) *Client {
	c := &Client{
		cfg: cfg,
		idp: idp,
		newAPI: func(token string) ChatAPI {
			apiCfg := openai.DefaultConfig(token)
			if cfg.BaseURL != "" {
				apiCfg.BaseURL = cfg.BaseURL
			}
			return openai.NewClientWithConfig(apiCfg)
		},
		timeout: cfg.Timeout,
	}
	if c.timeout <= 0 {
		c.timeout = defaultTimeout
	}
	return c
}

// NewWithAPI creates a client with a custom API constructor, used by tests.
func NewWithAPI(cfg config.RemoteConfig, idp identity.Provider, newAPI func(token string) ChatAPI) *Client {
	c := New(cfg, idp)
	c.newAPI = newAPI
	return c
}

// Send performs exactly one attempt against the remote chat endpoint and
// returns the assistant utterance. Failures come back as *ChannelError.
func (c *Client) Send(ctx context.Context, utterance string) (string, error) {
	api, err := c.ensureAPI(ctx)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: utterance},
		},
	})
	if err != nil {
		cerr := c.classify(err)
		logger.L.Warn("remote send failed", "kind", cerr.Kind, "error", err)
		return "", cerr
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ChannelError{Kind: KindEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}

// Probe performs a minimal no-op call solely to test reachability. It never
// produces a chat message; callers feed its outcome into the health tracker.
func (c *Client) Probe(ctx context.Context) bool {
	api, err := c.ensureAPI(ctx)
	if err != nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := api.ListModels(ctx); err != nil {
		c.classify(err) // invalidates the credential on 401
		logger.L.Debug("probe failed", "error", err)
		return false
	}
	return true
}

// ensureAPI returns the cached API handle, fetching the credential once if
// none is cached yet.
func (c *Client) ensureAPI(ctx context.Context) (ChatAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}

	token, err := c.idp.CurrentCredential(ctx)
	if err != nil || token == "" {
		return nil, &ChannelError{Kind: KindUnauthorized, Err: err}
	}
	c.api = c.newAPI(token)
	return c.api, nil
}

// invalidate drops the cached credentialed API handle so the next call
// re-fetches a credential.
func (c *Client) invalidate() {
	c.mu.Lock()
	c.api = nil
	c.mu.Unlock()
}

// classify maps a raw API error to a ChannelError and invalidates the
// credential when the server reports it invalid.
func (c *Client) classify(err error) *ChannelError {
	if errors.Is(err, context.DeadlineExceeded) {
		return &ChannelError{Kind: KindTimeout, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusUnauthorized {
			c.invalidate()
			return &ChannelError{Kind: KindUnauthorized, Err: err}
		}
		return &ChannelError{Kind: KindServerRejected, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		if reqErr.HTTPStatusCode == http.StatusUnauthorized {
			c.invalidate()
			return &ChannelError{Kind: KindUnauthorized, Err: err}
		}
		return &ChannelError{Kind: KindServerRejected, Err: err}
	}

	return &ChannelError{Kind: KindNetwork, Err: err}
}
