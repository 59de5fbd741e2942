package apiclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
)

type Config struct {
	APIKey  string
	BaseURL string
	// Timeout bounds a whole request including the upload. Zero means no limit.
	Timeout time.Duration
}

// Client wraps the go-openai client so that every failed call comes back as a
// *CallError carrying whatever the HTTP exchange produced.
type Client struct {
	api      *openai.Client
	recorder *recorder
}

func New(cfg Config) *Client {
	rec := &recorder{client: &http.Client{Timeout: cfg.Timeout}}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = rec

	return &Client{
		api:      openai.NewClientWithConfig(clientCfg),
		recorder: rec,
	}
}

func (c *Client) Transcribe(ctx context.Context, req openai.AudioRequest) (openai.AudioResponse, error) {
	c.recorder.reset()
	resp, err := c.api.CreateTranscription(ctx, req)
	if err != nil {
		return resp, c.classify("transcription", err)
	}
	return resp, nil
}

func (c *Client) Complete(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.recorder.reset()
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return resp, c.classify("chat completion", err)
	}
	return resp, nil
}

// recorder sits between go-openai and net/http. It notes whether a request
// left the process, whether any response came back, and keeps a copy of the
// last error response so its body and headers can be reported.
type recorder struct {
	client *http.Client

	sent     bool
	received bool
	failed   *exchange
}

type exchange struct {
	statusCode int
	header     http.Header
	body       []byte
}

func (r *recorder) reset() {
	r.sent = false
	r.received = false
	r.failed = nil
}

func (r *recorder) Do(req *http.Request) (*http.Response, error) {
	r.sent = true

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	r.received = true

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		// A partial body is still worth reporting.
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(body))

		r.failed = &exchange{
			statusCode: resp.StatusCode,
			header:     resp.Header.Clone(),
			body:       body,
		}
	}

	return resp, nil
}
