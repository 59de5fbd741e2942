package summary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"jamesfarrell.me/audio-to-text/internal/apiclient"
	"jamesfarrell.me/audio-to-text/internal/config"
)

// DefaultPrompt asks for a short Japanese summary centred on decisions and
// follow-up actions.
const DefaultPrompt = `あなたは会議の文字起こしを要約するアシスタントです。
以下の文字起こしを日本語で簡潔に要約してください。
- 決定事項と結論を最優先でまとめる
- 次のアクション（担当者・期限が分かれば併記）を箇条書きにする
- 雑談や重複は省く`

// Placeholder is written instead of a summary when the API returns no choices
// or an empty message.
const Placeholder = "要約を取得できませんでした。"

type Summarizer struct {
	client      *apiclient.Client
	model       string
	temperature float32
	prompt      string
	logger      *slog.Logger
}

func New(client *apiclient.Client, cfg config.SummaryConfig, logger *slog.Logger) *Summarizer {
	prompt := cfg.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt
	}

	return &Summarizer{
		client:      client,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		prompt:      prompt,
		logger:      logger,
	}
}

// Summarize sends the transcript as the user turn after the system prompt.
func (s *Summarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.prompt},
			{Role: openai.ChatMessageRoleUser, Content: transcript},
		},
		Temperature: s.temperature,
	}

	s.logger.Info("requesting summary", "model", s.model, "chars", len(transcript))
	start := time.Now()

	resp, err := s.client.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarizing transcript: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		s.logger.Warn("summary response had no content, using placeholder", "choices", len(resp.Choices))
		return Placeholder, nil
	}

	s.logger.Info("summary received", "elapsed", time.Since(start).Round(time.Millisecond))
	return resp.Choices[0].Message.Content, nil
}
