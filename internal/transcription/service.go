package transcription

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sashabaranov/go-openai"

	"jamesfarrell.me/audio-to-text/internal/apiclient"
	"jamesfarrell.me/audio-to-text/internal/config"
)

type Service struct {
	client   *apiclient.Client
	model    string
	language string
	format   string
	logger   *slog.Logger
}

func NewService(client *apiclient.Client, cfg config.TranscriptionConfig, logger *slog.Logger) *Service {
	return &Service{
		client:   client,
		model:    cfg.Model,
		language: cfg.Language,
		format:   cfg.ResponseFormat,
		logger:   logger,
	}
}

// Format is the response format requested from the API.
func (s *Service) Format() string {
	return s.format
}

// TranscribeAudio uploads the file and returns the transcript exactly as the
// API produced it. Errors are *apiclient.CallError.
func (s *Service) TranscribeAudio(ctx context.Context, filePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    s.model,
		FilePath: filePath,
		Language: s.language,
		Format:   openai.AudioResponseFormat(s.format),
	}

	s.logger.Info("sending audio for transcription", "file", filePath, "model", s.model, "format", s.format)
	start := time.Now()

	resp, err := s.client.Transcribe(ctx, req)
	if err != nil {
		return "", fmt.Errorf("transcribing %s: %w", filePath, err)
	}

	s.logger.Info("transcription received", "chars", len(resp.Text), "elapsed", time.Since(start).Round(time.Millisecond))
	return resp.Text, nil
}
