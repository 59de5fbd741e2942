package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"jamesfarrell.me/audio-to-text/internal/apiclient"
	"jamesfarrell.me/audio-to-text/internal/config"
	"jamesfarrell.me/audio-to-text/internal/logging"
	"jamesfarrell.me/audio-to-text/internal/output"
	"jamesfarrell.me/audio-to-text/internal/summary"
	"jamesfarrell.me/audio-to-text/internal/transcription"
)

var ErrFileNotFound = errors.New("file not found")

func run(ctx context.Context, flags rootFlags, inputPath string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(config.Options{ConfigPath: flags.configPath, EnvFile: flags.envFile})
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if flags.language != "" {
		cfg.Transcription.Language = flags.language
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := checkInput(inputPath); err != nil {
		return err
	}

	logger := logging.New(stderr, cfg.Log, flags.debug)
	logger.Debug("configuration loaded", "base_url", cfg.OpenAI.BaseURL, "summary", flags.summary)

	transcriber := transcription.NewService(apiclient.New(apiclient.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.Transcription.Timeout,
	}), cfg.Transcription, logger)

	transcript, err := transcriber.TranscribeAudio(ctx, inputPath)
	if err != nil {
		return err
	}

	transcriptPath := output.TranscriptPath(inputPath)
	if err := output.Write(transcriptPath, transcript); err != nil {
		return err
	}
	logger.Info("transcript written", "path", transcriptPath)
	fmt.Fprintf(stdout, "Transcript saved to %s\n", transcriptPath)

	if !flags.summary {
		return nil
	}

	text, err := transcription.PlainText(transcript, transcriber.Format())
	if err != nil {
		return fmt.Errorf("preparing transcript for summary: %w", err)
	}

	summarizer := summary.New(apiclient.New(apiclient.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.Summary.Timeout,
	}), cfg.Summary, logger)

	result, err := summarizer.Summarize(ctx, text)
	if err != nil {
		return err
	}

	summaryPath := output.SummaryPath(inputPath)
	if err := output.Write(summaryPath, result); err != nil {
		return err
	}
	logger.Info("summary written", "path", summaryPath)
	fmt.Fprintf(stdout, "Summary saved to %s\n", summaryPath)

	return nil
}

func checkInput(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w at %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}
