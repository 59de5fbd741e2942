package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const usageLine = "Usage: transcription <path/to/audio/file> [--summary]"

// UsageError is reported as the usage line, preceded by Err when set.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return usageLine
	}
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

type rootFlags struct {
	summary    bool
	configPath string
	envFile    string
	language   string
	debug      bool
}

func NewRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "transcription <path/to/audio/file>",
		Short: "Transcribe an audio file with the OpenAI API",
		Long: `transcription uploads an audio file to the OpenAI speech-to-text API and writes
the transcript next to it as <name>.txt. With --summary the transcript is also
summarized by a chat model and written to <name>.summary.txt.

The API key is read from OPENAI_API_KEY, which may be set in a .env file.`,
		Example: `  transcription meeting.mp3
  transcription recordings/standup.m4a --summary
  transcription interview.wav --language ja --config transcription.yaml`,
		Args: func(cmd *cobra.Command, args []string) error {
			switch len(args) {
			case 1:
				return nil
			case 0:
				return &UsageError{}
			default:
				return &UsageError{Err: fmt.Errorf("expected one audio file, got %d arguments", len(args))}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), flags, args[0], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	cmd.Flags().BoolVar(&flags.summary, "summary", false, "Also write a summary of the transcript to <name>.summary.txt")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to an optional YAML config file")
	cmd.Flags().StringVar(&flags.envFile, "env-file", "", "Path to a dotenv file (default: .env in the working directory, if present)")
	cmd.Flags().StringVar(&flags.language, "language", "", "Language of the audio as an ISO-639-1 code, e.g. ja")
	cmd.Flags().BoolVarP(&flags.debug, "debug", "d", false, "Enable debug logging")

	return cmd
}

// Execute runs the command and returns the process exit code. Any error is
// reported on stderr here and nowhere else.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// cobra falls back to os.Args when given nil.
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		report(stderr, err)
		return 1
	}
	return 0
}
