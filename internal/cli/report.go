package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"jamesfarrell.me/audio-to-text/internal/apiclient"
	"jamesfarrell.me/audio-to-text/internal/output"
)

// report prints err as a diagnostic for the operator.
func report(w io.Writer, err error) {
	headline := color.New(color.FgRed, color.Bold)
	if isTerminal(w) && os.Getenv("NO_COLOR") == "" {
		headline.EnableColor()
	} else {
		headline.DisableColor()
	}

	var (
		usageErr *UsageError
		callErr  *apiclient.CallError
		writeErr *output.WriteError
	)

	switch {
	case errors.As(err, &usageErr):
		if usageErr.Err != nil {
			headline.Fprintf(w, "Error: %v\n", usageErr.Err)
		}
		fmt.Fprintln(w, usageLine)

	case errors.As(err, &callErr):
		headline.Fprintf(w, "Error calling OpenAI API (%s):\n", callErr.Op)
		reportCall(w, callErr)

	case errors.As(err, &writeErr):
		headline.Fprintf(w, "Error writing %s:\n", writeErr.Path)
		fmt.Fprintf(w, "  %v\n", writeErr.Err)

	default:
		headline.Fprintf(w, "Error: %v\n", err)
	}
}

func reportCall(w io.Writer, err *apiclient.CallError) {
	switch err.Kind {
	case apiclient.KindStatus:
		fmt.Fprintf(w, "  Status: %d\n", err.StatusCode)
		body := strings.TrimSpace(err.Body)
		if body == "" {
			body = err.Err.Error()
		}
		fmt.Fprintf(w, "  Data: %s\n", body)
		if len(err.Header) > 0 {
			fmt.Fprintln(w, "  Headers:")
			for _, name := range slices.Sorted(maps.Keys(err.Header)) {
				fmt.Fprintf(w, "    %s: %s\n", name, strings.Join(err.Header[name], ", "))
			}
		}
	case apiclient.KindNoResponse:
		fmt.Fprintf(w, "  No response received: %v\n", err.Err)
	case apiclient.KindMalformed:
		fmt.Fprintf(w, "  Invalid response: %v\n", err.Err)
	default:
		fmt.Fprintf(w, "  Error message: %v\n", err.Err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
