package transcription

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cue is one timed block of a WebVTT transcript.
type Cue struct {
	Number int
	Start  time.Duration
	End    time.Duration
	Text   string
}

// ParseVTT parses WebVTT content into cues
func ParseVTT(content string) ([]Cue, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\ufeff")

	// The header line may carry a title after "WEBVTT".
	header, body, _ := strings.Cut(content, "\n")
	if strings.TrimSpace(header) != "WEBVTT" && !strings.HasPrefix(header, "WEBVTT ") {
		return nil, fmt.Errorf("invalid VTT format: missing WEBVTT header")
	}

	cues := []Cue{}
	for _, block := range strings.Split(body, "\n\n") {
		lines := strings.Split(strings.Trim(block, "\n"), "\n")

		// Optional cue identifier before the timing line
		if len(lines) > 0 && !strings.Contains(lines[0], "-->") {
			lines = lines[1:]
		}
		if len(lines) < 2 {
			continue
		}

		timestamps := strings.Split(lines[0], " --> ")
		if len(timestamps) != 2 {
			continue
		}

		start, err := parseVTTTimestamp(strings.TrimSpace(timestamps[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid start timestamp: %w", err)
		}

		// Cue settings may follow the end timestamp.
		endField := strings.Fields(timestamps[1])
		if len(endField) == 0 {
			return nil, fmt.Errorf("invalid end timestamp: empty")
		}
		end, err := parseVTTTimestamp(endField[0])
		if err != nil {
			return nil, fmt.Errorf("invalid end timestamp: %w", err)
		}

		cues = append(cues, Cue{
			Number: len(cues) + 1,
			Start:  start,
			End:    end,
			Text:   strings.Join(lines[1:], " "),
		})
	}

	return cues, nil
}

// parseVTTTimestamp accepts HH:MM:SS.mmm
func parseVTTTimestamp(timestamp string) (time.Duration, error) {
	if !strings.Contains(timestamp, ".") {
		return 0, fmt.Errorf("invalid timestamp format: missing milliseconds")
	}

	parts := strings.Split(timestamp, ":")
	if len(parts) != 3 || len(parts[0]) != 2 {
		return 0, fmt.Errorf("invalid timestamp format: expected HH:MM:SS.mmm")
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hours: %w", err)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minutes: %w", err)
	}

	secondParts := strings.Split(parts[2], ".")
	if len(secondParts) != 2 {
		return 0, fmt.Errorf("invalid seconds format: missing milliseconds")
	}

	seconds, err := strconv.Atoi(secondParts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid seconds: %w", err)
	}

	milliseconds, err := strconv.Atoi(secondParts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid milliseconds: %w", err)
	}

	duration := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(milliseconds)*time.Millisecond

	return duration, nil
}

// PlainText returns the transcript as prose. For VTT the cue text is joined
// with spaces; every other format already is plain text.
func PlainText(transcript, format string) (string, error) {
	if format != "vtt" {
		return transcript, nil
	}

	cues, err := ParseVTT(transcript)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(cues))
	for _, cue := range cues {
		texts = append(texts, cue.Text)
	}
	return strings.Join(texts, " "), nil
}
