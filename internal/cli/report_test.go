package cli

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"jamesfarrell.me/audio-to-text/internal/apiclient"
	"jamesfarrell.me/audio-to-text/internal/output"
)

func TestReport(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "usage only",
			err:  &UsageError{},
			want: []string{usageLine},
		},
		{
			name: "status with headers",
			err: &apiclient.CallError{
				Op:         "transcription",
				Kind:       apiclient.KindStatus,
				StatusCode: http.StatusUnauthorized,
				Body:       `{"error":{"message":"bad key"}}` + "\n",
				Header:     http.Header{"X-Request-Id": {"req-1"}, "Content-Type": {"application/json"}},
				Err:        errors.New("bad key"),
			},
			want: []string{
				"Error calling OpenAI API (transcription):",
				"  Status: 401\n",
				`  Data: {"error":{"message":"bad key"}}` + "\n",
				"  Headers:\n    Content-Type: application/json\n    X-Request-Id: req-1\n",
			},
		},
		{
			name: "status without body",
			err: &apiclient.CallError{
				Op:         "chat completion",
				Kind:       apiclient.KindStatus,
				StatusCode: http.StatusBadGateway,
				Err:        errors.New("error, status code: 502"),
			},
			want: []string{"  Data: error, status code: 502\n"},
		},
		{
			name: "no response",
			err:  &apiclient.CallError{Op: "transcription", Kind: apiclient.KindNoResponse, Err: errors.New("i/o timeout")},
			want: []string{"  No response received: i/o timeout\n"},
		},
		{
			name: "request not sent",
			err:  &apiclient.CallError{Op: "transcription", Kind: apiclient.KindRequest, Err: errors.New("opening audio file")},
			want: []string{"  Error message: opening audio file\n"},
		},
		{
			name: "write error",
			err:  &output.WriteError{Path: "/tmp/meeting.txt", Err: errors.New("permission denied")},
			want: []string{"Error writing /tmp/meeting.txt:\n", "  permission denied\n"},
		},
		{
			name: "plain error",
			err:  errors.New("something else"),
			want: []string{"Error: something else\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			report(&buf, tt.err)
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
