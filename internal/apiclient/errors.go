package apiclient

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// Kind says how far a failed call got.
type Kind int

const (
	// KindStatus: a response arrived with a non-success status.
	KindStatus Kind = iota + 1
	// KindNoResponse: the request was sent but nothing came back (network error, timeout).
	KindNoResponse
	// KindRequest: the request could not be built or was never sent.
	KindRequest
	// KindMalformed: a success response arrived but could not be decoded.
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "error status"
	case KindNoResponse:
		return "no response"
	case KindRequest:
		return "request failed"
	case KindMalformed:
		return "malformed response"
	default:
		return "unknown"
	}
}

type CallError struct {
	Op         string
	Kind       Kind
	StatusCode int
	Body       string
	Header     http.Header
	Err        error
}

func (e *CallError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("%s: API returned status %d: %v", e.Op, e.StatusCode, e.Err)
	case KindNoResponse:
		return fmt.Sprintf("%s: no response received: %v", e.Op, e.Err)
	case KindMalformed:
		return fmt.Sprintf("%s: decoding response: %v", e.Op, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

func (e *CallError) Unwrap() error {
	return e.Err
}

func (c *Client) classify(op string, err error) *CallError {
	callErr := &CallError{Op: op, Err: err}

	failed := c.recorder.failed
	status := statusCode(err)
	if status == 0 && failed != nil {
		status = failed.statusCode
	}
	if status != 0 {
		callErr.Kind = KindStatus
		callErr.StatusCode = status
		if failed != nil {
			callErr.Body = string(failed.body)
			callErr.Header = failed.header
		}
		return callErr
	}

	switch {
	case c.recorder.received:
		callErr.Kind = KindMalformed
	case c.recorder.sent:
		callErr.Kind = KindNoResponse
	default:
		callErr.Kind = KindRequest
	}
	return callErr
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}

	return 0
}
