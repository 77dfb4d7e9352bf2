package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/amusetravel-BackEnd/amuseAdmin/pkg/errs"
)

// Response is the raw answer of a create call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Payload returns the body as JSON when it is JSON and as text otherwise.
func (r *Response) Payload() interface{} {
	if len(r.Body) == 0 {
		return nil
	}
	if json.Valid(r.Body) {
		return json.RawMessage(r.Body)
	}
	return string(r.Body)
}

// RemoteError is a response outside the 2xx range.
type RemoteError struct {
	StatusCode int
	Body       []byte
}

func (e *RemoteError) Error() string {
	if len(e.Body) == 0 {
		return fmt.Sprintf("remote API responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("remote API responded with status %d: %s", e.StatusCode, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return errs.ErrRemoteRequest
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrapData extracts the "data" member the backend wraps its payloads in.
func unwrapData(body []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed response body: %v", errs.ErrRemoteRequest, err)
	}

	if env.Data == nil {
		return json.RawMessage("null"), nil
	}

	return env.Data, nil
}
