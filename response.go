package sparkpost

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sparkpost/client-go/internal/api"
)

// RequestValues is the immutable description of a request: method, URL,
// headers and JSON body. Every attempt is built from the same values.
type RequestValues = api.RequestValues

// Response is a completed API call. The body is read eagerly and the
// connection released.
type Response struct {
	StatusCode int
	Header     http.Header

	body    []byte
	decoded map[string]any
	request *RequestValues
}

func newResponse(resp *http.Response, req *RequestValues) (*Response, error) {
	var body []byte
	if resp.Body != nil {
		defer resp.Body.Close()

		var err error
		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}
	}

	r := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		body:       body,
		request:    req,
	}
	// Non-JSON bodies are kept raw; BodyDecoded returns nil for them.
	_ = json.Unmarshal(body, &r.decoded)
	return r, nil
}

// Body returns the raw response body.
func (r *Response) Body() []byte {
	return r.body
}

// BodyDecoded returns the body decoded as a JSON object, or nil when the
// body is empty or not an object.
func (r *Response) BodyDecoded() map[string]any {
	return r.decoded
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Request returns the values the response was produced from. It is nil
// unless the client runs with Debug enabled.
func (r *Response) Request() *RequestValues {
	return r.request
}
