package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sparkpost/client-go/internal/apierrors"
)

// Constant header names. Values for these always come from the client.
const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderUserAgent     = "User-Agent"

	contentTypeJSON = "application/json"
)

// RequestValues describes one logical request. It is built once and never
// modified; every attempt constructs a fresh *http.Request from it.
type RequestValues struct {
	// ID correlates log lines for all attempts of the request.
	ID     string
	Method string
	URL    string
	Header map[string]string
	Body   []byte
}

// DecodedBody returns the JSON body decoded into a map, or nil when the
// request has no body.
func (v *RequestValues) DecodedBody() (map[string]any, error) {
	if len(v.Body) == 0 {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal(v.Body, &m); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	return m, nil
}

// BuildValues turns a method, path, payload and custom headers into request
// values. For GET the payload becomes the query string and there is no body;
// for every other method the payload is the JSON body.
func (c *Client) BuildValues(method, path string, payload map[string]any, headers map[string]string) (*RequestValues, error) {
	method = strings.ToUpper(strings.TrimSpace(method))

	var params map[string]any
	var body []byte
	if method == http.MethodGet {
		params = payload
	} else if len(payload) > 0 {
		var err error
		if body, err = EncodeBody(payload); err != nil {
			return nil, err
		}
	}

	return &RequestValues{
		ID:     uuid.NewString(),
		Method: method,
		URL:    c.URL(path, params),
		Header: c.Headers(headers),
		Body:   body,
	}, nil
}

// URL builds {protocol}://{host}[:{port}]/api/{version}/{path}[?{query}].
// The port is omitted when zero and the query when empty.
func (c *Client) URL(path string, params map[string]any) string {
	var b strings.Builder
	b.WriteString(c.cfg.Protocol)
	b.WriteString("://")
	b.WriteString(c.cfg.Host)
	if c.cfg.Port != 0 {
		b.WriteString(":")
		b.WriteString(strconv.Itoa(c.cfg.Port))
	}
	b.WriteString("/api/")
	b.WriteString(c.cfg.Version)
	b.WriteString("/")
	b.WriteString(path)
	if q := Query(params); q != "" {
		b.WriteString("?")
		b.WriteString(q)
	}
	return b.String()
}

// Query renders params as key=value pairs joined with "&", keys sorted.
// List values are joined with ","; nothing is escaped, matching what the API
// accepts for comma-separated filters.
func Query(params map[string]any) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+queryValue(params[k]))
	}
	return strings.Join(pairs, "&")
}

func queryValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = queryValue(p)
		}
		return strings.Join(parts, ",")
	case bool:
		// Match the wire form of a form-encoded boolean.
		if t {
			return "1"
		}
		return ""
	}
	return fmt.Sprint(v)
}

// Headers merges custom headers with the constant ones, which always win.
func (c *Client) Headers(custom map[string]string) map[string]string {
	h := make(map[string]string, len(custom)+3)
	for k, v := range custom {
		switch http.CanonicalHeaderKey(k) {
		case HeaderAuthorization, HeaderContentType, HeaderUserAgent:
			continue
		}
		h[k] = v
	}
	h[HeaderAuthorization] = c.cfg.APIKey
	h[HeaderContentType] = contentTypeJSON
	h[HeaderUserAgent] = c.cfg.UserAgent
	return h
}

// NewRequest builds an *http.Request from v. A body is attached only when v
// has one.
func (c *Client) NewRequest(ctx context.Context, v *RequestValues) (*http.Request, error) {
	var body io.Reader
	if len(v.Body) > 0 {
		body = bytes.NewReader(v.Body)
	}

	req, err := http.NewRequestWithContext(ctx, v.Method, v.URL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, val := range v.Header {
		req.Header.Set(k, val)
	}
	return req, nil
}

// EncodeBody serializes payload as JSON. Strings must be valid UTF-8; the
// encoder would otherwise silently replace the bad bytes.
func EncodeBody(payload map[string]any) ([]byte, error) {
	if err := checkUTF8(payload); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, &apierrors.EncodingError{Err: err}
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// maxWalkDepth bounds the UTF-8 walk on cyclic values; the encoder
// reports the cycle itself.
const maxWalkDepth = 1000

func checkUTF8(v any) error {
	return walkUTF8(reflect.ValueOf(v), 0)
}

func walkUTF8(v reflect.Value, depth int) error {
	if !v.IsValid() || depth > maxWalkDepth {
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		if !utf8.ValidString(v.String()) {
			return &apierrors.EncodingError{Message: "malformed UTF-8 characters, possibly incorrectly encoded"}
		}
	case reflect.Pointer, reflect.Interface:
		if !v.IsNil() {
			return walkUTF8(v.Elem(), depth+1)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			if err := walkUTF8(iter.Key(), depth+1); err != nil {
				return err
			}
			if err := walkUTF8(iter.Value(), depth+1); err != nil {
				return err
			}
		}
	case reflect.Slice, reflect.Array:
		// []byte is sent base64 encoded.
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		for i := range v.Len() {
			if err := walkUTF8(v.Index(i), depth+1); err != nil {
				return err
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			if err := walkUTF8(v.Field(i), depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}
