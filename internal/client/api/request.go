package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one call through the pipeline. The zero value of every
// flag is the common case: attach the token if one is held, do not require
// one, and read the response body.
type Request struct {
	Method string
	Path   string
	Body   any
	// Query values that are nil, nil pointers or empty strings are dropped;
	// everything else is stringified.
	Query  map[string]any
	Header http.Header

	// SkipAuth suppresses the Authorization header.
	SkipAuth bool
	// RequireAuth fails locally with 401 when no token is held, and clears
	// the token when the server answers 401.
	RequireAuth bool
	// DiscardBody skips reading the body of a successful response.
	DiscardBody bool
}

// Response is a successful (2xx) response. Body is nil when the body was
// discarded or the status was 204.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// IsJSON reports whether the response declares a JSON content type.
func (r *Response) IsJSON() bool {
	return isJSONContentType(r.Header.Get("Content-Type"))
}

// Text returns the raw body.
func (r *Response) Text() string {
	return string(r.Body)
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

var allowedMethods = map[string]bool{
	http.MethodGet:    true,
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
	http.MethodHead:   true,
}

// Do sends req and returns the successful response or an *Error.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	method := strings.ToUpper(req.Method)
	if method == "" {
		method = http.MethodGet
	}
	if !allowedMethods[method] {
		return nil, validationError("", fmt.Sprintf("Unsupported HTTP method %q", req.Method))
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	for k, vs := range req.Header {
		header.Del(k)
		for _, v := range vs {
			header.Add(k, v)
		}
	}

	token, hasToken := c.Token(ctx)
	if !req.SkipAuth && hasToken {
		header.Set("Authorization", "Bearer "+token)
	}

	if req.RequireAuth && !hasToken {
		return nil, unauthenticatedError()
	}

	target := c.buildURL(req.Path, req.Query)

	var body io.Reader
	if req.Body != nil && method != http.MethodGet && method != http.MethodHead {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return nil, &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, transportError(method, req.Path, err)
	}
	httpReq.Header = header

	res, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug(ctx, "api request failed", "method", method, "path", req.Path, "error", err)
		return nil, transportError(method, req.Path, err)
	}
	defer res.Body.Close()

	c.logger.Debug(ctx, "api request", "method", method, "path", req.Path, "status", res.StatusCode)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		if res.StatusCode == http.StatusUnauthorized && req.RequireAuth {
			c.SetToken(context.WithoutCancel(ctx), "")
		}
		return nil, responseError(res)
	}

	out := &Response{StatusCode: res.StatusCode, Header: res.Header}
	if req.DiscardBody || res.StatusCode == http.StatusNoContent {
		return out, nil
	}

	out.Body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, transportError(method, req.Path, err)
	}
	return out, nil
}

func (c *Client) buildURL(path string, query map[string]any) string {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")

	values := url.Values{}
	for k, raw := range query {
		if v, ok := queryValue(raw); ok {
			values.Set(k, v)
		}
	}

	if len(values) == 0 {
		return target
	}
	return target + "?" + values.Encode()
}

func queryValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, x != ""
	case *string:
		if x == nil || *x == "" {
			return "", false
		}
		return *x, true
	case *int:
		if x == nil {
			return "", false
		}
		return fmt.Sprint(*x), true
	case *bool:
		if x == nil {
			return "", false
		}
		return fmt.Sprint(*x), true
	default:
		return fmt.Sprint(x), true
	}
}

// responseError turns a non-2xx response into an *Error. Failures reading or
// parsing the body only degrade the message.
func responseError(res *http.Response) *Error {
	e := &Error{Status: res.StatusCode}

	raw, _ := io.ReadAll(res.Body)

	var text string
	if len(raw) > 0 {
		if isJSONContentType(res.Header.Get("Content-Type")) {
			var parsed any
			if err := json.Unmarshal(raw, &parsed); err == nil {
				e.Details = parsed
			}
		} else {
			text = strings.TrimSpace(string(raw))
			if text != "" {
				e.Details = text
			}
		}
	}

	switch {
	case messageFromBody(e.Details) != "":
		e.Message = messageFromBody(e.Details)
	case text != "":
		e.Message = text
	default:
		e.Message = fmt.Sprintf("Request failed with status %d", res.StatusCode)
	}
	return e
}

func messageFromBody(body any) string {
	m, ok := body.(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := m["message"].(string); ok && s != "" {
		return s
	}
	if s, ok := m["error"].(string); ok && s != "" {
		return s
	}
	return ""
}

func isJSONContentType(ct string) bool {
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.Contains(strings.ToLower(ct), "application/json")
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// decodeJSON decodes a successful body for a typed operation. A body that is
// absent, not declared JSON or not decodable is a malformed response.
func decodeJSON[T any](res *Response) (T, error) {
	var out T
	if len(res.Body) == 0 {
		return out, malformedResponseError("Empty response body", nil)
	}
	if !res.IsJSON() {
		return out, malformedResponseError(fmt.Sprintf("Unexpected response content type %q", res.Header.Get("Content-Type")), nil)
	}
	if err := res.Decode(&out); err != nil {
		return out, malformedResponseError("Malformed response body", err)
	}
	return out, nil
}
