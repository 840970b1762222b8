// Package api talks to the remote todo collection service.
//
// The service is a plain HTTP JSON CRUD endpoint. Any status >= 400 is a
// failure whose response body (if any) is the human-readable detail.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// RequestError is returned for network failures and for responses with status >= 400.
// Status is 0 when no response was received.
type RequestError struct {
	Method string
	URL    string
	Status int
	Detail string
	Err    error
}

func (e *RequestError) Error() string {
	var b strings.Builder
	b.WriteString(e.Method)
	b.WriteString(" ")
	b.WriteString(e.URL)
	if e.Status > 0 {
		fmt.Fprintf(&b, ": %d", e.Status)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	} else if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *RequestError) Unwrap() error { return e.Err }

// Options describes a single call. The zero value is a GET with no body.
type Options struct {
	Method string
	Header http.Header
	Body   []byte
}

// JSONBody marshals v and returns Options for method with a JSON content type.
func JSONBody(method string, v any) (Options, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Options{}, err
	}
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	return Options{Method: method, Header: h, Body: b}, nil
}

type Client struct {
	BaseURL string
	// HTTP defaults to http.DefaultClient. No timeout is applied beyond what it carries.
	HTTP *http.Client
	Log  *slog.Logger
}

func New(baseURL string, log *slog.Logger) *Client {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    http.DefaultClient,
		Log:     log,
	}
}

// Do issues a request to BaseURL+path and returns the raw JSON body.
// A 204 response yields a nil body and no error.
func (c *Client) Do(ctx context.Context, path string, opts Options) (json.RawMessage, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	url := c.BaseURL + path

	body, err := c.do(ctx, method, url, opts)
	if err != nil {
		c.Log.Error("api error", "method", method, "url", url, "err", err)
		return nil, err
	}
	return body, nil
}

func (c *Client) do(ctx context.Context, method, url string, opts Options) (json.RawMessage, error) {
	var rdr io.Reader
	if opts.Body != nil {
		rdr = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return nil, &RequestError{Method: method, URL: url, Err: err}
	}
	for k, vs := range opts.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	c.Log.Debug("api request", "method", method, "url", url)
	res, err := hc.Do(req)
	if err != nil {
		return nil, &RequestError{Method: method, URL: url, Err: err}
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &RequestError{Method: method, URL: url, Status: res.StatusCode, Err: err}
	}

	if res.StatusCode >= 400 {
		detail := strings.TrimSpace(string(b))
		if detail == "" {
			detail = http.StatusText(res.StatusCode)
		}
		return nil, &RequestError{Method: method, URL: url, Status: res.StatusCode, Detail: detail}
	}
	if res.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if !json.Valid(b) {
		return nil, &RequestError{
			Method: method,
			URL:    url,
			Status: res.StatusCode,
			Err:    fmt.Errorf("invalid JSON response (%d bytes)", len(b)),
		}
	}
	return json.RawMessage(b), nil
}
