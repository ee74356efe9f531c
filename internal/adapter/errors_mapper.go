package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

// mapHTTPError returns nil for 2xx responses and a *RequestError of class
// ErrClientStatus or ErrServerStatus otherwise.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(code)
	}

	kind := ErrServerStatus
	if code >= http.StatusBadRequest && code < http.StatusInternalServerError {
		kind = ErrClientStatus
	}

	return &RequestError{
		Kind:       kind,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: code,
		Body:       body,
	}
}

// mapTransportError classifies an error returned by resty before any
// response was received.
func mapTransportError(method, url string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	kind := ErrServiceUnreachable
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		kind = ErrTimeout
	}

	return &RequestError{Kind: kind, Method: method, URL: url, Err: err}
}

// decodeBody unmarshals a successful response into v.
func decodeBody(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return malformed(resp, err)
	}
	return nil
}

func malformed(resp *resty.Response, err error) error {
	return &RequestError{
		Kind:       ErrMalformedResponse,
		Method:     resp.Request.Method,
		URL:        resp.Request.URL,
		StatusCode: resp.StatusCode(),
		Body:       strings.TrimSpace(string(resp.Body())),
		Err:        err,
	}
}
