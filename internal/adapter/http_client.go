// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/utils"
)

// Header names set on outbound requests.
const (
	HeaderContentHash = "X-Content-Hash"
)

type httpEnrollmentAdapter struct {
	client    *utils.HTTPClient
	baseURL   atomic.Pointer[string]
	requestID *utils.UUIDGenerator
	reqLogger RequestLogger
	logger    *logger.Logger
}

// NewHTTPEnrollmentAdapter creates an [EnrollmentAdapter] that starts out
// pointing at defaultBaseURL.
//
// The resty client is built once and kept for the lifetime of the adapter;
// RequestTimeout and DefaultHeaders from adapterCfg apply to every request.
// reqLogger may be nil, in which case requests are not logged. The HMAC
// hasher pool used for document signatures is keyed with appCfg.HashKey.
//
// Returns [ErrInvalidBaseURL] when defaultBaseURL cannot be normalized.
func NewHTTPEnrollmentAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, defaultBaseURL string, reqLogger RequestLogger, log *logger.Logger) (EnrollmentAdapter, error) {
	base, err := NormalizeBaseURL(defaultBaseURL)
	if err != nil {
		return nil, err
	}
	if reqLogger == nil {
		reqLogger = NopRequestLogger{}
	}

	utils.InitHasherPool(appCfg.HashKey)

	client := utils.NewHTTPClient()
	client.SetHeaders(adapterCfg.DefaultHeaders)
	if adapterCfg.RequestTimeout > 0 {
		client.SetTimeout(adapterCfg.RequestTimeout)
	}

	a := &httpEnrollmentAdapter{
		client:    client,
		requestID: utils.NewUUIDGenerator(),
		reqLogger: reqLogger,
		logger:    log.Component("enrollment-adapter"),
	}
	a.baseURL.Store(&base)

	client.OnBeforeRequest(a.beforeRequest)
	client.OnAfterResponse(a.afterResponse)
	client.OnError(a.onError)

	return a, nil
}

func (a *httpEnrollmentAdapter) SetBaseURL(raw string) error {
	base, err := NormalizeBaseURL(raw)
	if err != nil {
		a.logger.Warn().Err(err).Str("url", raw).Msg("base url rejected")
		return err
	}

	prev := a.baseURL.Swap(&base)
	if *prev != base {
		a.logger.Info().Str("from", *prev).Str("to", base).Msg("base url changed")
	}
	return nil
}

func (a *httpEnrollmentAdapter) EffectiveBaseURL() string {
	return *a.baseURL.Load()
}

// endpoint joins path onto the current base URL. The base is read once, so
// the returned URL is fixed for the request it is used for.
func (a *httpEnrollmentAdapter) endpoint(path string) string {
	return a.EffectiveBaseURL() + path
}

func (a *httpEnrollmentAdapter) beforeRequest(_ *resty.Client, r *resty.Request) error {
	id := r.Header.Get(utils.RequestIDHeader)
	if id == "" {
		id = a.requestID.Generate()
		r.SetHeader(utils.RequestIDHeader, id)
	}

	payload := r.Body
	if payload == nil && len(r.FormData) > 0 {
		payload = r.FormData
	}
	a.reqLogger.LogRequest(r.Method, r.URL, id, payload)
	return nil
}

func (a *httpEnrollmentAdapter) afterResponse(_ *resty.Client, resp *resty.Response) error {
	r := resp.Request
	a.reqLogger.LogResponse(r.Method, r.URL, r.Header.Get(utils.RequestIDHeader), resp.StatusCode(), resp.Body(), resp.Time())
	return nil
}

func (a *httpEnrollmentAdapter) onError(r *resty.Request, err error) {
	a.reqLogger.LogFailure(r.Method, r.URL, r.Header.Get(utils.RequestIDHeader), err)
}

// NormalizeBaseURL validates raw and returns it in canonical form.
//
// Surrounding whitespace and trailing slashes are removed, and http:// is
// assumed when no scheme is given. The result must have an http or https
// scheme and a host; otherwise an error wrapping [ErrInvalidBaseURL] is
// returned.
func NormalizeBaseURL(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidBaseURL)
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidBaseURL, raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q: unsupported scheme %q", ErrInvalidBaseURL, raw, u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q: missing host", ErrInvalidBaseURL, raw)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return "", fmt.Errorf("%w: %q: query or fragment not allowed", ErrInvalidBaseURL, raw)
	}

	return strings.TrimRight(s, "/"), nil
}
