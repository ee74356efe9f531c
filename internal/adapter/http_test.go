// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/config"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/utils"
	"github.com/mantrasuyog/EnrollmentSystem-sub001/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, baseURL string, opts ...func(*config.ClientAdapter)) *httpEnrollmentAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{RequestTimeout: 5 * time.Second}
	for _, opt := range opts {
		opt(&adapterCfg)
	}

	a, err := NewHTTPEnrollmentAdapter(adapterCfg, config.ClientApp{HashKey: testHashKey}, baseURL, nil, logger.Nop())
	require.NoError(t, err)
	return a.(*httpEnrollmentAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── base URL ─────────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "already canonical", raw: "https://api.example.com/v1", want: "https://api.example.com/v1"},
		{name: "trailing slashes", raw: "https://api.example.com/v1//", want: "https://api.example.com/v1"},
		{name: "whitespace", raw: "  http://10.0.0.5:8080 ", want: "http://10.0.0.5:8080"},
		{name: "missing scheme", raw: "api.example.com/v1", want: "http://api.example.com/v1"},
		{name: "empty", raw: "", wantErr: true},
		{name: "blank", raw: "   ", wantErr: true},
		{name: "unsupported scheme", raw: "ftp://api.example.com", wantErr: true},
		{name: "no host", raw: "http:///v1", wantErr: true},
		{name: "query", raw: "https://api.example.com/v1?x=1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidBaseURL)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPEnrollmentAdapter_InvalidDefault(t *testing.T) {
	_, err := NewHTTPEnrollmentAdapter(config.ClientAdapter{}, config.ClientApp{}, "", nil, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestSetBaseURL(t *testing.T) {
	a := newTestAdapter(t, "http://default.local/api/")
	assert.Equal(t, "http://default.local/api", a.EffectiveBaseURL())

	require.NoError(t, a.SetBaseURL("https://remote.example.com/api/v2/"))
	assert.Equal(t, "https://remote.example.com/api/v2", a.EffectiveBaseURL())

	err := a.SetBaseURL("")
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
	assert.Equal(t, "https://remote.example.com/api/v2", a.EffectiveBaseURL(), "rejected url must not replace the base")
}

func TestRequestsFollowBaseURL(t *testing.T) {
	var hitsA, hitsB int
	var mu sync.Mutex
	handler := func(hits *int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			*hits++
			mu.Unlock()
			writeJSON(w, http.StatusOK, models.EnrollmentStatus{RegistrationID: "REG-1"})
		}
	}
	srvA := httptest.NewServer(handler(&hitsA))
	defer srvA.Close()
	srvB := httptest.NewServer(handler(&hitsB))
	defer srvB.Close()

	a := newTestAdapter(t, srvA.URL)
	_, err := a.CheckEnrollment(context.Background(), "REG-1")
	require.NoError(t, err)

	require.NoError(t, a.SetBaseURL(srvB.URL))
	_, err = a.CheckEnrollment(context.Background(), "REG-1")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, hitsA)
	assert.Equal(t, 1, hitsB)
}

func TestInFlightRequestKeepsItsBaseURL(t *testing.T) {
	arrived := make(chan struct{})
	release := make(chan struct{})

	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		writeJSON(w, http.StatusOK, models.EnrollmentStatus{RegistrationID: "REG-1", Status: "from-a"})
	}))
	defer srvA.Close()
	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.EnrollmentStatus{RegistrationID: "REG-1", Status: "from-b"})
	}))
	defer srvB.Close()

	a := newTestAdapter(t, srvA.URL)

	type outcome struct {
		status models.EnrollmentStatus
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		st, err := a.CheckEnrollment(context.Background(), "REG-1")
		done <- outcome{st, err}
	}()

	<-arrived
	require.NoError(t, a.SetBaseURL(srvB.URL))
	close(release)

	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, "from-a", got.status.Status)

	next, err := a.CheckEnrollment(context.Background(), "REG-1")
	require.NoError(t, err)
	assert.Equal(t, "from-b", next.Status)
}

func TestSetBaseURL_ConcurrentWithRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.EnrollmentStatus{RegistrationID: "REG-1"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := a.CheckEnrollment(context.Background(), "REG-1")
				assert.NoError(t, err)
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				assert.NoError(t, a.SetBaseURL(srv.URL+"/"))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, srv.URL, a.EffectiveBaseURL())
}

// ── headers and logging ──────────────────────────────────────────────────────

type recordedCall struct {
	kind      string
	method    string
	url       string
	requestID string
	status    int
}

type recordingLogger struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (l *recordingLogger) LogRequest(method, url, requestID string, _ any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, recordedCall{kind: "request", method: method, url: url, requestID: requestID})
}

func (l *recordingLogger) LogResponse(method, url, requestID string, status int, _ []byte, _ time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, recordedCall{kind: "response", method: method, url: url, requestID: requestID, status: status})
}

func (l *recordingLogger) LogFailure(method, url, requestID string, _ error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, recordedCall{kind: "failure", method: method, url: url, requestID: requestID})
}

func TestRequestLoggerAndHeaders(t *testing.T) {
	headers := make(chan http.Header, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers <- r.Header.Clone()
		writeJSON(w, http.StatusOK, models.EnrollmentStatus{RegistrationID: "REG-1"})
	}))
	defer srv.Close()

	rec := &recordingLogger{}
	a, err := NewHTTPEnrollmentAdapter(
		config.ClientAdapter{RequestTimeout: time.Second, DefaultHeaders: map[string]string{"X-Client": "kiosk-7"}},
		config.ClientApp{HashKey: testHashKey},
		srv.URL, rec, logger.Nop(),
	)
	require.NoError(t, err)

	_, err = a.CheckEnrollment(context.Background(), "REG-1")
	require.NoError(t, err)

	got := <-headers
	gotRequestID := got.Get(utils.RequestIDHeader)
	assert.Equal(t, "kiosk-7", got.Get("X-Client"))
	require.NotEmpty(t, gotRequestID)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "request", rec.calls[0].kind)
	assert.Equal(t, http.MethodGet, rec.calls[0].method)
	assert.Equal(t, srv.URL+"/enrollments/REG-1", rec.calls[0].url)
	assert.Equal(t, gotRequestID, rec.calls[0].requestID)
	assert.Equal(t, "response", rec.calls[1].kind)
	assert.Equal(t, http.StatusOK, rec.calls[1].status)
	assert.Equal(t, gotRequestID, rec.calls[1].requestID)
}

func TestRequestLogger_Failure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	rec := &recordingLogger{}
	a, err := NewHTTPEnrollmentAdapter(config.ClientAdapter{RequestTimeout: time.Second}, config.ClientApp{}, url, rec, logger.Nop())
	require.NoError(t, err)

	_, err = a.CheckEnrollment(context.Background(), "REG-1")
	require.Error(t, err)

	require.Len(t, rec.calls, 2)
	assert.Equal(t, "request", rec.calls[0].kind)
	assert.Equal(t, "failure", rec.calls[1].kind)
}

// ── CheckEnrollment ──────────────────────────────────────────────────────────

func newEnrollmentRouter(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/api/v1/enrollments/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch chi.URLParam(r, "id") {
		case "REG-1":
			writeJSON(w, http.StatusOK, models.EnrollmentStatus{
				RegistrationID: "REG-1",
				FullName:       "Jane Roe",
				Status:         "active",
				Modalities:     []models.BiometricModality{models.ModalityFace, models.ModalityIris},
			})
		case "REG-BROKEN":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"registration_id":`))
		case "REG-FAIL":
			http.Error(w, "database down", http.StatusInternalServerError)
		default:
			http.Error(w, "no such enrollment", http.StatusNotFound)
		}
	})
	return r
}

func TestCheckEnrollment_Found(t *testing.T) {
	srv := httptest.NewServer(newEnrollmentRouter(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/v1")
	got, err := a.CheckEnrollment(context.Background(), "REG-1")

	require.NoError(t, err)
	assert.True(t, got.Exists)
	assert.Equal(t, "Jane Roe", got.FullName)
	assert.Equal(t, []models.BiometricModality{models.ModalityFace, models.ModalityIris}, got.Modalities)
}

func TestCheckEnrollment_NotFound(t *testing.T) {
	srv := httptest.NewServer(newEnrollmentRouter(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/v1")
	got, err := a.CheckEnrollment(context.Background(), "REG-404")

	require.NoError(t, err)
	assert.False(t, got.Exists)
	assert.Equal(t, "REG-404", got.RegistrationID)
}

func TestCheckEnrollment_ServerError(t *testing.T) {
	srv := httptest.NewServer(newEnrollmentRouter(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/v1")
	_, err := a.CheckEnrollment(context.Background(), "REG-FAIL")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerStatus)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.NotErrorIs(t, err, ErrClientStatus)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.StatusCode)
	assert.Equal(t, "database down", reqErr.Body)
}

func TestCheckEnrollment_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(newEnrollmentRouter(t))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL+"/api/v1")
	_, err := a.CheckEnrollment(context.Background(), "REG-BROKEN")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestCheckEnrollment_EscapesRegistrationID(t *testing.T) {
	paths := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.EscapedPath()
		http.NotFound(w, r)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CheckEnrollment(context.Background(), "REG/7")

	require.NoError(t, err)
	assert.Equal(t, "/enrollments/REG%2F7", <-paths)
}

func TestCheckEnrollment_EmptyID(t *testing.T) {
	a := newTestAdapter(t, "http://unused.local")
	_, err := a.CheckEnrollment(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrEmptyRegistrationID)
}

func TestCheckEnrollment_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.CheckEnrollment(context.Background(), "REG-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnreachable)
	assert.NotErrorIs(t, err, ErrTimeout)
}

func TestCheckEnrollment_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, srv.URL, func(c *config.ClientAdapter) { c.RequestTimeout = 50 * time.Millisecond })
	_, err := a.CheckEnrollment(context.Background(), "REG-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
}

// ── Enroll ───────────────────────────────────────────────────────────────────

func TestEnroll_Success(t *testing.T) {
	req := models.EnrollmentRequest{
		RegistrationID: "REG-1",
		FullName:       "Jane Roe",
		Samples:        []models.BiometricSample{{Modality: models.ModalityFingerprint, Data: "AAEC"}},
	}

	r := chi.NewRouter()
	r.Post("/enrollments", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got models.EnrollmentRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&got)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, req, got)
		writeJSON(w, http.StatusCreated, models.EnrollmentResult{EnrollmentID: "ENR-9", RegistrationID: got.RegistrationID, Status: "pending"})
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Enroll(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ENR-9", got.EnrollmentID)
	assert.Equal(t, "pending", got.Status)
}

func TestEnroll_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("already enrolled"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Enroll(context.Background(), models.EnrollmentRequest{RegistrationID: "REG-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClientStatus)
	assert.ErrorIs(t, err, ErrConflict)
	assert.NotErrorIs(t, err, ErrServerStatus)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("service-secret"))
	require.NoError(t, err)
	return token
}

func TestVerify_MatchWithToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.MapClaims{"sub": "REG-1", "exp": exp.Unix()})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/verifications", r.URL.Path)
		writeJSON(w, http.StatusOK, models.VerificationResult{Matched: true, Score: 0.97, Token: token})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Verify(context.Background(), models.VerificationRequest{
		RegistrationID: "REG-1",
		Sample:         models.BiometricSample{Modality: models.ModalityFace, Data: "AAEC"},
	})

	require.NoError(t, err)
	assert.True(t, got.Matched)
	assert.InDelta(t, 0.97, got.Score, 1e-9)
	assert.Equal(t, "REG-1", got.Subject)
	assert.True(t, exp.Equal(got.ExpiresAt))
}

func TestVerify_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.VerificationResult{Matched: false, Score: 0.12})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Verify(context.Background(), models.VerificationRequest{RegistrationID: "REG-1"})

	require.NoError(t, err)
	assert.False(t, got.Matched)
	assert.Empty(t, got.Subject)
}

func TestVerify_MalformedToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, models.VerificationResult{Matched: true, Token: "not-a-jwt"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Verify(context.Background(), models.VerificationRequest{RegistrationID: "REG-1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedResponse)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusOK, reqErr.StatusCode)
}

// ── UploadDocument ───────────────────────────────────────────────────────────

func TestUploadDocument_Success(t *testing.T) {
	content := []byte("%PDF-1.7 scanned passport")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/documents", r.URL.Path)
		assert.Equal(t, utils.HashString(string(content), testHashKey), r.Header.Get(HeaderContentHash))

		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.Equal(t, "REG-1", r.FormValue("registration_id"))
		assert.Equal(t, "passport", r.FormValue("document_type"))

		f, hdr, err := r.FormFile("file")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		body, _ := io.ReadAll(f)
		assert.Equal(t, content, body)
		assert.Equal(t, "passport.pdf", hdr.Filename)

		writeJSON(w, http.StatusCreated, models.DocumentReceipt{DocumentID: "DOC-1", RegistrationID: "REG-1", Size: int64(len(body))})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.UploadDocument(context.Background(), models.DocumentUpload{
		RegistrationID: "REG-1",
		DocumentType:   "passport",
		FileName:       "passport.pdf",
		ContentType:    "application/pdf",
		Content:        content,
	})

	require.NoError(t, err)
	assert.Equal(t, "DOC-1", got.DocumentID)
	assert.Equal(t, int64(len(content)), got.Size)
}

func TestUploadDocument_Validation(t *testing.T) {
	a := newTestAdapter(t, "http://unused.local")

	_, err := a.UploadDocument(context.Background(), models.DocumentUpload{Content: []byte("x")})
	assert.ErrorIs(t, err, ErrEmptyRegistrationID)

	_, err = a.UploadDocument(context.Background(), models.DocumentUpload{RegistrationID: "REG-1"})
	assert.ErrorIs(t, err, ErrEmptyDocumentContent)
}

func TestUploadDocument_TooLarge(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too large", http.StatusRequestEntityTooLarge)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.UploadDocument(context.Background(), models.DocumentUpload{RegistrationID: "REG-1", Content: []byte("x")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClientStatus)
}
