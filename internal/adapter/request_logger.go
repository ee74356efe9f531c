package adapter

import (
	"time"

	"github.com/mantrasuyog/EnrollmentSystem-sub001/internal/logger"
)

// maxLoggedPayload caps how many bytes of a response body are logged.
const maxLoggedPayload = 2048

type zerologRequestLogger struct {
	logger *logger.Logger
}

// NewRequestLogger returns a [RequestLogger] that writes one debug entry per
// request and per response to log.
func NewRequestLogger(log *logger.Logger) RequestLogger {
	return &zerologRequestLogger{logger: log.Component("http")}
}

func (l *zerologRequestLogger) LogRequest(method, url, requestID string, payload any) {
	l.logger.Debug().
		Str("method", method).
		Str("url", url).
		Str("request_id", requestID).
		Interface("payload", payload).
		Msg("request")
}

func (l *zerologRequestLogger) LogResponse(method, url, requestID string, status int, payload []byte, elapsed time.Duration) {
	if len(payload) > maxLoggedPayload {
		payload = payload[:maxLoggedPayload]
	}
	l.logger.Debug().
		Str("method", method).
		Str("url", url).
		Str("request_id", requestID).
		Int("status", status).
		Bytes("payload", payload).
		Dur("elapsed", elapsed).
		Msg("response")
}

func (l *zerologRequestLogger) LogFailure(method, url, requestID string, err error) {
	l.logger.Warn().
		Err(err).
		Str("method", method).
		Str("url", url).
		Str("request_id", requestID).
		Msg("request failed")
}

// NopRequestLogger discards everything.
type NopRequestLogger struct{}

func (NopRequestLogger) LogRequest(string, string, string, any)                         {}
func (NopRequestLogger) LogResponse(string, string, string, int, []byte, time.Duration) {}
func (NopRequestLogger) LogFailure(string, string, string, error)                       {}
