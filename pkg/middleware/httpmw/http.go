// Package httpmw provides a net/http middleware that records one log line
// per request through a linelog Logger.
package httpmw

import (
	"net/http"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/linelog"
)

// Option configures the behaviour of the logging middleware.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock overrides the time source used to measure request duration.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// statusRecorder captures the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// NewLogging returns a middleware that logs the method, path, status code,
// and duration of every request at info level.
func NewLogging(logger *linelog.Logger, opts ...Option) (func(http.Handler) http.Handler, error) {
	if logger == nil {
		return nil, ewrap.New("logger is required")
	}

	cfg := options{
		clock: time.Now,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := cfg.clock()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			logger.Info(r.Method, r.URL.Path, recorder.status, cfg.clock().Sub(start))
		})
	}, nil
}
