package logger

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

var log *zap.Logger = zap.NewNop()

func NewZapLog(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}

	zapcfg := zap.NewProductionConfig()
	zapcfg.Level = lvl

	zl, err := zapcfg.Build()
	if err != nil {
		return nil, err
	}

	log = zl
	return zl, nil
}

// Log returns the process-wide logger. Before NewZapLog runs it is a no-op,
// which keeps the pure packages usable from tests without setup.
func Log() *zap.Logger {
	return log
}

func RequestLogMdlw(next http.Handler, zaplog *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Websocket upgrades need the raw ResponseWriter (Hijacker).
		if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
			next.ServeHTTP(w, r)
			return
		}

		wl := newResponseWriterLogger(w)

		handlerStart := time.Now()
		next.ServeHTTP(wl, r)
		handlerDuration := time.Since(handlerStart)

		zaplog.Info("HTTP request",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.String("code", strconv.Itoa(wl.statusCode)),
			zap.String("length", strconv.Itoa(wl.length)),
			zap.String("duration", handlerDuration.String()),
		)
	})
}

type responseWriterLogger struct {
	http.ResponseWriter
	statusCode int
	length     int
}

func newResponseWriterLogger(w http.ResponseWriter) *responseWriterLogger {
	return &responseWriterLogger{w, http.StatusOK, 0}
}

func (wl *responseWriterLogger) WriteHeader(code int) {
	wl.statusCode = code
	wl.ResponseWriter.WriteHeader(code)
}

func (wl *responseWriterLogger) Write(b []byte) (n int, err error) {
	n, err = wl.ResponseWriter.Write(b)
	wl.length += n
	return
}
