package server

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/smartlocker/internal/repository"
)

// auditLogMiddleware records every admin request into the outbox, from
// where the publisher ships it to the audit topic. The write happens after
// the response, so a slow outbox never delays the caller's handler.
func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := repository.AuditLogPayload{
			Timestamp: time.Now().UTC(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}

		if username, _, ok := r.BasicAuth(); ok {
			payload.UserID = username
		}

		skipRequestBody := strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data")
		if !skipRequestBody && r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			payload.Request = string(requestBody)
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		payload.StatusCode = wrw.GetStatusCode()

		if err := s.auditor.EnqueueAudit(r.Context(), payload); err != nil {
			s.logger.Error("failed to enqueue audit entry",
				zap.String("path", payload.Path), zap.Error(err))
		}
	})
}
