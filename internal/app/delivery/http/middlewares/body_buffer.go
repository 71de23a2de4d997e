package middlewares

import (
	"bytes"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
)

// BodyLimit reads at most limit bytes of the request body and replaces the
// body with an in-memory reader, so handlers never see a partial payload.
func (m *Middlewares) BodyLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
			if err != nil {
				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err, limit))
					return
				}
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			r.ContentLength = int64(len(bodyBytes))
			next.ServeHTTP(w, r)
		})
	}
}
