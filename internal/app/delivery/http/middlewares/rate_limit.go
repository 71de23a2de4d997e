package middlewares

import (
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

var errGlobalRateLimit = errors.New("global rate limit reached")

// GlobalRateLimit caps every client IP at App.MaxRequests per
// App.MaxTimeRequestsPerSeconds window.
func (m *Middlewares) GlobalRateLimit() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTooManyRequests(errGlobalRateLimit))
		}),
	)
}
