package middlewares

import (
	"clinic-portal-service/internal/pkg/constvars"
	"clinic-portal-service/internal/pkg/exceptions"
	"clinic-portal-service/internal/pkg/utils"
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var errClientBlocked = errors.New("client temporarily blocked")

// RateLimiter throttles per client IP and blocks a client for blockTime
// once it runs out of tokens.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	log       *zap.Logger
	now       func() time.Time
}

func NewRateLimiter(requests int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		log:       logger,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip := clientIP(req)

		r.mu.Lock()

		if blockedUntil, found := r.blocked[ip]; found {
			if r.now().Before(blockedUntil) {
				r.mu.Unlock()
				r.reject(w, req, ip, blockedUntil)
				return
			}

			delete(r.blocked, ip)
			delete(r.limiters, ip)
		}

		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(max(r.requests, 1))), r.requests)
			r.limiters[ip] = limiter
		}

		r.mu.Unlock()

		if !limiter.AllowN(r.now(), 1) {
			r.mu.Lock()
			blockedUntil := r.now().Add(r.blockTime)
			r.blocked[ip] = blockedUntil
			r.mu.Unlock()

			r.reject(w, req, ip, blockedUntil)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) reject(w http.ResponseWriter, req *http.Request, ip string, blockedUntil time.Time) {
	r.log.Warn("RateLimiter.Limit client blocked",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(req.Context())),
		zap.String(constvars.LoggingRemoteAddrKey, ip),
		zap.Time("blocked_until", blockedUntil),
	)
	retryAfter := int(math.Ceil(blockedUntil.Sub(r.now()).Seconds()))
	w.Header().Set(constvars.HeaderRetryAfter, strconv.Itoa(max(retryAfter, 1)))
	utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(errClientBlocked))
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}
