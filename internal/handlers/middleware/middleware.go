package middleware

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"golang.org/x/time/rate"
)

// RateLimiterEntry keeps LastUsed as unix nanoseconds so requests can touch it concurrently.
type RateLimiterEntry struct {
	Limiter  *rate.Limiter
	LastUsed atomic.Int64
}
type Middleware struct {
	sessions     SessionAuthorizer
	logproducer  LogProducer
	rateLimiters sync.Map
	limit        rate.Limit
	burst        int
	timeout      time.Duration
	stopclean    chan struct{}
	stoponce     sync.Once
}
type SessionAuthorizer interface {
	Authorize(ctx context.Context, sessionid string) *service.ServiceResponse
}
type LogProducer interface {
	NewAdsLog(level, place, traceid, msg string)
}

const (
	Logging       = "Middleware-Logging"
	RateLimiter   = "Middleware-RateLimiter"
	Not_Authority = "Middleware-Not-Authority"
	Authority     = "Middleware-Authority"
)
const idleLimiterTTL = 5 * time.Minute

func NewMiddleware(sessions SessionAuthorizer, logproducer LogProducer, config configs.RateLimitConfig, timeout time.Duration) *Middleware {
	m := &Middleware{
		sessions:    sessions,
		logproducer: logproducer,
		limit:       rate.Limit(config.RPS),
		burst:       config.Burst,
		timeout:     timeout,
		stopclean:   make(chan struct{}),
	}
	go cleanLimit(m, time.Minute)
	return m
}
func (m *Middleware) Stop() {
	m.stoponce.Do(func() { close(m.stopclean) })
}
