package middleware

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"golang.org/x/time/rate"
)

func (m *Middleware) RateLimiter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = RateLimiter
		traceID, _ := r.Context().Value("traceID").(string)
		limiter := getLimit(m, clientIP(r))
		if !limiter.Allow() {
			logRequest(r, m.logproducer, kafka.LogLevelWarn, place, traceID, erro.ErrorTooManyRequests)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			metrics.AdsRateLimitExceededTotal.WithLabelValues(r.URL.Path).Inc()
			response.BadResponse(r, w, http.StatusTooManyRequests, erro.ClientError(erro.ErrorTooManyRequests), traceID, place, m.logproducer)
			return
		}
		next.ServeHTTP(w, r)
	})
}
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
func getLimit(m *Middleware, ip string) *rate.Limiter {
	entry, exist := m.rateLimiters.Load(ip)
	if !exist {
		entry, _ = m.rateLimiters.LoadOrStore(ip, &RateLimiterEntry{Limiter: rate.NewLimiter(m.limit, m.burst)})
	}
	e := entry.(*RateLimiterEntry)
	e.LastUsed.Store(time.Now().UnixNano())
	return e.Limiter
}
func cleanLimit(m *Middleware, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-m.stopclean:
			log.Println("[INFO] [Ads-Service] [RateLimiter] Successful completion of RateLimiter")
			return
		case <-ticker.C:
			removeIdle(m, time.Now())
		}
	}
}
func removeIdle(m *Middleware, now time.Time) int {
	removed := 0
	m.rateLimiters.Range(func(key, value any) bool {
		entry := value.(*RateLimiterEntry)
		if now.Sub(time.Unix(0, entry.LastUsed.Load())) >= idleLimiterTTL {
			m.rateLimiters.Delete(key)
			removed++
		}
		return true
	})
	return removed
}
