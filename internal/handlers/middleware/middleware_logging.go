package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
)

func logRequest(r *http.Request, logproducer LogProducer, level string, place string, traceID string, msg string) {
	fmtlog := fmt.Sprintf("[IP: %s] [Method: %s] [Path: %s]", r.RemoteAddr, r.Method, r.URL.Path)
	if msg != "" {
		fmtlog = fmt.Sprintf("%s %s", fmtlog, msg)
	}
	logproducer.NewAdsLog(level, place, traceID, fmtlog)
}

// Logging starts every request: a fresh trace id, the start time and the request deadline go into the context.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := uuid.New().String()
		ctx, cancel := context.WithTimeout(r.Context(), m.timeout)
		defer cancel()
		ctx = context.WithValue(ctx, "traceID", traceID)
		ctx = context.WithValue(ctx, "starttime", time.Now())
		r = r.WithContext(ctx)
		metrics.AdsTotalRequests.WithLabelValues(r.URL.Path).Inc()
		logRequest(r, m.logproducer, kafka.LogLevelInfo, Logging, traceID, "")
		next.ServeHTTP(w, r)
	})
}
