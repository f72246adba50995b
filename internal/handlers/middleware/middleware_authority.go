package middleware

import (
	"context"
	"net/http"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
)

// Authorized resolves the session cookie and puts userID and sessionID into the context.
func (m *Middleware) Authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = Authority
		traceID, _ := r.Context().Value("traceID").(string)
		cookie, err := r.Cookie(response.SessionCookie)
		if err != nil || cookie.Value == "" {
			logRequest(r, m.logproducer, kafka.LogLevelWarn, place, traceID, erro.ErrorRequiredSession)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.BadResponse(r, w, http.StatusUnauthorized, erro.ClientError(erro.ErrorRequiredSession), traceID, place, m.logproducer)
			return
		}
		authresponse := m.sessions.Authorize(r.Context(), cookie.Value)
		if !authresponse.Success {
			if authresponse.Errors.Type == erro.ServerErrorType {
				response.BadResponse(r, w, http.StatusInternalServerError, authresponse.Errors, traceID, place, m.logproducer)
				return
			}
			logRequest(r, m.logproducer, kafka.LogLevelWarn, place, traceID, authresponse.Errors.Message)
			response.DeleteSessionCookie(w)
			response.BadResponse(r, w, http.StatusUnauthorized, authresponse.Errors, traceID, place, m.logproducer)
			return
		}
		ctx := context.WithValue(r.Context(), "userID", authresponse.Data.UserID)
		ctx = context.WithValue(ctx, "sessionID", cookie.Value)
		logRequest(r, m.logproducer, kafka.LogLevelInfo, place, traceID, "")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthorizedNot rejects requests that already carry a live session.
func (m *Middleware) AuthorizedNot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const place = Not_Authority
		traceID, _ := r.Context().Value("traceID").(string)
		cookie, err := r.Cookie(response.SessionCookie)
		if err != nil || cookie.Value == "" {
			logRequest(r, m.logproducer, kafka.LogLevelInfo, place, traceID, "")
			next.ServeHTTP(w, r)
			return
		}
		authresponse := m.sessions.Authorize(r.Context(), cookie.Value)
		if authresponse.Success {
			logRequest(r, m.logproducer, kafka.LogLevelWarn, place, traceID, erro.ErrorAlreadyAuthorized)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.BadResponse(r, w, http.StatusForbidden, erro.ClientError(erro.ErrorAlreadyAuthorized), traceID, place, m.logproducer)
			return
		}
		logRequest(r, m.logproducer, kafka.LogLevelInfo, place, traceID, "Stale session cookie ignored")
		next.ServeHTTP(w, r)
	})
}
