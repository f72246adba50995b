package response

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
)

const (
	KeyMessage  = "message"
	KeyUserID   = "userid"
	KeyProfile  = "profile"
	KeyDraft    = "draft"
	KeyListing  = "listing"
	KeyListings = "listings"
	KeyCarousel = "carousel"
)
const SessionCookie = "session"

type HTTPResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors,omitempty"`
	Data    map[string]any    `json:"data,omitempty"`
	Status  int               `json:"status"`
}
type LogProducer interface {
	NewAdsLog(level, place, traceid, msg string)
}

func SendResponse(ctx context.Context, w http.ResponseWriter, success bool, data map[string]any, errors map[string]string, status int, traceid string, place string, logproducer LogProducer) {
	start, ok := ctx.Value("starttime").(time.Time)
	if !ok {
		start = time.Now()
	}
	defer func() {
		metrics.AdsRequestDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
	}()
	w.Header().Set("Content-Type", "application/json")
	if ctx.Err() != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Context error: %v", ctx.Err()))
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(HTTPResponse{
			Success: false,
			Errors:  ErrorsToMap(erro.ServerError(erro.RequestTimedOut)),
			Status:  http.StatusInternalServerError,
		})
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return
	}
	resp := HTTPResponse{
		Success: success,
		Errors:  errors,
		Data:    data,
		Status:  status,
	}
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorMarshal, err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return
	}
	if success {
		logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, "Succesfull send response to client")
		metrics.AdsTotalSuccessfulRequests.WithLabelValues(place).Inc()
	}
}
func OkResponse(r *http.Request, w http.ResponseWriter, data map[string]any, traceid string, place string, logproducer LogProducer) {
	SendResponse(r.Context(), w, true, data, nil, http.StatusOK, traceid, place, logproducer)
}
func BadResponse(r *http.Request, w http.ResponseWriter, status int, err *erro.CustomError, traceid string, place string, logproducer LogProducer) {
	SendResponse(r.Context(), w, false, nil, ErrorsToMap(err), status, traceid, place, logproducer)
}
func ErrorsToMap(err *erro.CustomError) map[string]string {
	return map[string]string{erro.ErrorType: err.Type, erro.ErrorMessage: err.Message}
}
func AddSessionCookie(w http.ResponseWriter, sessionID string, expireTime time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(time.Until(expireTime).Seconds()),
	})
}
func DeleteSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
