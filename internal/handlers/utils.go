package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
)

const (
	maxPhotoFiles   = 5
	maxMultipartMem = 32 << 20
	photosFormField = "photos"
)

func getAllData[T any](r *http.Request, w http.ResponseWriter, traceID string, place string, parser *T, logproducer LogProducer) bool {
	datafromperson, err := io.ReadAll(r.Body)
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("ReadAll Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorReadAll), traceID, place, logproducer)
		return false
	}
	err = json.Unmarshal(datafromperson, parser)
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Unmarshal Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(fmt.Sprintf(erro.ErrorUnmarshal, err)), traceID, place, logproducer)
		return false
	}
	return true
}
func (h *Handler) getPersonality(r *http.Request, w http.ResponseWriter, traceID string, place string) (map[string]string, bool) {
	persondata := make(map[string]string)
	sessionID, ok := r.Context().Value("sessionID").(string)
	if !ok {
		h.LogProducer.NewAdsLog(kafka.LogLevelError, place, traceID, erro.ErrorMissingSessionID)
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		response.BadResponse(r, w, http.StatusInternalServerError, erro.ServerError(erro.AdsServiceUnavalaible), traceID, place, h.LogProducer)
		return nil, false
	}
	persondata["sessionID"] = sessionID
	userID, ok := r.Context().Value("userID").(string)
	if !ok {
		h.LogProducer.NewAdsLog(kafka.LogLevelError, place, traceID, erro.ErrorMissingUserID)
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		response.BadResponse(r, w, http.StatusInternalServerError, erro.ServerError(erro.AdsServiceUnavalaible), traceID, place, h.LogProducer)
		return nil, false
	}
	persondata["userID"] = userID
	return persondata, true
}
func (h *Handler) getPathParameter(r *http.Request, w http.ResponseWriter, traceID string, place string, name string) (string, bool) {
	value, ok := mux.Vars(r)[name]
	if !ok || value == "" {
		h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Missing path parameter %q", name))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorInvalidPathParameter), traceID, place, h.LogProducer)
		return "", false
	}
	return value, true
}
func (h *Handler) getIndexParameter(r *http.Request, w http.ResponseWriter, traceID string, place string) (int, bool) {
	value, ok := h.getPathParameter(r, w, traceID, place, "index")
	if !ok {
		return 0, false
	}
	index, err := strconv.Atoi(value)
	if err != nil {
		h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Atoi Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorInvalidPathParameter), traceID, place, h.LogProducer)
		return 0, false
	}
	return index, true
}

// getOwnParameter reads the feed toggle; an absent value keeps own listings in the feed.
func (h *Handler) getOwnParameter(r *http.Request, w http.ResponseWriter, traceID string, place string) (bool, bool) {
	value := r.URL.Query().Get("own")
	if value == "" {
		return true, true
	}
	own, err := strconv.ParseBool(value)
	if err != nil {
		h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("ParseBool Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorInvalidQueryParameter), traceID, place, h.LogProducer)
		return false, false
	}
	return own, true
}

// readPhotoFiles collects at most five files of the photos field of a multipart body.
func (h *Handler) readPhotoFiles(r *http.Request, w http.ResponseWriter, traceID string, place string) ([][]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPhotoFiles*service.MaxFileSize+(1<<20))
	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("ParseMultipartForm Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorInvalidDataReq), traceID, place, h.LogProducer)
		return nil, false
	}
	defer r.MultipartForm.RemoveAll()
	headers := r.MultipartForm.File[photosFormField]
	if len(headers) > maxPhotoFiles {
		headers = headers[:maxPhotoFiles]
	}
	files := make([][]byte, 0, len(headers))
	for _, header := range headers {
		if header.Size > service.MaxFileSize {
			h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("File %s is too large: %d bytes", header.Filename, header.Size))
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorLargeFile), traceID, place, h.LogProducer)
			return nil, false
		}
		file, err := header.Open()
		if err != nil {
			h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("Open multipart file Error: %v", err))
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorReadAll), traceID, place, h.LogProducer)
			return nil, false
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			h.LogProducer.NewAdsLog(kafka.LogLevelWarn, place, traceID, fmt.Sprintf("ReadAll Error: %v", err))
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			response.BadResponse(r, w, http.StatusBadRequest, erro.ClientError(erro.ErrorReadAll), traceID, place, h.LogProducer)
			return nil, false
		}
		files = append(files, data)
	}
	return files, true
}
func (h *Handler) serviceResponse(resp *service.ServiceResponse, r *http.Request, w http.ResponseWriter, traceID string, place string) bool {
	if resp.Success {
		return true
	}
	if resp.Errors.Type == erro.ServerErrorType {
		response.BadResponse(r, w, http.StatusInternalServerError, resp.Errors, traceID, place, h.LogProducer)
		return false
	}
	response.BadResponse(r, w, clientStatus(resp.Errors), resp.Errors, traceID, place, h.LogProducer)
	return false
}
func clientStatus(err *erro.CustomError) int {
	switch err.Message {
	case erro.ErrorListingNotFound, erro.ErrorDraftNotFound:
		return http.StatusNotFound
	case erro.ErrorForeignListing:
		return http.StatusForbidden
	case erro.ErrorEmailNotRegister, erro.ErrorIncorrectPassword:
		return http.StatusUnauthorized
	case erro.ErrorUniqueEmail:
		return http.StatusConflict
	}
	return http.StatusBadRequest
}
