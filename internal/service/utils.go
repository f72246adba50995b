package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
)

// NewValidator registers the "state" tag next to the stock ones.
func NewValidator() *validator.Validate {
	val := validator.New()
	_ = val.RegisterValidation("state", func(fl validator.FieldLevel) bool {
		return model.IsState(fl.Field().String())
	})
	return val
}
func traceID(ctx context.Context) string {
	traceid, _ := ctx.Value("traceID").(string)
	return traceid
}
func requestToRepository(response *repository.RepositoryResponse, traceid string, logproducer LogProducer) (*repository.RepositoryResponse, *ServiceResponse) {
	if !response.Success && response.Errors != nil {
		switch response.Errors.Type {
		case erro.ServerErrorType:
			logproducer.NewAdsLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
			return response, &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
		case erro.ClientErrorType:
			logproducer.NewAdsLog(kafka.LogLevelWarn, response.Place, traceid, response.Errors.Message)
			metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
			return response, &ServiceResponse{Success: false, Errors: response.Errors}
		}
	}
	logproducer.NewAdsLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
	return response, nil
}

// logOnly reports the outcome of a best-effort repository call without failing the use case.
func logOnly(response *repository.RepositoryResponse, traceid string, logproducer LogProducer) {
	if !response.Success && response.Errors != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, response.Place, traceid, response.Errors.Message)
		return
	}
	logproducer.NewAdsLog(kafka.LogLevelInfo, response.Place, traceid, response.SuccessMessage)
}
func validateData[T any](val *validator.Validate, data T, traceid string, place string, logproducer LogProducer) *erro.CustomError {
	err := val.Struct(data)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, err.Error())
		return erro.ClientError(erro.ErrorInvalidDataReq)
	}
	first := validationErrors[0]
	var fmterr string
	switch first.Tag() {
	case "email":
		fmterr = erro.ErrorNotEmail
	case "state":
		fmterr = erro.ErrorInvalidState
	case "min":
		fmterr = fmt.Sprintf("%s is too short", first.Field())
	case "max":
		fmterr = fmt.Sprintf("%s is too long", first.Field())
	case "required":
		fmterr = fmt.Sprintf("%s is Null", first.Field())
	case "gte":
		fmterr = fmt.Sprintf("%s must not be negative", first.Field())
	case "oneof":
		fmterr = fmt.Sprintf("%s must be one of: %s", first.Field(), first.Param())
	default:
		fmterr = fmt.Sprintf("%s is invalid", first.Field())
	}
	logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmterr)
	metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
	return erro.ClientError(fmterr)
}
func parsingUUID(id string, clienterr string, traceid string, place string, logproducer LogProducer) (uuid.UUID, *ServiceResponse) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelWarn, place, traceid, fmt.Sprintf("UUID-parse Error: %v", err))
		metrics.AdsErrorsTotal.WithLabelValues(erro.ClientErrorType).Inc()
		return uuid.Nil, &ServiceResponse{Success: false, Errors: erro.ClientError(clienterr)}
	}
	return parsed, nil
}
func beginTransaction(ctx context.Context, txman DBTxManager, traceid string, place string, logproducer LogProducer) (pgx.Tx, *ServiceResponse) {
	tx, err := txman.BeginTx(ctx)
	metrics.AdsDBQueriesTotal.WithLabelValues("Begin Transaction").Inc()
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorStartTransaction, err))
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "Transaction").Inc()
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return nil, &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	}
	return tx, nil
}
func rollbackTransaction(ctx context.Context, txman DBTxManager, tx pgx.Tx, traceid string, place string, logproducer LogProducer) {
	err := txman.RollbackTx(ctx, tx)
	metrics.AdsDBQueriesTotal.WithLabelValues("Rollback Transaction").Inc()
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf("Error rolling back transaction: %v", err))
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "Transaction").Inc()
		return
	}
	logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, "Successful rollback transaction")
}
func commitTransaction(ctx context.Context, txman DBTxManager, tx pgx.Tx, traceid string, place string, logproducer LogProducer) *ServiceResponse {
	err := txman.CommitTx(ctx, tx)
	metrics.AdsDBQueriesTotal.WithLabelValues("Commit Transaction").Inc()
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, fmt.Sprintf(erro.ErrorCommitTransaction, err))
		metrics.AdsDBErrorsTotal.WithLabelValues(erro.ServerErrorType, "Transaction").Inc()
		metrics.AdsErrorsTotal.WithLabelValues(erro.ServerErrorType).Inc()
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	}
	logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, "Successful commit transaction")
	return nil
}
func publishEvent(ctx context.Context, events EventProducer, routingKey string, event *model.AdsEvent, place string, logproducer LogProducer) {
	err := events.NewAdsEvent(ctx, routingKey, event, place)
	if err != nil {
		logproducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, fmt.Sprintf(erro.ErrorPublishEvent, err))
	}
}

// orphans lists references of before that are missing from after.
func orphans(before, after []string) []string {
	kept := make(map[string]struct{}, len(after))
	for _, ref := range after {
		kept[ref] = struct{}{}
	}
	var out []string
	for _, ref := range before {
		if _, ok := kept[ref]; !ok {
			out = append(out, ref)
			kept[ref] = struct{}{}
		}
	}
	return out
}

// shared lists references of refs that also appear in within, once each.
func shared(refs, within []string) []string {
	present := make(map[string]struct{}, len(within))
	for _, ref := range within {
		present[ref] = struct{}{}
	}
	out := []string{}
	seen := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		if _, ok := present[ref]; !ok {
			continue
		}
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		out = append(out, ref)
	}
	return out
}
