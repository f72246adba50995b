package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/logger"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	mock_service "github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service/mocks"
)

const (
	fixedTraceID   = "123e4567-e89b-12d3-a456-426614174000"
	fixedUserID    = "9f0c6a2e-58a5-4c1e-9a43-0d8a3c0d7b11"
	fixedOtherID   = "2b1d8f4c-7e3a-4d55-8c2f-6a9e0b1c3d22"
	fixedListingID = "5c7e2a90-1f3b-4b8d-9e6a-2d4c8f0a1b33"
	fixedDraftID   = "d3a1f6b2-9c4e-4f7a-8b5d-1e2f3a4b5c44"
)

func testContext(t *testing.T) context.Context {
	ctx := context.WithValue(context.Background(), "traceID", fixedTraceID)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// newIdlePool has no workers, so scheduled tasks wait in the queue until runQueued.
func newIdlePool() *service.TaskPool {
	return service.NewTaskPool(configs.WorkersConfig{Count: 0, QueueSize: 10}, logger.NewNopLogger())
}
func runQueued(pool *service.TaskPool) int {
	ran := 0
	for {
		select {
		case task := <-pool.Task_queue:
			task()
			ran++
		default:
			return ran
		}
	}
}
func anyLogs(lp *mock_service.MockLogProducer) {
	lp.EXPECT().NewAdsLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}
func ok(place string, data repository.Data) *repository.RepositoryResponse {
	return repository.SuccessResponse(data, place, "ok")
}
