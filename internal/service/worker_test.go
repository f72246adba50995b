package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/logger"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository"
	mock_service "github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service/mocks"
	"github.com/stretchr/testify/require"
)

const fixedTraceID = "123e4567-e89b-12d3-a456-426614174000"

func TestEnqueueTask_Overflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lp := mock_service.NewMockLogProducer(ctrl)
	lp.EXPECT().NewAdsLog(kafka.LogLevelError, DeletePhotoCloud, fixedTraceID, erro.ErrorOverflowTaskQ)
	pool := NewTaskPool(configs.WorkersConfig{Count: 0, QueueSize: 1}, logger.NewNopLogger())
	noop := func(context.Context) {}
	response := pool.enqueueTask(context.Background(), noop, time.Second, DeletePhotoCloud, fixedTraceID, lp)
	require.True(t, response.Success)
	response = pool.enqueueTask(context.Background(), noop, time.Second, DeletePhotoCloud, fixedTraceID, lp)
	require.False(t, response.Success)
	require.Equal(t, erro.ServerError(erro.AdsServiceUnavalaible), response.Errors)
}
func TestEnqueueTask_CarriesTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lp := mock_service.NewMockLogProducer(ctrl)
	pool := NewTaskPool(configs.WorkersConfig{Count: 0, QueueSize: 1}, logger.NewNopLogger())
	var seen string
	var deadline bool
	response := pool.enqueueTask(context.Background(), func(ctx context.Context) {
		seen = traceID(ctx)
		_, deadline = ctx.Deadline()
	}, time.Second, DeletePhotoCloud, fixedTraceID, lp)
	require.True(t, response.Success)
	task := <-pool.Task_queue
	task()
	require.Equal(t, fixedTraceID, seen)
	require.True(t, deadline)
}
func TestStopWorkers_DrainsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lp := mock_service.NewMockLogProducer(ctrl)
	pool := NewTaskPool(configs.WorkersConfig{Count: 2, QueueSize: 50}, logger.NewNopLogger())
	var done int32
	for i := 0; i < 20; i++ {
		response := pool.enqueueTask(context.Background(), func(context.Context) {
			atomic.AddInt32(&done, 1)
		}, time.Second, DeletePhotoCloud, fixedTraceID, lp)
		require.True(t, response.Success)
	}
	pool.StopWorkers()
	require.Equal(t, int32(20), atomic.LoadInt32(&done))
}
func TestDeletePhotosCloud_OneTaskPerPhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	lp := mock_service.NewMockLogProducer(ctrl)
	lp.EXPECT().NewAdsLog(gomock.Any(), gomock.Any(), fixedTraceID, gomock.Any()).AnyTimes()
	cloud := mock_service.NewMockCloudPhotoStorage(ctrl)
	cloud.EXPECT().DeleteFile(gomock.Any(), "p1").Return(repository.SuccessResponse(repository.Data{}, repository.DeleteFile, "deleted"))
	cloud.EXPECT().DeleteFile(gomock.Any(), "p2").Return(repository.BadResponse(erro.ServerError("Error file deleted with name = p2: EOF"), repository.DeleteFile))
	pool := NewTaskPool(configs.WorkersConfig{Count: 0, QueueSize: 10}, logger.NewNopLogger())
	response := deletePhotosCloud(context.Background(), pool, cloud, []string{"p1", "p2"}, fixedTraceID, lp)
	require.True(t, response.Success)
	require.Len(t, pool.Task_queue, 2)
	(<-pool.Task_queue)()
	(<-pool.Task_queue)()
}
func TestOrphans(t *testing.T) {
	require.Equal(t, []string{"b", "d"}, orphans([]string{"a", "b", "b", "c", "d"}, []string{"a", "c"}))
	require.Nil(t, orphans([]string{"a"}, []string{"a", "x"}))
	require.Nil(t, orphans(nil, []string{"a"}))
}
