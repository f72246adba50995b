package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/logger"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"go.uber.org/zap"
)

const cloudTaskTimeout = 30 * time.Second

// TaskPool runs background cloud work on a fixed set of workers fed by a bounded queue.
type TaskPool struct {
	Task_queue chan func()
	closechan  chan struct{}
	wg         *sync.WaitGroup
	logger     logger.AdsLoggerInterface
}

func NewTaskPool(config configs.WorkersConfig, log logger.AdsLoggerInterface) *TaskPool {
	pool := &TaskPool{
		Task_queue: make(chan func(), config.QueueSize),
		closechan:  make(chan struct{}),
		wg:         &sync.WaitGroup{},
		logger:     log,
	}
	for i := 1; i <= config.Count; i++ {
		pool.wg.Add(1)
		go pool.taskWorker(i)
	}
	return pool
}
func (pool *TaskPool) taskWorker(i int) {
	defer pool.wg.Done()
	for {
		select {
		case task := <-pool.Task_queue:
			metrics.AdsTaskQueueSize.Set(float64(len(pool.Task_queue)))
			pool.logger.Info("New task has been received. Execute...", zap.Int("worker", i))
			task()
		case <-pool.closechan:
			for {
				select {
				case task := <-pool.Task_queue:
					task()
				default:
					pool.logger.Info("Task channel drained, stopping worker", zap.Int("worker", i))
					return
				}
			}
		}
	}
}
func (pool *TaskPool) StopWorkers() {
	close(pool.closechan)
	pool.wg.Wait()
	pool.logger.Info("Successful stop task-workers")
}
func (pool *TaskPool) enqueueTask(ctx context.Context, task func(context.Context), timeout time.Duration, place string, traceid string, logproducer LogProducer) *ServiceResponse {
	select {
	case pool.Task_queue <- func() {
		taskCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		task(context.WithValue(taskCtx, "traceID", traceid))
	}:
		metrics.AdsTaskQueueSize.Set(float64(len(pool.Task_queue)))
		return &ServiceResponse{Success: true}
	case <-ctx.Done():
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, erro.ErrorContextCanceled)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	default:
		logproducer.NewAdsLog(kafka.LogLevelError, place, traceid, erro.ErrorOverflowTaskQ)
		return &ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)}
	}
}

// deletePhotosCloud schedules one cloud deletion per reference; a full queue drops the rest.
func deletePhotosCloud(ctx context.Context, pool *TaskPool, cloud CloudPhotoStorage, photos []string, traceid string, logproducer LogProducer) *ServiceResponse {
	const place = DeletePhotoCloud
	for _, link := range photos {
		link := link
		resp := pool.enqueueTask(ctx, func(taskctx context.Context) {
			cloudresponse := cloud.DeleteFile(taskctx, link)
			if !cloudresponse.Success && cloudresponse.Errors != nil {
				logproducer.NewAdsLog(kafka.LogLevelError, cloudresponse.Place, traceid, cloudresponse.Errors.Message)
				return
			}
			logproducer.NewAdsLog(kafka.LogLevelInfo, place, traceid, fmt.Sprintf("The photo %s has been processed by the cloud cleanup", link))
		}, cloudTaskTimeout, place, traceid, logproducer)
		if !resp.Success {
			return resp
		}
	}
	return &ServiceResponse{Success: true}
}
