package metrics

import (
	"log"
	"runtime"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AdsTotalRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_requests_total",
	Help: "Total number of requests to Ads-Service",
}, []string{"path"})
var AdsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ads_service_duration_seconds",
	Help:    "Histogram for the request duration in seconds in Ads-Service",
	Buckets: []float64{0.1, 0.5, 1, 2, 5},
}, []string{"handler"})
var AdsErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_errors_total",
	Help: "Total number of errors encountered by the Ads-Service",
}, []string{"error_type"})
var AdsTotalSuccessfulRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_successful_requests_total",
	Help: "Total number of successful requests to Ads-Service",
}, []string{"handler"})
var AdsRateLimitExceededTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_rate_limit_exceeded_total",
	Help: "Total number of requests rejected by the rate limiter",
}, []string{"path"})
var AdsMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "ads_service_memory_usage_bytes",
	Help: "Current memory usage in bytes",
})
var AdsDBQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ads_service_db_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the database",
	Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1},
}, []string{"query_type"})
var AdsDBQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_db_queries_total",
	Help: "Total number of queries executed on the database",
}, []string{"query_type"})
var AdsDBErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_db_errors_total",
	Help: "Total number of errors encountered when interacting with the database",
}, []string{"error_type", "query_type"})
var AdsCacheQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "ads_service_cache_query_duration_seconds",
	Help:    "Histogram for the query duration in seconds to the cache",
	Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1},
}, []string{"query_type"})
var AdsCacheQueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_cache_queries_total",
	Help: "Total number of queries executed on the cache",
}, []string{"query_type"})
var AdsCacheErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_cache_errors_total",
	Help: "Total number of errors encountered when interacting with the cache",
}, []string{"query_type"})
var AdsCloudOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_cloud_operations_total",
	Help: "Total number of photo uploads and deletions against the cloud storage",
}, []string{"operation", "status"})
var AdsKafkaProducerMessagesSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_kafka_producer_messages_sent_total",
	Help: "Total number of messages sent to Kafka by Ads-Service",
}, []string{"topics"})
var AdsKafkaProducerErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ads_service_kafka_producer_send_errors_total",
	Help: "Total number of errors encountered while sending messages to Kafka by Ads-Service",
}, []string{"topics"})
var AdsKafkaProducerBufferSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "ads_service_kafka_producer_queue_size",
	Help: "Current size of the Kafka producer message queue in Ads-Service",
})
var AdsTaskQueueSize = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "ads_service_task_queue_size",
	Help: "Current number of background tasks waiting for a worker",
})
var stop = make(chan struct{})
var once sync.Once

func Start() {
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				var memStats runtime.MemStats
				runtime.ReadMemStats(&memStats)
				AdsMemoryUsage.Set(float64(memStats.Alloc))
			case <-stop:
				return
			}
		}
	}()
}
func Stop() {
	once.Do(func() { close(stop) })
	log.Println("[INFO] [Ads-Service] Successful close Metrics-Goroutine")
}
