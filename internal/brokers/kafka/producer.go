package kafka

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/segmentio/kafka-go"
)

const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

const (
	logStartService = "Ads-Service has started"
	logCloseService = "Ads-Service has stopped"
)
const (
	logWorkers     = 3
	logBufferSize  = 1000
	defaultBackoff = 500 * time.Millisecond
)

// KafkaProducer ships operational log lines to one topic per level from a buffered channel.
type KafkaProducer struct {
	writer  *kafka.Writer
	logchan chan AdsLog
	topics  map[string]string
	batch   int
	backoff time.Duration
	wg      *sync.WaitGroup
	context context.Context
	cancel  context.CancelFunc
	closed  bool
	mu      sync.RWMutex
}

func NewKafkaProducer(config configs.KafkaConfig) *KafkaProducer {
	brokers := strings.Split(config.BootstrapServers, ",")
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		WriteTimeout:           10 * time.Second,
		WriteBackoffMax:        5 * time.Second,
		BatchSize:              config.BatchSize,
		RequiredAcks:           requiredAcks(config.Acks),
		AllowAutoTopicCreation: true,
	}
	ctx, cancel := context.WithCancel(context.Background())
	producer := newProducer(ctx, cancel, w, config)
	for i := 1; i <= logWorkers; i++ {
		producer.wg.Add(1)
		go producer.sendLogs(i)
	}
	log.Println("[DEBUG] [Ads-Service] Successful connect to Kafka-Producer")
	return producer
}
func newProducer(ctx context.Context, cancel context.CancelFunc, w *kafka.Writer, config configs.KafkaConfig) *KafkaProducer {
	backoff := time.Duration(config.RetryBackoffMs) * time.Millisecond
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	batch := config.BatchSize
	if batch <= 0 {
		batch = 1
	}
	return &KafkaProducer{
		writer:  w,
		logchan: make(chan AdsLog, logBufferSize),
		topics: map[string]string{
			LogLevelInfo:  config.Topics.InfoLog,
			LogLevelWarn:  config.Topics.WarnLog,
			LogLevelError: config.Topics.ErrorLog,
		},
		batch:   batch,
		backoff: backoff,
		wg:      &sync.WaitGroup{},
		context: ctx,
		cancel:  cancel,
	}
}
func requiredAcks(acks string) kafka.RequiredAcks {
	switch acks {
	case "0":
		return kafka.RequireNone
	case "1":
		return kafka.RequireOne
	}
	return kafka.RequireAll
}

// Close stops accepting logs, lets the workers drain the buffer and then closes the writer.
func (kf *KafkaProducer) Close() {
	kf.mu.Lock()
	kf.closed = true
	close(kf.logchan)
	kf.mu.Unlock()
	kf.wg.Wait()
	kf.cancel()
	kf.writer.Close()
	log.Println("[DEBUG] [Ads-Service] Successful close Kafka-Producer")
}
