package kafka

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/segmentio/kafka-go"
)

const sendAttempts = 3

type AdsLog struct {
	Level     string `json:"-"`
	Service   string `json:"service"`
	Place     string `json:"place"`
	TraceID   string `json:"trace_id"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

// NewAdsLog never blocks the caller: when the buffer is full or the producer is closed the line is dropped.
func (kf *KafkaProducer) NewAdsLog(level, place, traceid, msg string) {
	newlog := AdsLog{
		Level:     level,
		Service:   "Ads-Service",
		Place:     place,
		TraceID:   traceid,
		Timestamp: time.Now().Format(time.RFC3339),
		Message:   msg,
	}
	kf.mu.RLock()
	defer kf.mu.RUnlock()
	if kf.closed {
		log.Printf("[WARN] [Ads-Service] Producer closing, dropping log: %+v", newlog)
		return
	}
	select {
	case kf.logchan <- newlog:
		metrics.AdsKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
	default:
		log.Printf("[WARN] [Ads-Service] Log channel is full, dropping log: %+v", newlog)
	}
}
func (kf *KafkaProducer) topicFor(level string) string {
	if topic := kf.topics[level]; topic != "" {
		return topic
	}
	return "ads-" + strings.ToLower(level) + "-log-topic"
}
func (kf *KafkaProducer) message(logg AdsLog) (kafka.Message, error) {
	data, err := json.Marshal(logg)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{Topic: kf.topicFor(logg.Level), Key: []byte(logg.TraceID), Value: data}, nil
}
func (kf *KafkaProducer) sendLogs(num int) {
	defer kf.wg.Done()
	for {
		select {
		case <-kf.context.Done():
			log.Printf("[DEBUG] [Ads-Service] [Worker: %v] Context canceled, stopping Kafka-worker...", num)
			return
		case first, ok := <-kf.logchan:
			if !ok {
				log.Printf("[INFO] [Ads-Service] [Worker: %v] Log channel closed, stopping worker", num)
				return
			}
			if msgs := kf.collect(num, first); len(msgs) > 0 {
				kf.writeBatch(num, msgs)
			}
		}
	}
}

// collect takes whatever is already buffered behind first, up to the batch size, without waiting.
func (kf *KafkaProducer) collect(num int, first AdsLog) []kafka.Message {
	msgs := make([]kafka.Message, 0, kf.batch)
	next, ok := first, true
	for ok {
		msg, err := kf.message(next)
		if err != nil {
			log.Printf("[ERROR] [Ads-Service] [Worker: %v] Failed to marshal log: %v", num, err)
		} else {
			msgs = append(msgs, msg)
		}
		if len(msgs) >= kf.batch {
			return msgs
		}
		select {
		case next, ok = <-kf.logchan:
		default:
			ok = false
		}
	}
	metrics.AdsKafkaProducerBufferSize.Set(float64(len(kf.logchan)))
	return msgs
}
func (kf *KafkaProducer) writeBatch(num int, msgs []kafka.Message) {
	ctx, cancel := context.WithTimeout(kf.context, 15*time.Second)
	defer cancel()
	backoff := kf.backoff
	var err error
	for attempt := 1; attempt <= sendAttempts; attempt++ {
		if err = kf.writer.WriteMessages(ctx, msgs...); err == nil {
			for _, msg := range msgs {
				metrics.AdsKafkaProducerMessagesSent.WithLabelValues(msg.Topic).Inc()
			}
			return
		}
		log.Printf("[WARN] [Ads-Service] [Worker: %v] Attempt %d to send %d logs failed: %v", num, attempt, len(msgs), err)
		if attempt == sendAttempts {
			break
		}
		select {
		case <-ctx.Done():
			attempt = sendAttempts
		case <-time.After(backoff):
			backoff *= 2
		}
	}
	for _, msg := range msgs {
		metrics.AdsKafkaProducerErrorsTotal.WithLabelValues(msg.Topic).Inc()
	}
	log.Printf("[ERROR] [Ads-Service] [Worker: %v] Dropping %d logs after all retries: %v", num, len(msgs), err)
}

type serviceLog struct {
	Message string `json:"service_log"`
}

func (kf *KafkaProducer) LogStart() {
	kf.sendServiceLog(serviceLog{Message: logStartService})
}
func (kf *KafkaProducer) LogClose() {
	kf.sendServiceLog(serviceLog{Message: logCloseService})
}

// sendServiceLog marks service start and stop on every level topic in one write.
func (kf *KafkaProducer) sendServiceLog(logg serviceLog) {
	data, err := json.Marshal(logg)
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to marshal log: %v", err)
		return
	}
	msgs := make([]kafka.Message, 0, len(kf.topics))
	for _, level := range []string{LogLevelInfo, LogLevelWarn, LogLevelError} {
		msgs = append(msgs, kafka.Message{Topic: kf.topicFor(level), Value: data})
	}
	if err := kf.writer.WriteMessages(kf.context, msgs...); err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to send Service Log(%v): %v", logg, err)
	}
}
