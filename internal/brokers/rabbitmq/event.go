package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/streadway/amqp"
)

const publishAttempts = 3

func (rp *RabbitProducer) NewAdsEvent(ctx context.Context, routingKey string, event *model.AdsEvent, place string) error {
	body, err := json.Marshal(event)
	if err != nil {
		rp.logProducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, fmt.Sprintf("Failed to marshal message: %v", err))
		return err
	}
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		select {
		case <-rp.context.Done():
			rp.logProducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, "RabbitProducer's context was canceled")
			return rp.context.Err()
		case <-ctx.Done():
			rp.logProducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, "Request context was canceled")
			return ctx.Err()
		default:
		}
		err = rp.channel.Publish(
			rp.config.Exchange,
			routingKey,
			false,
			false,
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Timestamp:    time.Now(),
				Body:         body,
			},
		)
		if err == nil {
			rp.logProducer.NewAdsLog(kafka.LogLevelInfo, place, event.Traceid, fmt.Sprintf("Ads Event with routing key: %s was published on attempt %d", routingKey, attempt))
			return nil
		}
		rp.logProducer.NewAdsLog(kafka.LogLevelWarn, place, event.Traceid, fmt.Sprintf("Attempt %d failed to publish Ads Event: %v", attempt, err))
		time.Sleep(time.Duration(attempt) * 200 * time.Millisecond)
	}
	rp.logProducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, fmt.Sprintf("Failed to publish Ads Event with routing key %s after %d attempts", routingKey, publishAttempts))
	return err
}
