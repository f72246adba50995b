package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"github.com/streadway/amqp"
)

type EventHandler interface {
	CleanupUserData(ctx context.Context, event *model.AdsEvent) *service.ServiceResponse
	InvalidateListing(ctx context.Context, event *model.AdsEvent) *service.ServiceResponse
}
type RabbitConsumer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	queue       amqp.Queue
	config      configs.RabbitMQConfig
	logproducer LogProducer
	handler     EventHandler
	wg          *sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

var consumedKeys = []string{model.UserDeleteKey, model.ListingDeletedKey}

func NewRabbitConsumer(config configs.RabbitMQConfig, logproducer LogProducer, handler EventHandler) (*RabbitConsumer, error) {
	conn, err := amqp.Dial(connString(config))
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to connect to Rabbit-Consumer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		log.Printf("[DEBUG] [Ads-Service] Failed to open a channel to Rabbit-Consumer: %v", err)
		return nil, err
	}
	fail := func(msg string, err error) (*RabbitConsumer, error) {
		channel.Close()
		conn.Close()
		log.Printf("[DEBUG] [Ads-Service] %s: %v", msg, err)
		return nil, err
	}
	if err = declareExchange(channel, config.Exchange); err != nil {
		return fail("Failed to declare an exchange to Rabbit-Consumer", err)
	}
	queue, err := channel.QueueDeclare(
		config.Queue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fail("Failed to declare a queue to Rabbit-Consumer", err)
	}
	for _, key := range consumedKeys {
		if err = channel.QueueBind(queue.Name, key, config.Exchange, false, nil); err != nil {
			return fail(fmt.Sprintf("Failed to bind a queue with routing key %s", key), err)
		}
	}
	msgs, err := channel.Consume(
		queue.Name,
		config.ConsumerTag,
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fail("Failed to consume messages", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	rc := &RabbitConsumer{
		conn:        conn,
		channel:     channel,
		queue:       queue,
		config:      config,
		logproducer: logproducer,
		handler:     handler,
		wg:          &sync.WaitGroup{},
		ctx:         ctx,
		cancel:      cancel,
	}
	rc.wg.Add(1)
	go rc.readEvent(msgs)
	log.Println("[DEBUG] [Ads-Service] Successful connect to Rabbit-Consumer")
	return rc, nil
}
func (rc *RabbitConsumer) readEvent(msgs <-chan amqp.Delivery) {
	const place = "RabbitConsumer-ReadEvent"
	defer rc.wg.Done()
	for {
		select {
		case <-rc.ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				rc.logproducer.NewAdsLog(kafka.LogLevelInfo, place, "", "Rabbit's channel closed, stopping worker")
				return
			}
			rc.handleDelivery(msg)
		}
	}
}
func (rc *RabbitConsumer) handleDelivery(msg amqp.Delivery) {
	const place = "RabbitConsumer-HandleDelivery"
	var event model.AdsEvent
	err := json.Unmarshal(msg.Body, &event)
	if err != nil {
		rc.logproducer.NewAdsLog(kafka.LogLevelError, place, "", fmt.Sprintf("Failed to unmarshal message: %v", err))
		msg.Nack(false, false)
		return
	}
	ctx, cancel := context.WithTimeout(rc.ctx, 10*time.Second)
	defer cancel()
	ctx = context.WithValue(ctx, "traceID", event.Traceid)
	var resp *service.ServiceResponse
	switch msg.RoutingKey {
	case model.UserDeleteKey:
		rc.logproducer.NewAdsLog(kafka.LogLevelInfo, place, event.Traceid, fmt.Sprintf("Received user delete account event for userID: %s", event.UserID))
		resp = rc.handler.CleanupUserData(ctx, &event)
	case model.ListingDeletedKey:
		rc.logproducer.NewAdsLog(kafka.LogLevelInfo, place, event.Traceid, fmt.Sprintf("Received listing delete event for listingID: %s", event.ListingID))
		resp = rc.handler.InvalidateListing(ctx, &event)
	default:
		rc.logproducer.NewAdsLog(kafka.LogLevelWarn, place, event.Traceid, fmt.Sprintf("Unexpected routing key: %s", msg.RoutingKey))
	}
	if resp != nil && resp.Errors != nil && resp.Errors.Type == erro.ServerErrorType {
		msg.Nack(false, !msg.Redelivered)
		return
	}
	err = msg.Ack(false)
	if err != nil {
		rc.logproducer.NewAdsLog(kafka.LogLevelError, place, event.Traceid, fmt.Sprintf("Failed to acknowledge message: %v", err))
	}
}
func (rc *RabbitConsumer) Close() {
	rc.cancel()
	rc.wg.Wait()
	rc.channel.Close()
	rc.conn.Close()
	log.Println("[DEBUG] [Ads-Service] Successful close Rabbit-Consumer")
}
