package rabbitmq

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/streadway/amqp"
)

type RabbitProducer struct {
	conn        *amqp.Connection
	channel     *amqp.Channel
	config      configs.RabbitMQConfig
	logProducer LogProducer
	context     context.Context
	cancel      context.CancelFunc
}
type LogProducer interface {
	NewAdsLog(level, place, traceid, msg string)
}

func connString(config configs.RabbitMQConfig) string {
	return fmt.Sprintf("amqp://%s:%s@%s:%s/", config.Name, config.Password, config.Host, strconv.Itoa(config.Port))
}
func declareExchange(channel *amqp.Channel, exchange string) error {
	return channel.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}
func NewRabbitProducer(config configs.RabbitMQConfig, logproducer LogProducer) (*RabbitProducer, error) {
	conn, err := amqp.Dial(connString(config))
	if err != nil {
		log.Printf("[DEBUG] [Ads-Service] Failed to connect to Rabbit-Producer: %v", err)
		return nil, err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		log.Printf("[DEBUG] [Ads-Service] Failed to open a channel to Rabbit-Producer: %v", err)
		return nil, err
	}
	err = declareExchange(channel, config.Exchange)
	if err != nil {
		channel.Close()
		conn.Close()
		log.Printf("[DEBUG] [Ads-Service] Failed to declare an exchange to Rabbit-Producer: %v", err)
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	log.Println("[DEBUG] [Ads-Service] Successful connect to Rabbit-Producer")
	return &RabbitProducer{conn: conn, channel: channel, config: config, logProducer: logproducer, context: ctx, cancel: cancel}, nil
}
func (rp *RabbitProducer) Close() {
	rp.cancel()
	rp.channel.Close()
	rp.conn.Close()
	log.Println("[DEBUG] [Ads-Service] Successful close Rabbit-Producer")
}
