package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// CacheObject is the one redis client shared by the session, draft and listing caches.
type CacheObject struct {
	connect *redis.Client
}

func NewRedisConnection(cfg configs.RedisConfig) (*CacheObject, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		log.Printf("[DEBUG] [Ads-Service] Failed to establish Redis-Client connection: %v", err)
		return nil, err
	}
	log.Println("[DEBUG] [Ads-Service] Successful connect to Redis-Client")
	return NewCacheObject(client), nil
}
func NewCacheObject(client *redis.Client) *CacheObject {
	return &CacheObject{connect: client}
}
func (r *CacheObject) Close() {
	r.connect.Close()
	log.Println("[DEBUG] [Ads-Service] Successful close Redis-Client")
}
func CacheMetrics(place string, start time.Time) {
	metrics.AdsCacheQueriesTotal.WithLabelValues(place).Inc()
	metrics.AdsCacheQueryDuration.WithLabelValues(place).Observe(time.Since(start).Seconds())
}
