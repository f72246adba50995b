package app

import (
	"context"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/kafka"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/brokers/rabbitmq"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/middleware"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/logger"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/metrics"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository/cache"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository/cloud"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/repository/database"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/server"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"go.uber.org/zap"
)

type AdsApplication struct {
	config configs.Config
	server *server.Server
	logger *logger.AdsLogger
}

func NewAdsApplication(config configs.Config) *AdsApplication {
	return &AdsApplication{config: config, logger: logger.NewAdsLogger(config.Logger)}
}

func (a *AdsApplication) Start() error {
	defer a.logger.Sync()
	defer func() {
		a.logger.Info("Count of active goroutines", zap.Int("goroutines", runtime.NumGoroutine()))
	}()
	pg, err := database.NewPostgresConnection(a.config.Database)
	if err != nil {
		a.logger.Error("Failed to connect to Postgres", zap.Error(err))
		return err
	}
	defer pg.Close()
	redis, err := cache.NewRedisConnection(a.config.Redis)
	if err != nil {
		a.logger.Error("Failed to connect to Redis", zap.Error(err))
		return err
	}
	defer redis.Close()
	mega, err := cloud.NewMegaClient(a.config.Mega)
	if err != nil {
		a.logger.Error("Failed to connect to Mega", zap.Error(err))
		return err
	}
	metrics.Start()
	defer metrics.Stop()
	kafkaProducer := kafka.NewKafkaProducer(a.config.Kafka)
	defer kafkaProducer.Close()
	defer kafkaProducer.LogClose()
	rabbitProducer, err := rabbitmq.NewRabbitProducer(a.config.RabbitMQ, kafkaProducer)
	if err != nil {
		a.logger.Error("Failed to connect Rabbit-Producer", zap.Error(err))
		return err
	}
	defer rabbitProducer.Close()

	txmanager := database.NewTxManager(pg)
	userdb := database.NewUserDatabase(pg)
	listingdb := database.NewListingDatabase(pg)
	sessions := cache.NewSessionCache(redis)
	drafts := cache.NewDraftCache(redis, a.config.Draft.TTL)
	listingcache := cache.NewListingCache(redis)
	photos := cloud.NewPhotoCloud(mega)

	pool := service.NewTaskPool(a.config.Workers, a.logger)
	defer pool.StopWorkers()
	userService := service.NewUserService(userdb, listingdb, txmanager, sessions, listingcache, rabbitProducer, kafkaProducer, a.config.Session.TTL)
	listingService := service.NewListingService(listingdb, listingcache, photos, rabbitProducer, kafkaProducer, pool)
	draftService := service.NewDraftService(drafts, listingdb, listingcache, photos, rabbitProducer, kafkaProducer, pool)

	rabbitConsumer, err := rabbitmq.NewRabbitConsumer(a.config.RabbitMQ, kafkaProducer, listingService)
	if err != nil {
		a.logger.Error("Failed to connect Rabbit-Consumer", zap.Error(err))
		return err
	}
	defer rabbitConsumer.Close()

	mw := middleware.NewMiddleware(userService, kafkaProducer, a.config.RateLimit, a.config.Server.RequestTimeout)
	defer mw.Stop()
	handler := handlers.NewHandler(userService, listingService, draftService, mw, kafkaProducer)
	a.server = server.NewServer(a.config.Server, handler.InitRoutes(), a.logger)
	kafkaProducer.LogStart()
	serverError := make(chan error, 1)
	go func() {
		if err := a.server.Run(); err != nil {
			serverError <- err
		}
		close(serverError)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-quit:
		a.logger.Info("Server shutting down with signal", zap.String("signal", sig.String()))
	case err, ok := <-serverError:
		if ok {
			a.logger.Error("Server startup failed", zap.Error(err))
			return err
		}
	}
	return a.Stop()
}
func (a *AdsApplication) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.GracefulShutdown)
	defer cancel()
	a.logger.Info("Server is shutting down...")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("Server shutdown error", zap.Error(err))
		return err
	}
	a.logger.Info("Server has shutted down successfully")
	return nil
}
