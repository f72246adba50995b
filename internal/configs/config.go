package configs

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RabbitMQ  RabbitMQConfig  `mapstructure:"rabbitmq"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Mega      MegaConfig      `mapstructure:"mega"`
	Session   SessionConfig   `mapstructure:"session"`
	Draft     DraftConfig     `mapstructure:"draft"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Workers   WorkersConfig   `mapstructure:"workers"`
	Logger    LoggerConfig    `mapstructure:"logger"`
}

type ServerConfig struct {
	Port             string        `mapstructure:"port"`
	MaxHeaderBytes   int           `mapstructure:"max_header_bytes"`
	ReadTimeout      time.Duration `mapstructure:"read_timeout"`
	WriteTimeout     time.Duration `mapstructure:"write_timeout"`
	GracefulShutdown time.Duration `mapstructure:"graceful_shutdown"`
	RequestTimeout   time.Duration `mapstructure:"request_timeout"`
}

type DatabaseConfig struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type RabbitMQConfig struct {
	Host        string `mapstructure:"host"`
	Port        int    `mapstructure:"port"`
	Name        string `mapstructure:"name"`
	Password    string `mapstructure:"password"`
	Queue       string `mapstructure:"queue"`
	Exchange    string `mapstructure:"exchange"`
	ConsumerTag string `mapstructure:"consumer_tag"`
}

type KafkaConfig struct {
	BootstrapServers string      `mapstructure:"bootstrap_servers"`
	RetryBackoffMs   int         `mapstructure:"retry_backoff_ms"`
	BatchSize        int         `mapstructure:"batch_size"`
	Acks             string      `mapstructure:"acks"`
	Topics           KafkaTopics `mapstructure:"topics"`
}

type KafkaTopics struct {
	InfoLog  string `mapstructure:"info_log"`
	ErrorLog string `mapstructure:"error_log"`
	WarnLog  string `mapstructure:"warn_log"`
}
type MegaConfig struct {
	Email         string `mapstructure:"email"`
	Password      string `mapstructure:"password"`
	MainDirectory string `mapstructure:"main_directory"`
}
type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}
type DraftConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}
type WorkersConfig struct {
	Count     int `mapstructure:"count"`
	QueueSize int `mapstructure:"queue_size"`
}
type LoggerConfig struct {
	Level    string         `mapstructure:"level"`
	File     string         `mapstructure:"file"`
	Rotation RotationConfig `mapstructure:"rotation"`
}
type RotationConfig struct {
	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[DEBUG] [Ads-Service] .env file not found; using process environment")
	}
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("internal/configs")
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("[DEBUG] [Ads-Service] Config file not found; using defaults or environment variables")
		} else {
			log.Fatalf("[DEBUG] [Ads-Service] Error reading config file: %s", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		log.Fatalf("[DEBUG] [Ads-Service] Unable to decode into struct, %v", err)
	}
	LoadSecrets(&config)
	docker_flag := os.Getenv("DOCKER")
	if docker_flag == "TRUE" {
		LoadDockerConfig(&config)
		log.Println("[DEBUG] [Ads-Service] Successful Load Config (docker)")
		return config
	}
	log.Println("[DEBUG] [Ads-Service] Successful Load Config (localhost)")
	return config
}
func setDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.graceful_shutdown", 10*time.Second)
	viper.SetDefault("server.request_timeout", 15*time.Second)
	viper.SetDefault("session.ttl", 24*time.Hour)
	viper.SetDefault("draft.ttl", time.Hour)
	viper.SetDefault("ratelimit.rps", 5)
	viper.SetDefault("ratelimit.burst", 20)
	viper.SetDefault("workers.count", 3)
	viper.SetDefault("workers.queue_size", 1000)
	viper.SetDefault("logger.level", "info")
}
func LoadDockerConfig(config *Config) {
	redis := os.Getenv("REDIS_HOST")
	kafka := os.Getenv("KAFKA_BOOTSTRAP_SERVERS")
	rabbit := os.Getenv("RABBITMQ_HOST")
	db := os.Getenv("DB_HOST")
	config.Redis.Host = redis
	config.Kafka.BootstrapServers = kafka
	config.RabbitMQ.Host = rabbit
	config.Database.Host = db
}

// LoadSecrets overrides credentials with MEGA_EMAIL, MEGA_PASSWORD and DB_PASSWORD when they are set.
func LoadSecrets(config *Config) {
	if email := os.Getenv("MEGA_EMAIL"); email != "" {
		config.Mega.Email = email
	}
	if password := os.Getenv("MEGA_PASSWORD"); password != "" {
		config.Mega.Password = password
	}
	if password := os.Getenv("DB_PASSWORD"); password != "" {
		config.Database.Password = password
	}
}
