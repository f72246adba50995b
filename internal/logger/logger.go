package logger

import (
	"os"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type AdsLoggerInterface interface {
	Info(msg string, fields ...zap.Field)
	Error(msg string, fields ...zap.Field)
	Fatal(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}
type AdsLogger struct {
	logger *zap.Logger
	writer *lumberjack.Logger
}

// NewAdsLogger writes JSON lines to stdout and, when config.File is set, to a rotated file.
func NewAdsLogger(config configs.LoggerConfig) *AdsLogger {
	level, err := zapcore.ParseLevel(config.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)}
	var writer *lumberjack.Logger
	if config.File != "" {
		writer = &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.Rotation.MaxSize,
			MaxAge:     config.Rotation.MaxAge,
			MaxBackups: config.Rotation.MaxBackups,
			Compress:   config.Rotation.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(writer), level))
	}
	zaplogger := zap.New(zapcore.NewTee(cores...), zap.Fields(zap.String("service", "Ads-Service")))
	return &AdsLogger{logger: zaplogger, writer: writer}
}

// NewNopLogger discards everything; tests use it.
func NewNopLogger() *AdsLogger {
	return &AdsLogger{logger: zap.NewNop()}
}
func (l *AdsLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Info(msg, fields...)
}
func (l *AdsLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Warn(msg, fields...)
}
func (l *AdsLogger) Error(msg string, fields ...zap.Field) {
	l.logger.Error(msg, fields...)
}
func (l *AdsLogger) Fatal(msg string, fields ...zap.Field) {
	l.logger.Fatal(msg, fields...)
}
func (l *AdsLogger) Sync() {
	_ = l.logger.Sync()
	if l.writer != nil {
		l.writer.Close()
	}
}
