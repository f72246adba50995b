package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/configs"
	"github.com/stretchr/testify/require"
)

func newTestProducer(t *testing.T, config configs.KafkaConfig) *KafkaProducer {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return newProducer(ctx, cancel, nil, config)
}
func TestTopicFor(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{Topics: configs.KafkaTopics{ErrorLog: "ads-errors"}})
	require.Equal(t, "ads-info-log-topic", kf.topicFor(LogLevelInfo))
	require.Equal(t, "ads-warn-log-topic", kf.topicFor(LogLevelWarn))
	require.Equal(t, "ads-errors", kf.topicFor(LogLevelError))
}
func TestNewProducer_Defaults(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{})
	require.Equal(t, defaultBackoff, kf.backoff)
	require.Equal(t, 1, kf.batch)
	require.Equal(t, logBufferSize, cap(kf.logchan))
}
func TestNewAdsLog_DropsWhenFull(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{})
	kf.logchan = make(chan AdsLog, 1)
	kf.NewAdsLog(LogLevelInfo, "UseCase-Test", "trace", "first")
	kf.NewAdsLog(LogLevelInfo, "UseCase-Test", "trace", "second")
	require.Len(t, kf.logchan, 1)
	logg := <-kf.logchan
	require.Equal(t, "first", logg.Message)
	require.Equal(t, "Ads-Service", logg.Service)
	require.Equal(t, "UseCase-Test", logg.Place)
}
func TestNewAdsLog_DropsAfterClose(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{})
	kf.closed = true
	require.NotPanics(t, func() {
		kf.NewAdsLog(LogLevelWarn, "UseCase-Test", "trace", "late")
	})
	require.Len(t, kf.logchan, 0)
}
func TestCollect_StopsAtBatchSize(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{BatchSize: 3})
	for _, msg := range []string{"b", "c", "d", "e"} {
		kf.NewAdsLog(LogLevelWarn, "UseCase-Test", "trace-"+msg, msg)
	}
	msgs := kf.collect(1, AdsLog{Level: LogLevelInfo, TraceID: "trace-a", Message: "a"})
	require.Len(t, msgs, 3)
	require.Len(t, kf.logchan, 2)
	require.Equal(t, "ads-info-log-topic", msgs[0].Topic)
	require.Equal(t, "ads-warn-log-topic", msgs[1].Topic)
	require.Equal(t, []byte("trace-b"), msgs[1].Key)
	var logg AdsLog
	require.NoError(t, json.Unmarshal(msgs[2].Value, &logg))
	require.Equal(t, "c", logg.Message)
}
func TestCollect_DoesNotWait(t *testing.T) {
	kf := newTestProducer(t, configs.KafkaConfig{BatchSize: 10})
	msgs := kf.collect(1, AdsLog{Level: LogLevelError, Message: "alone"})
	require.Len(t, msgs, 1)
	require.Equal(t, "ads-error-log-topic", msgs[0].Topic)
}
