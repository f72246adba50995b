package rabbitmq

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"github.com/streadway/amqp"
	"github.com/stretchr/testify/require"
)

type recordedAck struct {
	acked   bool
	nacked  bool
	requeue bool
}

func (r *recordedAck) Ack(tag uint64, multiple bool) error {
	r.acked = true
	return nil
}
func (r *recordedAck) Nack(tag uint64, multiple bool, requeue bool) error {
	r.nacked = true
	r.requeue = requeue
	return nil
}
func (r *recordedAck) Reject(tag uint64, requeue bool) error {
	return r.Nack(tag, false, requeue)
}

type nopLogs struct{}

func (nopLogs) NewAdsLog(level, place, traceid, msg string) {}

type stubHandler struct {
	response *service.ServiceResponse
	calls    []string
	traceids []string
}

func (h *stubHandler) CleanupUserData(ctx context.Context, event *model.AdsEvent) *service.ServiceResponse {
	h.calls = append(h.calls, "cleanup:"+event.UserID)
	h.traceids = append(h.traceids, ctx.Value("traceID").(string))
	return h.response
}
func (h *stubHandler) InvalidateListing(ctx context.Context, event *model.AdsEvent) *service.ServiceResponse {
	h.calls = append(h.calls, "invalidate:"+event.ListingID)
	h.traceids = append(h.traceids, ctx.Value("traceID").(string))
	return h.response
}
func newTestConsumer(handler EventHandler) *RabbitConsumer {
	ctx, cancel := context.WithCancel(context.Background())
	return &RabbitConsumer{logproducer: nopLogs{}, handler: handler, ctx: ctx, cancel: cancel}
}
func delivery(t *testing.T, key string, event *model.AdsEvent, redelivered bool, ack *recordedAck) amqp.Delivery {
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return amqp.Delivery{Acknowledger: ack, RoutingKey: key, Body: body, Redelivered: redelivered}
}
func TestHandleDelivery(t *testing.T) {
	event := &model.AdsEvent{UserID: "u1", ListingID: "l1", Traceid: "trace-1"}
	tests := []struct {
		name          string
		key           string
		response      *service.ServiceResponse
		redelivered   bool
		expectedCalls []string
		expected      recordedAck
	}{
		{
			name:          "UserDeleteAcked",
			key:           model.UserDeleteKey,
			response:      &service.ServiceResponse{Success: true},
			expectedCalls: []string{"cleanup:u1"},
			expected:      recordedAck{acked: true},
		},
		{
			name:          "ListingDeletedAcked",
			key:           model.ListingDeletedKey,
			response:      &service.ServiceResponse{Success: true},
			expectedCalls: []string{"invalidate:l1"},
			expected:      recordedAck{acked: true},
		},
		{
			name:          "ServerErrorRequeuedOnce",
			key:           model.UserDeleteKey,
			response:      &service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)},
			expectedCalls: []string{"cleanup:u1"},
			expected:      recordedAck{nacked: true, requeue: true},
		},
		{
			name:          "ServerErrorOnRedeliveryDropped",
			key:           model.UserDeleteKey,
			response:      &service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)},
			redelivered:   true,
			expectedCalls: []string{"cleanup:u1"},
			expected:      recordedAck{nacked: true},
		},
		{
			name:          "ClientErrorAcked",
			key:           model.ListingDeletedKey,
			response:      &service.ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidListingIDFormat)},
			expectedCalls: []string{"invalidate:l1"},
			expected:      recordedAck{acked: true},
		},
		{
			name:     "UnknownKeyAcked",
			key:      model.ListingCreatedKey,
			expected: recordedAck{acked: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &stubHandler{response: tt.response}
			rc := newTestConsumer(handler)
			defer rc.cancel()
			ack := &recordedAck{}
			rc.handleDelivery(delivery(t, tt.key, event, tt.redelivered, ack))
			require.Equal(t, tt.expected, *ack)
			require.Equal(t, tt.expectedCalls, handler.calls)
			for _, traceid := range handler.traceids {
				require.Equal(t, "trace-1", traceid)
			}
		})
	}
}
func TestHandleDelivery_BrokenBody(t *testing.T) {
	handler := &stubHandler{}
	rc := newTestConsumer(handler)
	defer rc.cancel()
	ack := &recordedAck{}
	rc.handleDelivery(amqp.Delivery{Acknowledger: ack, RoutingKey: model.UserDeleteKey, Body: []byte("{")})
	require.Equal(t, recordedAck{nacked: true}, *ack)
	require.Empty(t, handler.calls)
}
