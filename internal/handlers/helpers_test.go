package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	mock_handlers "github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/mocks"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/stretchr/testify/require"
)

const (
	testTraceID   = "7d1c5a0e-3f3b-4c39-9a57-6f1f3b1e2d10"
	testUserID    = "0b8e1f7a-5d55-4a1e-8f0e-3c2b1a9d8e71"
	testSessionID = "5a3c9e2b-1d4f-4b6a-8c7d-2e1f0a9b8c63"
	testListingID = "c6f7e2d1-9a8b-4c3d-8e5f-1a2b3c4d5e6f"
	testDraftID   = "e1d2c3b4-a5f6-4789-8abc-def012345678"
)

type handlerMocks struct {
	users    *mock_handlers.MockUserService
	listings *mock_handlers.MockListingService
	drafts   *mock_handlers.MockDraftService
	logs     *mock_handlers.MockLogProducer
}

func newTestHandler(t *testing.T) (*Handler, *handlerMocks) {
	ctrl := gomock.NewController(t)
	m := &handlerMocks{
		users:    mock_handlers.NewMockUserService(ctrl),
		listings: mock_handlers.NewMockListingService(ctrl),
		drafts:   mock_handlers.NewMockDraftService(ctrl),
		logs:     mock_handlers.NewMockLogProducer(ctrl),
	}
	m.logs.EXPECT().NewAdsLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return NewHandler(m.users, m.listings, m.drafts, passMiddleware{}, m.logs), m
}

// passMiddleware stands in for the real chain and marks every request as authorized.
type passMiddleware struct{}

func (passMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), "traceID", testTraceID)))
	})
}
func (passMiddleware) RateLimiter(next http.Handler) http.Handler {
	return next
}
func (passMiddleware) Authorized(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), "userID", testUserID)
		ctx = context.WithValue(ctx, "sessionID", testSessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
func (passMiddleware) AuthorizedNot(next http.Handler) http.Handler {
	return next
}

func authorizedRequest(method, target string, body io.Reader, vars map[string]string) *http.Request {
	r := anonymousRequest(method, target, body)
	ctx := context.WithValue(r.Context(), "userID", testUserID)
	ctx = context.WithValue(ctx, "sessionID", testSessionID)
	r = r.WithContext(ctx)
	if vars != nil {
		r = mux.SetURLVars(r, vars)
	}
	return r
}
func anonymousRequest(method, target string, body io.Reader) *http.Request {
	if body == nil {
		body = strings.NewReader("")
	}
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(context.WithValue(r.Context(), "traceID", testTraceID))
}
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.HTTPResponse {
	t.Helper()
	var resp response.HTTPResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
func multipartBody(t *testing.T, field string, files ...[]byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i, file := range files {
		part, err := writer.CreateFormFile(field, "photo"+string(rune('a'+i))+".jpg")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}
