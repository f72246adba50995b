package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestAddPhotos_JSON(t *testing.T) {
	h, m := newTestHandler(t)
	draft := &model.Draft{Id: testDraftID, OwnerId: testUserID, Photos: []string{"a", "b"}}
	m.drafts.EXPECT().AddPhotos(gomock.Any(), testUserID, testDraftID, &model.PhotoBatchRequest{Photos: []string{"a", "b"}}).
		Return(&service.ServiceResponse{Success: true, Data: service.Data{Draft: draft}})
	rec := httptest.NewRecorder()
	r := authorizedRequest(http.MethodPost, "/api/drafts/"+testDraftID+"/photos", strings.NewReader(`{"photos": ["a", "b"]}`), map[string]string{"id": testDraftID})
	r.Header.Set("Content-Type", "application/json")
	h.AddPhotos(rec, r)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.Equal(t, []any{"a", "b"}, resp.Data[response.KeyDraft].(map[string]any)["photos"])
}
func TestAddPhotos_Multipart(t *testing.T) {
	files := [][]byte{[]byte("one"), []byte("two"), []byte("three"), []byte("four"), []byte("five"), []byte("six")}
	tests := []struct {
		testname string
		files    [][]byte
		expected [][]byte
	}{
		{testname: "TwoFiles", files: files[:2], expected: files[:2]},
		{testname: "OnlyFiveRead", files: files, expected: files[:5]},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.drafts.EXPECT().UploadPhotos(gomock.Any(), testUserID, testDraftID, tt.expected).
				Return(&service.ServiceResponse{Success: true, Data: service.Data{Draft: &model.Draft{Id: testDraftID, Photos: []string{"l1"}}}})
			body, contentType := multipartBody(t, photosFormField, tt.files...)
			r := authorizedRequest(http.MethodPost, "/api/drafts/"+testDraftID+"/photos", body, map[string]string{"id": testDraftID})
			r.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()
			h.AddPhotos(rec, r)
			require.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
func TestAddPhotos_MultipartUploadFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.drafts.EXPECT().UploadPhotos(gomock.Any(), testUserID, testDraftID, gomock.Any()).
		Return(&service.ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorInvalidFileFormat)})
	body, contentType := multipartBody(t, photosFormField, []byte("not an image"))
	r := authorizedRequest(http.MethodPost, "/api/drafts/"+testDraftID+"/photos", body, map[string]string{"id": testDraftID})
	r.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.AddPhotos(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeResponse(t, rec)
	require.Equal(t, erro.ErrorInvalidFileFormat, resp.Errors[erro.ErrorMessage])
}
func TestAddPhotos_BrokenMultipart(t *testing.T) {
	h, _ := newTestHandler(t)
	r := authorizedRequest(http.MethodPost, "/api/drafts/"+testDraftID+"/photos", bytes.NewBufferString("garbage"), map[string]string{"id": testDraftID})
	r.Header.Set("Content-Type", "multipart/form-data; boundary=missing")
	rec := httptest.NewRecorder()
	h.AddPhotos(rec, r)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
func TestRemovePhoto(t *testing.T) {
	tests := []struct {
		testname           string
		index              string
		expectedIndex      *int
		expectedStatuscode int
	}{
		{testname: "Valid", index: "1", expectedIndex: intPtr(1), expectedStatuscode: http.StatusOK},
		{testname: "OutOfRangePassesThrough", index: "7", expectedIndex: intPtr(7), expectedStatuscode: http.StatusOK},
		{testname: "Negative", index: "-1", expectedIndex: intPtr(-1), expectedStatuscode: http.StatusOK},
		{testname: "NotANumber", index: "first", expectedStatuscode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.expectedIndex != nil {
				m.drafts.EXPECT().RemovePhoto(gomock.Any(), testUserID, testDraftID, *tt.expectedIndex).
					Return(&service.ServiceResponse{Success: true, Data: service.Data{Draft: &model.Draft{Id: testDraftID}}})
			}
			rec := httptest.NewRecorder()
			vars := map[string]string{"id": testDraftID, "index": tt.index}
			h.RemovePhoto(rec, authorizedRequest(http.MethodDelete, "/api/drafts/"+testDraftID+"/photos/"+tt.index, nil, vars))
			require.Equal(t, tt.expectedStatuscode, rec.Code)
			if tt.expectedStatuscode == http.StatusBadRequest {
				resp := decodeResponse(t, rec)
				require.Equal(t, erro.ErrorInvalidPathParameter, resp.Errors[erro.ErrorMessage])
			}
		})
	}
}
func TestSubmitDraft(t *testing.T) {
	h, m := newTestHandler(t)
	m.drafts.EXPECT().Submit(gomock.Any(), testUserID, testDraftID).
		Return(&service.ServiceResponse{Success: true, Data: service.Data{Listing: &model.ListingView{Id: testListingID, Title: "Gol"}}})
	rec := httptest.NewRecorder()
	h.SubmitDraft(rec, authorizedRequest(http.MethodPost, "/api/drafts/"+testDraftID+"/submit", nil, map[string]string{"id": testDraftID}))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.Equal(t, testListingID, resp.Data[response.KeyListing].(map[string]any)["id"])
}
func TestGetDraft_NotFound(t *testing.T) {
	h, m := newTestHandler(t)
	m.drafts.EXPECT().GetDraft(gomock.Any(), testUserID, testDraftID).
		Return(&service.ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorDraftNotFound)})
	rec := httptest.NewRecorder()
	h.GetDraft(rec, authorizedRequest(http.MethodGet, "/api/drafts/"+testDraftID, nil, map[string]string{"id": testDraftID}))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
func intPtr(v int) *int {
	return &v
}
