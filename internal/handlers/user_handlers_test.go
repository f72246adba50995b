package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/erro"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/handlers/response"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/model"
	"github.com/niktin06sash/MicroserviceProject/Ads_service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	session := &model.Session{SessionID: testSessionID, UserID: testUserID, ExpirationTime: time.Now().Add(24 * time.Hour)}
	tests := []struct {
		testname           string
		reqbody            string
		mockservice        func(m *handlerMocks)
		expectedStatuscode int
		expectedErr        map[string]string
		expectCookie       bool
	}{
		{
			testname: "Success",
			reqbody:  `{"name": "maria", "email": "maria@mail.com", "password": "secret1", "state": "SP"}`,
			mockservice: func(m *handlerMocks) {
				m.users.EXPECT().Register(gomock.Any(), &model.RegistrationRequest{Name: "maria", Email: "maria@mail.com", Password: "secret1", State: "SP"}).
					Return(&service.ServiceResponse{Success: true, Data: service.Data{UserID: testUserID, Session: session}})
			},
			expectedStatuscode: http.StatusOK,
			expectCookie:       true,
		},
		{
			testname:           "UnmarshalError",
			reqbody:            `{"name": "maria", "password": 1234}`,
			expectedStatuscode: http.StatusBadRequest,
		},
		{
			testname: "UniqueEmail",
			reqbody:  `{"name": "maria", "email": "maria@mail.com", "password": "secret1"}`,
			mockservice: func(m *handlerMocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&service.ServiceResponse{Success: false, Errors: erro.ClientError(erro.ErrorUniqueEmail)})
			},
			expectedStatuscode: http.StatusConflict,
			expectedErr:        map[string]string{erro.ErrorType: erro.ClientErrorType, erro.ErrorMessage: erro.ErrorUniqueEmail},
		},
		{
			testname: "ServiceUnavailable",
			reqbody:  `{"name": "maria", "email": "maria@mail.com", "password": "secret1"}`,
			mockservice: func(m *handlerMocks) {
				m.users.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(&service.ServiceResponse{Success: false, Errors: erro.ServerError(erro.AdsServiceUnavalaible)})
			},
			expectedStatuscode: http.StatusInternalServerError,
			expectedErr:        map[string]string{erro.ErrorType: erro.ServerErrorType, erro.ErrorMessage: erro.AdsServiceUnavalaible},
		},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			h, m := newTestHandler(t)
			if tt.mockservice != nil {
				tt.mockservice(m)
			}
			rec := httptest.NewRecorder()
			h.Register(rec, anonymousRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.reqbody)))
			require.Equal(t, tt.expectedStatuscode, rec.Code)
			resp := decodeResponse(t, rec)
			require.Equal(t, tt.expectedStatuscode == http.StatusOK, resp.Success)
			if tt.expectedErr != nil {
				require.Equal(t, tt.expectedErr, resp.Errors)
			}
			cookies := rec.Result().Cookies()
			if tt.expectCookie {
				require.Len(t, cookies, 1)
				require.Equal(t, response.SessionCookie, cookies[0].Name)
				require.Equal(t, testSessionID, cookies[0].Value)
				require.True(t, cookies[0].HttpOnly)
				require.Equal(t, testUserID, resp.Data[response.KeyUserID])
			} else {
				require.Empty(t, cookies)
			}
		})
	}
}
func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		testname           string
		err                *erro.CustomError
		expectedStatuscode int
	}{
		{testname: "EmailNotRegistered", err: erro.ClientError(erro.ErrorEmailNotRegister), expectedStatuscode: http.StatusUnauthorized},
		{testname: "IncorrectPassword", err: erro.ClientError(erro.ErrorIncorrectPassword), expectedStatuscode: http.StatusUnauthorized},
		{testname: "NotEmail", err: erro.ClientError(erro.ErrorNotEmail), expectedStatuscode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.testname, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.users.EXPECT().Login(gomock.Any(), &model.AuthenticationRequest{Email: "maria@mail.com", Password: "secret1"}).
				Return(&service.ServiceResponse{Success: false, Errors: tt.err})
			rec := httptest.NewRecorder()
			h.Login(rec, anonymousRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"email": "maria@mail.com", "password": "secret1"}`)))
			require.Equal(t, tt.expectedStatuscode, rec.Code)
			resp := decodeResponse(t, rec)
			require.Equal(t, tt.err.Message, resp.Errors[erro.ErrorMessage])
			require.Empty(t, rec.Result().Cookies())
		})
	}
}
func TestLogout_DeletesCookie(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().Logout(gomock.Any(), testSessionID).Return(&service.ServiceResponse{Success: true})
	rec := httptest.NewRecorder()
	h.Logout(rec, authorizedRequest(http.MethodDelete, "/api/auth/logout", nil, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, response.SessionCookie, cookies[0].Name)
	require.Equal(t, -1, cookies[0].MaxAge)
}
func TestMyProfile(t *testing.T) {
	h, m := newTestHandler(t)
	profile := &model.ProfileView{Email: "maria@mail.com", Name: "maria", Phone: model.NotInformed, State: "São Paulo"}
	m.users.EXPECT().GetProfile(gomock.Any(), testUserID).Return(&service.ServiceResponse{Success: true, Data: service.Data{Profile: profile}})
	rec := httptest.NewRecorder()
	h.MyProfile(rec, authorizedRequest(http.MethodGet, "/api/users/me", nil, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeResponse(t, rec)
	require.Equal(t, map[string]any{"email": "maria@mail.com", "name": "maria", "phone": model.NotInformed, "state": "São Paulo"}, resp.Data[response.KeyProfile])
}
func TestMyProfile_MissingPersonality(t *testing.T) {
	h, _ := newTestHandler(t)
	rec := httptest.NewRecorder()
	h.MyProfile(rec, anonymousRequest(http.MethodGet, "/api/users/me", nil))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeResponse(t, rec)
	require.Equal(t, erro.AdsServiceUnavalaible, resp.Errors[erro.ErrorMessage])
}
func TestDeleteAccount(t *testing.T) {
	h, m := newTestHandler(t)
	m.users.EXPECT().DeleteAccount(gomock.Any(), testSessionID, testUserID, &model.DeletionRequest{Password: "secret1"}).
		Return(&service.ServiceResponse{Success: true})
	rec := httptest.NewRecorder()
	h.DeleteAccount(rec, authorizedRequest(http.MethodDelete, "/api/users/me", strings.NewReader(`{"password": "secret1"}`), nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, -1, cookies[0].MaxAge)
}
