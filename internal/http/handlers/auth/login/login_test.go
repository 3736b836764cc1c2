package login

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

const care = "0758170835"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Login(ctx context.Context, phone string) (*models.User, error) {
	args := m.Called(ctx, phone)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "new or existing user",
			body: `{"phone":"0712345678"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "0712345678").
					Return(&models.User{ID: 1, Phone: "0712345678", IsDesigner: false}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"ok":true,"customerCare":"0758170835","user":{"id":1,"phone":"0712345678","isDesigner":false}}`,
		},
		{
			name: "designer",
			body: `{"phone":"0700111222"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "0700111222").
					Return(&models.User{ID: 2, Phone: "0700111222", IsDesigner: true}, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"ok":true,"customerCare":"0758170835","user":{"id":2,"phone":"0700111222","isDesigner":true}}`,
		},
		{
			name:           "missing phone",
			body:           `{}`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone required","customerCare":"0758170835"}`,
		},
		{
			name:           "empty phone",
			body:           `{"phone":""}`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone required","customerCare":"0758170835"}`,
		},
		{
			name:           "invalid json body",
			body:           `not a json`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone required","customerCare":"0758170835"}`,
		},
		{
			name: "storage failure",
			body: `{"phone":"0712345678"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Login", mock.Anything, "0712345678").
					Return(nil, errors.New("services.auth.Login: database is locked")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"services.auth.Login: database is locked","customerCare":"0758170835"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)
			handler := New(newNoopLogger(), svc, care)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login-phone", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}

func TestLoginHandler_ResponseShape(t *testing.T) {
	svc := new(ServiceMock)
	svc.On("Login", mock.Anything, "0712345678").Return(&models.User{ID: 9, Phone: "0712345678"}, nil)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login-phone", bytes.NewBufferString(`{"phone":"0712345678"}`))
	New(newNoopLogger(), svc, care).ServeHTTP(rr, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, care, body["customerCare"])
	assert.Contains(t, body, "user")
}
