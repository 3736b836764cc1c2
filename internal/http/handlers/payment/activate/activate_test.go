package activate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

const care = "0758170835"

type ServiceMock struct {
	mock.Mock
}

func (m *ServiceMock) Activate(ctx context.Context, phone string, plan models.Plan, manual bool) (int64, error) {
	args := m.Called(ctx, phone, plan, manual)
	return args.Get(0).(int64), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestActivateHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name           string
		manual         bool
		body           string
		setupMock      func(m *ServiceMock)
		wantStatusCode int
		wantBody       string
	}{
		{
			name: "start payment",
			body: `{"phone":"0712345678","plan":"daily"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Activate", mock.Anything, "0712345678", models.PlanDaily, false).
					Return(int64(1760486400000), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"ok":true,"customerCare":"0758170835","message":"Payment simulated - plan active","expires":1760486400000}`,
		},
		{
			name:   "manual activation has no message",
			manual: true,
			body:   `{"phone":"0712345678","plan":"monthly"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Activate", mock.Anything, "0712345678", models.PlanMonthly, true).
					Return(int64(1763000000000), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantBody:       `{"ok":true,"customerCare":"0758170835","expires":1763000000000}`,
		},
		{
			name:           "unknown plan",
			body:           `{"phone":"0712345678","plan":"yearly"}`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone & valid plan required","customerCare":"0758170835"}`,
		},
		{
			name:           "missing phone",
			manual:         true,
			body:           `{"plan":"weekly"}`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone & valid plan required","customerCare":"0758170835"}`,
		},
		{
			name:           "invalid json body",
			body:           `{`,
			setupMock:      func(_ *ServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
			wantBody:       `{"error":"phone & valid plan required","customerCare":"0758170835"}`,
		},
		{
			name: "unknown user",
			body: `{"phone":"0799999999","plan":"weekly"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Activate", mock.Anything, "0799999999", models.PlanWeekly, false).
					Return(int64(0), models.ErrUserNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
			wantBody:       `{"error":"user not found","customerCare":"0758170835"}`,
		},
		{
			name: "storage failure",
			body: `{"phone":"0712345678","plan":"weekly"}`,
			setupMock: func(m *ServiceMock) {
				m.On("Activate", mock.Anything, "0712345678", models.PlanWeekly, false).
					Return(int64(0), errors.New("insert failed")).Once()
			},
			wantStatusCode: http.StatusInternalServerError,
			wantBody:       `{"error":"insert failed","customerCare":"0758170835"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(ServiceMock)
			tt.setupMock(svc)

			handler := NewStart(newNoopLogger(), svc, care)
			if tt.manual {
				handler = NewManual(newNoopLogger(), svc, care)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/payments/start", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatusCode, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
