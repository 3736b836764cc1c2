// Package health содержит обработчики проверки живости сервиса.
package health

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/sakaclient-backend/internal/http/response"
)

const (
	// ServiceName — имя сервиса в ответе /api/health.
	ServiceName = "SakaClient Backend"
	// PingText — тело ответа /ping.
	PingText = "SakaClient backend is working ✅"

	timeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Response — ответ /api/health.
type Response struct {
	response.Envelope
	Name string `json:"name" example:"SakaClient Backend"`
	Time string `json:"time" example:"2026-10-14T09:30:00.000Z"`
}

// Handler отвечает на /api/health.
type Handler struct {
	log          *slog.Logger
	customerCare string
	now          func() time.Time
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, customerCare string) *Handler {
	return &Handler{
		log:          log,
		customerCare: customerCare,
		now:          time.Now,
	}
}

// ServeHTTP godoc
// @Summary Состояние сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} Response
// @Router /api/health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	h.log.Debug("health checked",
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	response.JSON(w, r, http.StatusOK, Response{
		Envelope: response.OK(h.customerCare),
		Name:     ServiceName,
		Time:     h.now().UTC().Format(timeLayout),
	})
}

// Ping godoc
// @Summary Проверка живости
// @Tags Health
// @Produce plain
// @Success 200 {string} string "SakaClient backend is working ✅"
// @Router /ping [get]
func Ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, PingText)
}
