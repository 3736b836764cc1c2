// Package activate реализует HTTP-обработчик симулированной оплаты тарифа.
//
// Один и тот же Handler обслуживает запуск оплаты и ручную активацию;
// они различаются только формой ответа.
package activate

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sakaclient-backend/internal/http/response"
	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

const (
	errInvalidRequest = "phone & valid plan required"

	// MessageSimulated — сообщение ответа при запуске оплаты.
	MessageSimulated = "Payment simulated - plan active"
)

// Request — входные данные для активации тарифа.
type Request struct {
	Phone string `json:"phone" validate:"required" example:"0712345678"`
	Plan  string `json:"plan" validate:"required,oneof=daily weekly monthly" example:"daily"`
}

// Response — успешный ответ активации. Message заполняется только при запуске оплаты.
type Response struct {
	response.Envelope
	Message string `json:"message,omitempty" example:"Payment simulated - plan active"`
	Expires int64  `json:"expires" example:"1760486400000"`
}

// Service описывает бизнес-логику активации.
type Service interface {
	Activate(ctx context.Context, phone string, plan models.Plan, manual bool) (int64, error)
}

// Handler обрабатывает запросы активации тарифа.
type Handler struct {
	log          *slog.Logger
	service      Service
	validate     *validator.Validate
	customerCare string
	manual       bool
}

// NewStart создает Handler для POST /api/payments/start.
func NewStart(log *slog.Logger, service Service, customerCare string) *Handler {
	return newHandler(log, service, customerCare, false)
}

// NewManual создает Handler для POST /api/payments/activate/manual.
func NewManual(log *slog.Logger, service Service, customerCare string) *Handler {
	return newHandler(log, service, customerCare, true)
}

func newHandler(log *slog.Logger, service Service, customerCare string, manual bool) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		validate:     validator.New(),
		customerCare: customerCare,
		manual:       manual,
	}
}

// ServeHTTP godoc
// @Summary Симулированная оплата тарифа
// @Description Создаёт подписку без обращения к платёжному шлюзу. Ручная активация отвечает без поля message.
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body Request true "Номер и тариф"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Номер не передан или тариф неизвестен"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/payments/start [post]
// @Router /api/payments/activate/manual [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.activate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Bool("manual", h.manual),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, errInvalidRequest, h.customerCare)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", slog.String("details", response.ValidationDetails(err)))
		response.WriteError(w, r, http.StatusBadRequest, errInvalidRequest, h.customerCare)
		return
	}

	expires, err := h.service.Activate(r.Context(), req.Phone, models.Plan(req.Plan), h.manual)
	if err != nil {
		log.Error("failed to activate plan", sl.Phone(req.Phone), sl.Err(err))
		response.ServiceError(w, r, err, h.customerCare)
		return
	}

	resp := Response{
		Envelope: response.OK(h.customerCare),
		Expires:  expires,
	}
	if !h.manual {
		resp.Message = MessageSimulated
	}

	log.Info("plan activated", sl.Phone(req.Phone), slog.String("plan", req.Plan), slog.Int64("expires", expires))
	response.JSON(w, r, http.StatusOK, resp)
}
