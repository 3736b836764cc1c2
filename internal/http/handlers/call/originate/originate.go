// Package originate реализует HTTP-обработчик симулированного исходящего звонка.
package originate

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

const errInvalidRequest = "phone & clientNumber required"

// Response — успешный ответ инициации звонка.
type Response struct {
	response.Envelope
	CallID string `json:"callId" example:"SIM-3f9a01bc"`
	Status string `json:"status" example:"completed"`
}

// Service описывает бизнес-логику звонков.
type Service interface {
	Originate(ctx context.Context, req models.OriginateRequest) (*models.Call, error)
}

// Handler обрабатывает запросы инициации звонка.
type Handler struct {
	log          *slog.Logger
	service      Service
	validate     *validator.Validate
	customerCare string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, customerCare string) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		validate:     validator.New(),
		customerCare: customerCare,
	}
}

// ServeHTTP godoc
// @Summary Исходящий звонок
// @Description Записывает симулированный звонок клиенту. Внешняя телефония не вызывается.
// @Tags Calls
// @Accept json
// @Produce json
// @Param request body models.OriginateRequest true "Номер пользователя и клиента"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Номера не переданы"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/calls/originate [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.call.originate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.OriginateRequest
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

	call, err := h.service.Originate(r.Context(), req)
	if err != nil {
		log.Error("failed to originate call", sl.Phone(req.Phone), sl.Err(err))
		response.ServiceError(w, r, err, h.customerCare)
		return
	}

	log.Info("call recorded", slog.String("call_ref", call.CallRef))
	response.JSON(w, r, http.StatusOK, Response{
		Envelope: response.OK(h.customerCare),
		CallID:   call.CallRef,
		Status:   call.Status,
	})
}
