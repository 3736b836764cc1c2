// Package history реализует HTTP-обработчик истории звонков пользователя.
package history

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/sakaclient-backend/internal/http/response"
	"github.com/magabrotheeeer/sakaclient-backend/internal/lib/sl"
	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

const errInvalidPhone = "invalid phone"

// Response — успешный ответ с историей звонков, новые первыми.
type Response struct {
	response.Envelope
	Rows []models.Call `json:"rows"`
}

// Service описывает бизнес-логику истории звонков.
type Service interface {
	History(ctx context.Context, phone string) ([]models.Call, error)
}

// Handler обрабатывает запросы истории звонков.
type Handler struct {
	log          *slog.Logger
	service      Service
	customerCare string
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service, customerCare string) *Handler {
	return &Handler{
		log:          log,
		service:      service,
		customerCare: customerCare,
	}
}

// ServeHTTP godoc
// @Summary История звонков
// @Description Возвращает до 200 последних звонков пользователя, новые первыми.
// @Tags Calls
// @Produce json
// @Param phone path string true "Номер телефона"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный номер в пути"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/calls/history/{phone} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.call.history"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	phone, err := url.PathUnescape(chi.URLParam(r, "phone"))
	if err != nil {
		log.Warn("invalid phone in path", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, errInvalidPhone, h.customerCare)
		return
	}

	rows, err := h.service.History(r.Context(), phone)
	if err != nil {
		log.Error("failed to read call history", sl.Phone(phone), sl.Err(err))
		response.ServiceError(w, r, err, h.customerCare)
		return
	}
	if rows == nil {
		rows = []models.Call{}
	}

	log.Debug("call history read", sl.Phone(phone), slog.Int("rows", len(rows)))
	response.JSON(w, r, http.StatusOK, Response{
		Envelope: response.OK(h.customerCare),
		Rows:     rows,
	})
}
