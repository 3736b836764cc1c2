// Package access реализует HTTP-обработчик проверки доступа пользователя.
package access

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

// Response — успешный ответ проверки доступа.
type Response struct {
	response.Envelope
	Access *models.Access `json:"access"`
}

// Service описывает бизнес-логику проверки доступа.
type Service interface {
	Access(ctx context.Context, phone string) (*models.Access, error)
}

// Handler обрабатывает запросы проверки доступа.
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
// @Summary Проверка доступа
// @Description Возвращает флаг дизайнера и состояние последней подписки пользователя.
// @Tags Auth
// @Produce json
// @Param phone path string true "Номер телефона"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Некорректный номер в пути"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/auth/access/{phone} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.access"

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

	access, err := h.service.Access(r.Context(), phone)
	if err != nil {
		log.Error("failed to check access", sl.Phone(phone), sl.Err(err))
		response.ServiceError(w, r, err, h.customerCare)
		return
	}

	log.Debug("access checked", sl.Phone(phone), slog.Bool("active_paid", access.ActivePaid))
	response.JSON(w, r, http.StatusOK, Response{
		Envelope: response.OK(h.customerCare),
		Access:   access,
	})
}
