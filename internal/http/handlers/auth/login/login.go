// Package login реализует HTTP-обработчик входа по номеру телефона.
//
// Неизвестный номер регистрируется при первом входе. Флаг дизайнера
// выставляется сервисом по списку DESIGNER_PHONES.
package login

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

const errPhoneRequired = "phone required"

// Request — входные данные для входа.
type Request struct {
	Phone string `json:"phone" validate:"required" example:"0712345678"`
}

// Response — успешный ответ входа.
type Response struct {
	response.Envelope
	User *models.User `json:"user"`
}

// Service описывает бизнес-логику входа.
type Service interface {
	Login(ctx context.Context, phone string) (*models.User, error)
}

// Handler обрабатывает запросы входа.
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
// @Summary Вход по номеру телефона
// @Description Находит пользователя по номеру или создаёт его при первом входе.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body Request true "Номер телефона"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Номер не передан"
// @Failure 500 {object} response.ErrorResponse "Ошибка хранилища"
// @Router /api/auth/login-phone [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		response.WriteError(w, r, http.StatusBadRequest, errPhoneRequired, h.customerCare)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Warn("validation failed", slog.String("details", response.ValidationDetails(err)))
		response.WriteError(w, r, http.StatusBadRequest, errPhoneRequired, h.customerCare)
		return
	}

	user, err := h.service.Login(r.Context(), req.Phone)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		response.ServiceError(w, r, err, h.customerCare)
		return
	}

	log.Info("login success", slog.Int64("user_id", user.ID), sl.Phone(user.Phone))
	response.JSON(w, r, http.StatusOK, Response{
		Envelope: response.OK(h.customerCare),
		User:     user,
	})
}
