// Package response содержит типы и функции для формирования единообразных
// JSON-ответов HTTP-обработчиков. Каждый ответ несёт номер службы поддержки
// в поле customerCare.
package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/sakaclient-backend/internal/models"
)

// Envelope — общая часть успешного ответа. Встраивается в ответы обработчиков.
type Envelope struct {
	OK           bool   `json:"ok" example:"true"`
	CustomerCare string `json:"customerCare" example:"0758170835"`
}

// ErrorResponse — тело ответа с ошибкой.
type ErrorResponse struct {
	Error        string `json:"error" example:"user not found"`
	CustomerCare string `json:"customerCare" example:"0758170835"`
}

// OK возвращает Envelope успешного ответа.
func OK(customerCare string) Envelope {
	return Envelope{OK: true, CustomerCare: customerCare}
}

// Error возвращает ErrorResponse с переданным сообщением.
func Error(msg, customerCare string) ErrorResponse {
	return ErrorResponse{Error: msg, CustomerCare: customerCare}
}

// JSON записывает v с кодом status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// WriteError записывает ErrorResponse с кодом status.
func WriteError(w http.ResponseWriter, r *http.Request, status int, msg, customerCare string) {
	JSON(w, r, status, Error(msg, customerCare))
}

// ServiceError записывает ошибку сервиса: 404 для неизвестного пользователя,
// иначе 500 с текстом ошибки.
func ServiceError(w http.ResponseWriter, r *http.Request, err error, customerCare string) {
	if errors.Is(err, models.ErrUserNotFound) {
		WriteError(w, r, http.StatusNotFound, models.ErrUserNotFound.Error(), customerCare)
		return
	}
	WriteError(w, r, http.StatusInternalServerError, err.Error(), customerCare)
}

// ValidationDetails формирует человеко-читаемое описание ошибок валидации.
// Клиенту возвращается фиксированное сообщение обработчика, описание идёт в лог.
func ValidationDetails(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("field %s is a required field", e.Field()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("field %s must be one of [%s]", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("field %s is not valid", e.Field()))
		}
	}
	return strings.Join(msgs, ", ")
}
