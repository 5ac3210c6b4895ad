package response

import (
	"encoding/json"
	"net/http"
	"tripdesk/shared/constant"
	"tripdesk/shared/failure"
	"tripdesk/shared/logger"
)

type Data[T any] struct {
	Data T `json:"data"`
}

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error Detail `json:"error"`
}

// Detail carries the HTTP status both as a number and as its text so clients can branch on either.
type Detail struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: payload})
}

// WithError maps err onto its HTTP status. Errors that are not failures surface as 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	write(writer, code, Error{Error: Detail{
		Status:  code,
		Code:    http.StatusText(code),
		Message: err.Error(),
	}})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func write(writer http.ResponseWriter, code int, body any) {
	payload, err := json.Marshal(body)
	if err != nil {
		logger.ErrorWithStack(err)
		writer.WriteHeader(http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(payload); err != nil {
		logger.ErrorWithStack(err)
	}
}
