package response

import (
	"encoding/json"
	"net/http"
	"poolhire/infras/otel"
	"poolhire/shared/constant"
	"poolhire/shared/failure"
	"poolhire/shared/logger"

	"github.com/rs/zerolog/log"
)

// Data is the {"data": ...} envelope used by every successful JSON response.
type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error *string `json:"error,omitempty"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: &message})
}

func WithJSON(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, Data[any]{Data: &payload})
}

// WithRaw writes payload without the data envelope.
func WithRaw(writer http.ResponseWriter, code int, payload any) {
	write(writer, code, payload)
}

// WithError uses the status carried by a failure.Failure, 500 for anything else.
func WithError(writer http.ResponseWriter, err error) {
	msg := err.Error()

	write(writer, failure.GetCode(err), Error{Error: &msg})
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

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// Fail records err on the handler span, logs it and writes the error response.
// Client errors are logged at warn level, everything else at error.
func Fail(writer http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)

	event := log.Error()
	if code := failure.GetCode(err); code < http.StatusInternalServerError {
		event = log.Warn().Int("status", code)
	}

	event.Err(err).Msg(msg)

	WithError(writer, err)
}
