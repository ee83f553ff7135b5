package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/ibancheck/pkg/binder"
	"github.com/dmitrymomot/ibancheck/pkg/iban"
	"github.com/dmitrymomot/ibancheck/pkg/logger"
	"github.com/dmitrymomot/ibancheck/pkg/requestid"
	"github.com/dmitrymomot/ibancheck/pkg/validator"
)

// ErrorInfo contains classified error information
type ErrorInfo struct {
	StatusCode int
	Message    string
	LogLevel   slog.Level
}

// Helper functions for HTTP status code classification
func isClientError(statusCode int) bool {
	return statusCode >= http.StatusBadRequest && statusCode < http.StatusInternalServerError
}

// determineLogLevel maps HTTP status codes to appropriate log levels
func determineLogLevel(statusCode int) slog.Level {
	if isClientError(statusCode) {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// classifyError maps err to a status code and the message shown to the client.
// Unrecognized errors become a 500 with a generic message so internals do not leak.
func classifyError(err error) ErrorInfo {
	info := ErrorInfo{
		StatusCode: ErrInternalServerError.Code,
		Message:    ErrInternalServerError.Message,
	}

	var (
		httpErr HTTPError
		ibanErr *iban.Error
	)

	switch {
	case validator.IsValidationError(err):
		info.StatusCode = http.StatusBadRequest
		info.Message = strings.Join(validator.ExtractValidationErrors(err).Messages(), " ")
	case errors.As(err, &ibanErr):
		info.StatusCode = http.StatusBadRequest
		info.Message = ibanErr.Error()
	case errors.As(err, &httpErr):
		info.StatusCode = httpErr.Code
		info.Message = httpErr.Message
	case errors.Is(err, binder.ErrFailedToParseQuery):
		info.StatusCode = ErrBadRequest.Code
		info.Message = ErrBadRequest.Message
	}

	info.LogLevel = determineLogLevel(info.StatusCode)

	return info
}

// logError logs the error with comprehensive context
func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	r := ctx.Request()

	log.LogAttrs(r.Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(r.Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the error handler shared by all routes. It logs
// client errors at WARN and server errors at ERROR, then renders the JSON
// error envelope.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		if renderErr := JSONError(err).Render(ctx.ResponseWriter(), ctx.Request()); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(ctx.Request().Context())),
				logger.Error(renderErr),
				logger.Event("render_error_response"),
			)
		}
	}
}
