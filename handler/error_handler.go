package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/guardrail"
	"github.com/dmitrymomot/guardrail/binder"
	"github.com/dmitrymomot/guardrail/pkg/logger"
	"github.com/dmitrymomot/guardrail/pkg/requestid"
)

// ErrorInfo contains classified error information.
type ErrorInfo struct {
	StatusCode int
	Payload    any
	LogLevel   slog.Level
}

// isBindingError reports whether the error came from request decoding.
func isBindingError(err error) bool {
	return errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrInvalidQuery) ||
		errors.Is(err, binder.ErrInvalidPath) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType)
}

// classifyError analyzes the error and returns structured error information.
// Validation failures render as the uniform violations payload; schema
// errors (unknown type, unresolvable path, inconsistent constraints) are
// configuration bugs and always render as 500.
func classifyError(err error) ErrorInfo {
	if verr := guardrail.AsValidationError(err); verr != nil {
		status, payload := guardrail.Respond(verr.Outcome())
		return ErrorInfo{StatusCode: status, Payload: payload, LogLevel: slog.LevelWarn}
	}

	if isBindingError(err) {
		return ErrorInfo{
			StatusCode: http.StatusBadRequest,
			Payload:    map[string]string{"error": err.Error()},
			LogLevel:   slog.LevelWarn,
		}
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		level := slog.LevelWarn
		if httpErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		return ErrorInfo{
			StatusCode: httpErr.Code,
			Payload:    map[string]string{"error": httpErr.Key},
			LogLevel:   level,
		}
	}

	return ErrorInfo{
		StatusCode: http.StatusInternalServerError,
		Payload:    map[string]string{"error": "internal_server_error"},
		LogLevel:   slog.LevelError,
	}
}

func logError(log *slog.Logger, ctx Context, err error, info ErrorInfo) {
	log.LogAttrs(ctx.Request().Context(), info.LogLevel, "request error",
		logger.RequestID(requestid.FromContext(ctx.Request().Context())),
		logger.Error(err),
		slog.Int("status_code", info.StatusCode),
		slog.String("method", ctx.Request().Method),
		slog.String("path", ctx.Request().URL.Path),
		logger.Component("error_handler"),
	)
}

// NewErrorHandler creates the default JSON error handler. Configure it once
// in main and pass to all routes.
func NewErrorHandler[C Context](log *slog.Logger) ErrorHandler[C] {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx C, err error) {
		info := classifyError(err)
		logError(log, ctx, err, info)

		w := ctx.ResponseWriter()
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(info.StatusCode)
		if encErr := json.NewEncoder(w).Encode(info.Payload); encErr != nil {
			log.LogAttrs(ctx.Request().Context(), slog.LevelError, "failed to encode error response",
				logger.Error(encErr),
				logger.Component("error_handler"),
			)
		}
	}
}

// defaultErrorHandler renders errors without logging. Wrap uses it when no
// handler is configured.
func defaultErrorHandler[C Context](ctx C, err error) {
	info := classifyError(err)
	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(info.StatusCode)
	_ = json.NewEncoder(w).Encode(info.Payload)
}
