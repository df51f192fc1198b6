// Package logger builds configured slog.Logger instances with context-aware
// attribute injection.
//
// The factory supports JSON output for production log aggregation and text
// output for development, static attributes applied to every record, and
// context extractors that pull request-scoped values (such as request IDs)
// into log records at logging time.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("guardrail-demo"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.Info("listening", slog.String("addr", ":8080"))
//
// The attr helpers (Error, Component, RequestID, TypeID, ...) keep attribute
// keys consistent across the module.
package logger
