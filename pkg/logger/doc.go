// Package logger standardises structured logging for the workflow library
// around Go's log/slog.
//
// A single factory, New, creates a *slog.Logger configured by functional
// options: output format (text or json), minimum level, static attributes,
// and per-environment presets. Attribute constructors keep key naming
// consistent across packages:
//
//	log := logger.New(logger.WithDevelopment("workflow"))
//	log.Info("workflow action executed",
//	    logger.DocumentType("invoice"),
//	    logger.DocumentID(17),
//	    logger.WorkflowAction("record_payment"),
//	    logger.FromStatus("sent"),
//	    logger.ToStatus("partial"),
//	)
//
// NewFromEnv builds the same logger from LOG_* environment variables via
// pkg/config, so a host application configures logging without code changes.
//
// The Error helper produces an attribute only for non-nil errors, allowing
// unconditional calls like log.Info("done", logger.Error(err)).
package logger
