// Package logger builds *slog.Logger values for the portal from functional
// options and carries a handful of attribute helpers so form, session and
// submission logs use the same keys.
//
// New picks slog.NewTextHandler or slog.NewJSONHandler and wraps it with a
// LogHandlerDecorator that copies values out of context.Context on every
// record, such as the session ID stored by WithSessionID.
//
//	log := logger.New(
//		logger.WithEnvironment(string(cfg.Env), "formguard"),
//		logger.WithLevel(cfg.LogLevel),
//	)
//	ctx := logger.WithSessionID(ctx, sess.ID())
//	log.InfoContext(ctx, "form submitted", logger.Form("identity"), logger.AckRef(ack.Reference))
//
// Error and Errors drop nil errors so callers need no nil checks.
package logger
