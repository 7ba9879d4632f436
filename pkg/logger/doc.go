// Package logger builds log/slog loggers with environment presets and
// context-derived attributes.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "intake"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "record stored",
//		logger.Model("Lead"),
//		logger.Collection("lead"),
//		logger.RecordID(id),
//	)
//
// Attribute helpers keep key names consistent across packages. Error returns
// an empty attribute for nil errors, which slog drops.
package logger
