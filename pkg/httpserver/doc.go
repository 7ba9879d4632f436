// Package httpserver runs an HTTP handler with configured timeouts and
// graceful shutdown, and provides liveness/readiness check handlers.
//
//	srv := httpserver.New(cfg, log)
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
