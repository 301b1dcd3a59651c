package bootstrap

import (
	"context"
	"log/slog"
)

// GracefulShutdown stops the app in dependency order:
// 1. HTTP server (stop accepting new requests; this also stops the SSE hub)
// 2. Sessions (final save of every live player)
// 3. Storage backend
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, app *App) {
	slog.Info(LogMsgShuttingDownServer)
	if err := app.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgSavingSessions, "count", app.Sessions.Len())
	if err := app.Sessions.Shutdown(ctx); err != nil {
		slog.Error(LogMsgSessionShutdownError, "error", err)
	}

	slog.Info(LogMsgClosingBackend)
	app.Backend.Close()

	slog.Info(LogMsgServerStopped)
}
