// Package logging builds the application's slog loggers and carries them through
// request contexts.
//
// Loggers produced by New redact subscriber email addresses and bearer credentials
// from every string attribute before it is written.
//
//	logger := logging.New(os.Stdout, cfg.LogLevel)
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
