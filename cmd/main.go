package main

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/deepgram/voicerelay/internal/api/handlers"
	"github.com/deepgram/voicerelay/internal/config"
	"github.com/deepgram/voicerelay/internal/metrics"
	"github.com/deepgram/voicerelay/internal/services"
	"github.com/deepgram/voicerelay/pkg/logger"
)

func main() {
	logger.Setup("info", "console", os.Stderr)

	cfg, err := bootstrap(".env", os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, nil); err != nil {
		log.Fatal().Err(err).Msg("Voice relay stopped")
	}
}

// bootstrap reads dotenvPath into the environment, loads the configuration and
// reconfigures logging from it.
func bootstrap(dotenvPath string, out io.Writer) (*config.Config, error) {
	if err := config.LoadDotEnv(dotenvPath); err != nil {
		logger.Warn(logger.APP, "Ignoring unreadable .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger.Setup(cfg.LogLevel, cfg.LogFormat, out)
	logger.Debug(logger.APP, "Logging configured at level %s", cfg.LogLevel)
	return cfg, nil
}

// run serves until ctx is cancelled. The listening address is sent on ready
// once the socket is open.
func run(ctx context.Context, cfg *config.Config, ready chan<- string) error {
	svcs, err := services.InitializeServices(cfg, metrics.NewCollector("voicerelay"))
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:           setupRouter(svcs),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Groq.Timeout + cfg.Murf.Timeout + 30*time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(listener)
	}()

	logger.Info(logger.APP, "Server starting on %s", listener.Addr().String())
	if ready != nil {
		ready <- listener.Addr().String()
	}

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(logger.APP, "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info(logger.APP, "Server stopped")
	return nil
}

func setupRouter(svcs *services.Services) http.Handler {
	return handlers.NewHandler(svcs, log.Logger)
}
