package main

import (
	"net/http"
	"os"
	"time"

	"todoterm/internal/config"
	"todoterm/internal/logging"
	"todoterm/internal/server"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := logging.NewConsoleLogger(cfg.LogLevel)

	srv := server.New(cfg.JWTSecret, time.Duration(cfg.TokenTTLMin)*time.Minute, logger)
	logger.Info().Str("addr", cfg.Addr).Msg("todoserver listening")
	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
