package main

import (
	"log"
	"net/http"

	"github.com/minaorangina/tock/config"
	"github.com/minaorangina/tock/server"
	"github.com/minaorangina/tock/store"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	s := server.NewServer(store.NewInMemoryGameStore(), logger,
		server.WithLimits(cfg.MaxSteps, cfg.MaxIdleRounds))
	s.Addr = cfg.Addr()
	s.Handler = server.WithMiddleware(s.Handler, logger)

	logger.Info("listening", zap.String("addr", s.Addr))
	if err := s.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
