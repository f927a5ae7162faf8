package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/go-tasks"
)

func main() {
	logger := tasks.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg := tasks.ConfigFromEnv()

	accounts := tasks.NewAccountStore(cfg.UsersFile).WithLogger(logger)
	store := tasks.NewTaskStore(cfg.TasksFile).WithLogger(logger)

	tokens := tasks.NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		logger,
	)

	auther := tasks.NewAuthenticator(accounts, tokens).WithLogger(logger)

	srv := tasks.NewServer(cfg, auther, store, logger)

	go func() {
		logger.Info("server listening", "addr", cfg.ListenAddr)
		if err := srv.Listen(); err != nil {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	WaitExitSignal()

	if err := srv.Shutdown(); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
