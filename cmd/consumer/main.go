package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/warehouse/cmd/config"
	"github.com/muhammadheryan/warehouse/thirdparty/rabbitmq"
	"github.com/muhammadheryan/warehouse/utils/logger"
	"go.uber.org/zap"
)

// Reassignment request consumer: drains the RabbitMQ command queue into the internal HTTP API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, "consumer"); err != nil {
		panic(err)
	}
	defer logger.Close()

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Server.BaseURL,
		cfg.Auth.InternalAPIKey,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer consumer.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Reassignment consumer running", zap.String("api", cfg.Server.BaseURL))

	<-ctx.Done()
	logger.Info("Reassignment consumer stopped")
}
