package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"dronemeds/config"
	"dronemeds/dispatch-svc/internal/service"
	"dronemeds/dispatch-svc/internal/storage"
)

func main() {
	logger := config.InitLogger("dispatch-svc")
	settings := config.Load()

	if !settings.KafkaEnabled() || !settings.RedisEnabled() {
		logger.Fatal("KAFKA_BROKER and REDIS_HOST must be set")
	}

	rdb := config.MustInitRedis(settings)
	defer rdb.Close()

	store := storage.NewStore(nil, rdb)
	if settings.PostgresEnabled() {
		db := config.MustInitPostgres(settings)
		defer db.Close()
		store = storage.NewStore(db, rdb)
	}

	reader := config.NewKafkaReader(settings, "dispatch-svc-consumer")
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service.NewConsumer(reader, store).Start(ctx)
}
