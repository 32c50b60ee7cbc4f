package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"go-venusa-api/internal/messaging/kafka/producer"
	"go-venusa-api/internal/outbox"
)

func RunWorker() error {
	log.Println("[WORKER] Starting outbox processor...")

	db, err := connectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Println("[WORKER] Database connected")

	kafkaWriter, err := connectKafkaWithRetry(os.Getenv("KAFKA_BROKER"), 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()
	log.Println("[WORKER] Kafka writer initialized")

	outboxRepo := outbox.NewRepository(db)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[WORKER] Shutting down...")
	cancel()
	time.Sleep(1 * time.Second)
	log.Println("[WORKER] Stopped")

	return nil
}
