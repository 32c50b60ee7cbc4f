package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"

	"go-venusa-api/internal/email"
	"go-venusa-api/internal/messaging/kafka/consumer"
)

func RunConsumer() error {
	log.Println("[CONSUMER] Starting order events consumer...")

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		log.Printf("⚠️ Email disabled: %v", err)
		emailService = email.NewNoopService()
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{os.Getenv("KAFKA_BROKER")},
		Topic:   "order.events",
		GroupID: "order-events-consumer-group",
	})
	defer reader.Close()
	log.Println("[CONSUMER] Kafka reader initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, emailService)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[CONSUMER] Shutting down...")
	cancel()
	log.Println("[CONSUMER] Stopped")

	return nil
}
