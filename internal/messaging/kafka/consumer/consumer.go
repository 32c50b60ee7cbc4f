package consumer

import (
	"context"
	"log"

	"github.com/segmentio/kafka-go"

	"go-venusa-api/internal/email"
	"go-venusa-api/internal/outbox"
)

func ConsumeMessages(ctx context.Context, reader *kafka.Reader, emailSvc email.Service) {
	log.Println("[CONSUMER] Started consuming messages")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[CONSUMER] Error fetching message: %v", err)
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		if eventType == outbox.EventOrderPaid {
			if err := handleOrderPaid(ctx, msg.Value, emailSvc); err != nil {
				log.Printf("[CONSUMER] Error handling ORDER_PAID: %v", err)
			} else {
				if err := reader.CommitMessages(ctx, msg); err != nil {
					log.Printf("[CONSUMER] Error committing message: %v", err)
				}
			}
		} else {
			// Skip unknown event types
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
