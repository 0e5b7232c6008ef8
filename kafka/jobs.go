package kafka

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ytscribe/pipeline"
	"ytscribe/results"
	"ytscribe/types"
)

// NewJobConsumer consumes job envelopes and runs each through the pipeline.
// A failed job still produces a result envelope, so messages are marked
// either way; only transport-level errors trigger redelivery.
func NewJobConsumer(brokers []string, topic, groupID string, h *pipeline.Handler, store *results.Store) (*Consumer, error) {
	handler := &TypedMessageHandler[types.JobEnvelope]{
		Validate: func(msg *types.JobEnvelope) bool {
			if msg.Input.YouTubeURL == "" {
				log.Printf("Skipping job without youtube_url")
				return false
			}
			return true
		},
		Process: func(ctx context.Context, msg *types.JobEnvelope) error {
			result := h.Run(ctx, msg.Input)
			if store != nil {
				if err := store.Save(ctx, result); err != nil {
					log.Printf("result store save: %v", err)
				}
			}
			if result.Status == types.StatusError {
				log.Printf("Job %s failed: %s", result.RequestID, result.Error)
				return nil
			}
			log.Printf("Job %s done: %s", result.RequestID, result.SRTPath)
			return nil
		},
		AlwaysMark: true,
	}

	return NewConsumer(ConsumerConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: groupID,
		Handler: handler,
	})
}

// StartConsumerWithGracefulShutdown runs the consumer until SIGINT/SIGTERM,
// then drains and closes it.
func StartConsumerWithGracefulShutdown(consumer *Consumer) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		return err
	}

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigterm:
		log.Println("Received termination signal")
	case <-ctx.Done():
		log.Println("Context canceled")
	}

	cancel()

	// Give in-flight processing a moment to finish before closing.
	time.Sleep(2 * time.Second)

	return consumer.Close()
}
