package main

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"ytscribe/acquire"
	"ytscribe/api"
	"ytscribe/config"
	"ytscribe/kafka"
	"ytscribe/pipeline"
	"ytscribe/results"
	"ytscribe/transcribe"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	models := transcribe.NewModelCache(nil)
	transcriber := transcribe.NewWhisperCLI(config.WhisperModel(), models)
	handler := pipeline.NewHandler(acquire.New(), transcriber, config.StorageFromEnv())

	store, err := results.NewStoreFromEnv()
	if err != nil {
		log.Printf("Warning: result store disabled: %v", err)
	}

	if strings.EqualFold(os.Getenv("KAFKA_ENABLED"), "true") {
		log.Println("Running in Kafka consumer mode")

		brokers := kafka.BrokersFromEnv()
		topic := kafka.TopicFromEnv()
		groupID := kafka.GroupIDFromEnv()
		log.Printf("Kafka brokers: %v, topic: %s, group: %s", brokers, topic, groupID)

		consumer, err := kafka.NewJobConsumer(brokers, topic, groupID, handler, store)
		if err != nil {
			log.Fatalf("Kafka consumer init failed: %v", err)
		}
		if err := kafka.StartConsumerWithGracefulShutdown(consumer); err != nil {
			log.Fatalf("Kafka consumer failed: %v", err)
		}
		return
	}

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := api.NewRouter(handler, store)
	log.Printf("Starting transcription worker on %s", addr)
	log.Println("Endpoints available:")
	log.Println("  GET  /health")
	log.Println("  POST /api/jobs")
	log.Println("  GET  /api/jobs/:request_id")

	if err := r.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
