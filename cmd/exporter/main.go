package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"locations/internal/csvfile"
	"locations/internal/env"
	"locations/internal/storage"
	"locations/pkg/goeuro"
	"locations/pkg/graceful"
	"locations/pkg/kafkaclient"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("You need to supply the name of the location in the form \"LOCATION_NAME\", e.g. \"BERLIN\"")
		return
	}
	cityName := os.Args[1]

	env.LoadEnv()
	endpoint := env.GetEnvDefault("GOEURO_ENDPOINT", goeuro.DefaultEndpoint)
	csvPath := env.GetEnvDefault("LOCATIONS_CSV_PATH", csvfile.DefaultPath)

	ctx, cancel := graceful.Context(context.Background())
	defer cancel()

	start := time.Now()
	fmt.Printf("Fetching location suggestions for %q...\n", cityName)

	service := goeuro.NewLocationService(goeuro.NewClient(endpoint))
	locations, rawBody, err := service.FetchLocations(ctx, cityName)
	if err != nil {
		fail(err)
	}

	writer := csvfile.NewWriter(csvPath, csvfile.StdinConfirmer{In: os.Stdin})
	if err := writer.Write(locations); err != nil {
		fail(err)
	}

	elapsed := time.Since(start)
	fmt.Printf("Wrote %d locations to %s, took %s\n", len(locations), csvPath, elapsed)

	archived := archiveRun(ctx, cityName, rawBody, csvPath)
	publishExport(ctx, kafkaclient.ExportEvent{
		City:     cityName,
		Count:    len(locations),
		Path:     csvPath,
		Archived: archived,
	})
}

// archiveRun uploads the raw response and the CSV to S3-compatible storage
// when the MINIO_* environment is configured. The CSV on disk is the primary
// contract, so archive failures are logged but never fatal.
func archiveRun(ctx context.Context, cityName string, rawBody []byte, csvPath string) bool {
	if !storage.Configured() {
		log.Println("S3 archive not configured, skipping.")
		return false
	}

	s3Service, err := storage.NewS3Service()
	if err != nil {
		log.Printf("Skipping archive: %v", err)
		return false
	}
	bucketName := env.GetEnvDefault("LOCATIONS_BUCKET_NAME", "locations")
	if _, err := s3Service.CreateBucket(ctx, bucketName, ""); err != nil {
		log.Printf("Skipping archive: %v", err)
		return false
	}
	if err := s3Service.ArchiveRun(ctx, bucketName, cityName, rawBody, csvPath); err != nil {
		log.Printf("Archive failed: %v", err)
		return false
	}
	return true
}

// publishExport emits one export event when KAFKA_BROKER and KAFKA_TOPIC are
// set. Like the archive, it is best effort.
func publishExport(ctx context.Context, event kafkaclient.ExportEvent) {
	broker := os.Getenv("KAFKA_BROKER")
	topic := os.Getenv("KAFKA_TOPIC")
	if broker == "" || topic == "" {
		log.Println("Kafka export events not configured, skipping.")
		return
	}

	publisher := kafkaclient.NewPublisher(broker, topic)
	defer publisher.Close()
	if err := publisher.PublishExport(ctx, event); err != nil {
		log.Printf("Failed to publish export event: %v", err)
	}
}

// fail prints a message identifying the error kind and terminates. Nothing is
// retried; FileExists is the expected outcome of a declined prompt, not a crash.
func fail(err error) {
	switch {
	case errors.Is(err, goeuro.ErrMalformedURL):
		fmt.Fprintf(os.Stderr, "Invalid API URL: %v\n", err)
	case errors.Is(err, goeuro.ErrParse):
		fmt.Fprintf(os.Stderr, "Unexpected API response: %v\n", err)
	case errors.Is(err, csvfile.ErrFileExists):
		fmt.Fprintf(os.Stderr, "Nothing written: %v\n", err)
	default:
		fmt.Fprintf(os.Stderr, "I/O failure: %v\n", err)
	}
	os.Exit(1)
}
