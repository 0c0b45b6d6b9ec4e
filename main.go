package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Danokhov/pro-mnemo-app/internal/bot"
	"github.com/Danokhov/pro-mnemo-app/internal/database"
	"github.com/Danokhov/pro-mnemo-app/internal/review"
	"github.com/Danokhov/pro-mnemo-app/internal/scheduler"
	"github.com/Danokhov/pro-mnemo-app/internal/vocab"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments use environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Local store: always present, takes every write
	localDB, err := database.ConnectLocal(os.Getenv("DATA_DIR"))
	if err != nil {
		log.Fatalf("Failed to connect to local database: %v", err)
	}
	defer localDB.Close()

	localItems := database.NewStudyItemRepository(localDB)

	// Remote store: optional mirror, best-effort
	var remoteItems database.ItemStore
	if url := os.Getenv("REMOTE_DATABASE_URL"); url != "" {
		remoteDB, err := database.ConnectRemote(url)
		if err != nil {
			log.Printf("Remote store unavailable, running local-only: %v", err)
		} else {
			defer remoteDB.Close()
			remoteItems = database.NewStudyItemRepository(remoteDB)
		}
	}

	wordRepo := database.NewWordRepository(localDB)
	topicRepo := database.NewTopicRepository(localDB)
	userRepo := database.NewUserRepository(localDB)
	catalog := vocab.NewCatalog(wordRepo)

	if err := prepareCatalog(ctx, wordRepo, topicRepo); err != nil {
		log.Fatalf("Failed to prepare vocabulary catalog: %v", err)
	}

	store := database.NewDualStore(localItems, remoteItems)
	reviews := review.New(store, catalog)

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN environment variable is not set")
	}
	b, err := bot.New(token, reviews, catalog, userRepo)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	reminders := scheduler.New(reviews, userRepo, b)
	reminders.Start()
	defer reminders.Stop()

	done := make(chan struct{})
	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		cancel()
		b.Stop()
		close(done)
	}()

	log.Println("Bot started. Press Ctrl+C to stop.")
	go func() {
		if err := b.Start(ctx); err != nil && err != context.Canceled {
			log.Printf("Bot error: %v", err)
		}
	}()

	<-done
	log.Println("Bot stopped successfully")
}

// prepareCatalog seeds the vocabulary catalog on first start and runs a
// one-off import when an import file is configured
func prepareCatalog(ctx context.Context, words *database.WordRepository, topics *database.TopicRepository) error {
	if path := os.Getenv("CATALOG_IMPORT_FILE"); path != "" {
		config := vocab.DefaultImportConfig()
		config.FilePath = path
		start := time.Now()
		result, err := vocab.ImportCatalog(ctx, config, words, topics)
		if err != nil {
			return err
		}
		log.Printf("Catalog import: %d rows processed, %d imported, %d skipped in %s",
			result.TotalProcessed, result.Imported, result.Skipped, time.Since(start))
		for _, e := range result.Errors {
			log.Printf("Catalog import: %s", e)
		}
		return nil
	}

	count, err := words.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	path := os.Getenv("CATALOG_JSON_FILE")
	if path == "" {
		log.Println("Catalog is empty and no CATALOG_JSON_FILE is set; only free-form words can be studied")
		return nil
	}
	loaded, err := vocab.SeedFromJSON(ctx, path, words, topics)
	if err != nil {
		return err
	}
	log.Printf("Seeded vocabulary catalog with %d entries", loaded)
	return nil
}
