package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"safe-route-service/internal/adapters/cache"
	"safe-route-service/internal/adapters/directions"
	"safe-route-service/internal/adapters/notify"
	"safe-route-service/internal/adapters/repositories"
	"safe-route-service/internal/api"
	"safe-route-service/internal/config"
	"safe-route-service/internal/platform/db"
	"safe-route-service/internal/ports"
	"safe-route-service/internal/routing"
	"safe-route-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (SQLite/Postgres, Redis, ORS, webhook)
// behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/zones.json")
	databaseURL := os.Getenv("DATABASE_URL")
	redisAddr := os.Getenv("REDIS_ADDR")
	webhookURL := os.Getenv("ALERT_WEBHOOK_URL")

	orsKey := os.Getenv("ORS_API_KEY")
	if strings.TrimSpace(orsKey) == "" {
		log.Fatal("ORS_API_KEY is required")
	}

	// Zone store: Postgres when DATABASE_URL is set, local SQLite
	// otherwise. The SQLite path also owns the geocode cache table and
	// gets schema+seed on startup for local runs.
	var store ports.ZoneStore
	var geocodeCache ports.GeocodeCache

	if strings.TrimSpace(databaseURL) != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		store = repositories.NewSQLZoneStore(pg)
	} else {
		lite, err := openDB(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer lite.Close()

		if err := initAndSeed(lite, seedPath); err != nil {
			log.Fatal(err)
		}
		store = repositories.NewSqliteZoneStore(lite)
		geocodeCache = cache.NewSqliteGeocodeCache(lite)
	}

	// Redis takes over the geocode cache when configured.
	if strings.TrimSpace(redisAddr) != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		defer client.Close()
		geocodeCache = cache.NewRedisGeocodeCache(client)
	}

	ors, err := directions.NewORSClient(orsKey, geocodeCache)
	if err != nil {
		log.Fatal(err)
	}

	var dispatcher ports.AlertDispatcher
	if strings.TrimSpace(webhookURL) != "" {
		dispatcher, err = notify.NewWebhookDispatcher(webhookURL)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		log.Println("ALERT_WEBHOOK_URL not set, SOS alerts will only be logged")
		dispatcher = notify.NewLogDispatcher()
	}

	planner := routing.NewPlanner(ors, routing.DefaultConfig())
	trips := services.NewTripManager()
	router := api.NewRouter(store, planner, ors, dispatcher, trips)

	// Timeouts are tuned for cold-cache route planning (external API latency).
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if _, err := os.Stat(seedPath); os.IsNotExist(err) {
		log.Printf("seed file %q not found, starting with an empty zone table", seedPath)
		return nil
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
