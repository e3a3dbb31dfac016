package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"safe-route-service/internal/adapters/repositories"
	"safe-route-service/internal/config"
	"safe-route-service/internal/domain"
	"safe-route-service/internal/platform/db"
	"safe-route-service/internal/ports"
)

// dbtool initializes the schema and seeds the zone table, or records a
// single incident report from the command line:
//
//	dbtool seed
//	dbtool report <area> <low|medium|high> [street]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	conn, store := openStore()
	defer conn.Close()

	cmd := "seed"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "seed":
		seedPath := config.Get("SEED_PATH", "data/seeds/zones.json")
		if err := initAndSeed(conn, seedPath); err != nil {
			log.Fatal(err)
		}
	case "report":
		if len(os.Args) < 4 {
			log.Fatal("usage: dbtool report <area> <low|medium|high> [street]")
		}
		area, severity := os.Args[2], domain.Severity(strings.ToLower(os.Args[3]))
		street := ""
		if len(os.Args) > 4 {
			street = os.Args[4]
		}
		if !severity.Valid() {
			log.Fatalf("unknown severity %q", os.Args[3])
		}
		if err := store.RecordReport(context.Background(), area, street, severity); err != nil {
			log.Fatalf("record report failed: %v", err)
		}
		log.Printf("Report recorded area=%q severity=%s", area, severity)
	default:
		log.Fatalf("unknown command %q (want seed or report)", cmd)
	}
}

// openStore prefers Postgres when DATABASE_URL is set and falls back to
// the local SQLite file.
func openStore() (*sql.DB, ports.ZoneStore) {
	if databaseURL := os.Getenv("DATABASE_URL"); strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		return conn, repositories.NewSQLZoneStore(conn)
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		log.Fatalf("open sqlite database %q: %v", dbPath, err)
	}
	if err := conn.Ping(); err != nil {
		log.Fatalf("verify sqlite connection to %q: %v", dbPath, err)
	}
	return conn, repositories.NewSqliteZoneStore(conn)
}

func initAndSeed(conn *sql.DB, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding database...")
	if err := repositories.SeedFromJSON(conn, seedPath); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
