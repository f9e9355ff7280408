package main

import (
	"context"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"dispatch-desk/internal/adapters/reporting"
	"dispatch-desk/internal/adapters/tablestore"
	"dispatch-desk/internal/config"
	"dispatch-desk/internal/domain"
	"dispatch-desk/internal/platform/db"
)

// dbtool exports the flat table files into a SQL database for ad-hoc
// reporting: postgres when DATABASE_URL is set, a local sqlite file
// otherwise. Each run replaces the prior snapshot.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := "sqlite"
	dsn := config.Get("SQLITE_PATH", "data/report.db")
	if u := strings.TrimSpace(os.Getenv("DATABASE_URL")); u != "" {
		driver = "pgx"
		dsn = u
	}

	conn, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	dataDir := config.Get("DATA_DIR", "data")
	store := tablestore.NewCSVStore(dataDir)

	exporter := reporting.NewExporter(conn, driver)

	log.Println("Initializing reporting schema...")
	if err := exporter.InitSchema(); err != nil {
		log.Fatal(err)
	}
	log.Println("Schema ready.")

	ctx := context.Background()
	for _, id := range domain.AllTables {
		t, err := store.Load(ctx, id)
		if err != nil {
			log.Fatal(err)
		}
		if err := exporter.Export(id, t); err != nil {
			log.Fatal(err)
		}
		log.Printf("Exported table=%s rows=%d", id, t.Len())
	}
	log.Println("Export complete.")
}
