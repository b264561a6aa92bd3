// Command provision prepares a portal database: it creates the schema when
// missing and seeds the shared reference data plus the first admin account.
package main

import (
	"context"
	"log"

	"portal/internal/db"
	"portal/internal/platform/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunSchema {
		if err := db.EnsureSchema(ctx, pool); err != nil {
			log.Fatalf("schema bootstrap failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	log.Printf("portal database ready")
}
