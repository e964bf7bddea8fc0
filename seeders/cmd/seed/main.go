package main

import (
	"context"
	"flag"
	"log"

	"inventory-system/pkg/config"
	"inventory-system/pkg/database/postgresql"
	"inventory-system/seeders"
)

func main() {
	runDictionaries := flag.Bool("dictionaries", false, "seed the lookup tables (categories)")
	runAdmin := flag.Bool("admin", false, "create the initial administrator account")
	runDemo := flag.Bool("demo", false, "create a demo company with a record table and sample data")
	runAll := flag.Bool("all", false, "run every seeder (equivalent to -dictionaries -admin -demo)")

	flag.Parse()

	if !*runDictionaries && !*runAdmin && !*runDemo && !*runAll {
		log.Println("no seeder selected.")
		log.Println("")
		log.Println("available flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("examples:")
		log.Println("  go run ./seeders/cmd/seed -dictionaries -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	cfg := config.New()
	dbPool, err := postgresql.ConnectDB(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runDictionaries {
		seeders.SeedDictionaries(dbPool)
	}
	if *runAll || *runAdmin {
		seeders.SeedAdmin(dbPool)
	}
	if *runAll || *runDemo {
		seeders.SeedDemoTenant(dbPool)
	}

	log.Println("seeding finished.")
}
