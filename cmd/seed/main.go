package main

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/storage"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/seed"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/taxonomy"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	backend, err := storage.Open(ctx, cfg.Storage)
	if err != nil {
		log.Fatal("failed to connect database: ", err)
	}
	defer backend.Close(ctx)

	if err := backend.Migrate(ctx); err != nil {
		log.Fatal(err)
	}

	report, err := seed.NewLoader(backend.Store, taxonomy.Data).Load(ctx)
	fmt.Printf("Categories:        %d\n", report.Categories)
	fmt.Printf("Symptoms:          %d\n", report.Symptoms)
	fmt.Printf("Causes:            %d\n", report.Causes)
	fmt.Printf("Actions:           %d\n", report.Actions)
	fmt.Printf("Detection methods: %d\n", report.DetectionMethods)
	if err != nil {
		log.Fatal("seeding finished with errors: ", err)
	}
	fmt.Println("\nData seeded successfully!")
}
