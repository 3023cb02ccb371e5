package main

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/pkg/storage"
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
		log.Fatal("cant migrate db: ", err)
	}
	log.WithField("driver", backend.Driver()).Info("schema up to date")
}
