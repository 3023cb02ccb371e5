package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/vjkarthik1987/aiSupportAgent/internal/app/config"
	"github.com/vjkarthik1987/aiSupportAgent/internal/app/server"
)

func main() {
	log.Println("Application start!")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal(err)
	}

	srv, err := server.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	if err := srv.Run(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("Application terminated!")
}
