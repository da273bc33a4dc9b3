package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/dvargas92/fotoapp/internal/server"
	"github.com/dvargas92/fotoapp/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
