package main

import (
	"log"

	"github.com/joho/godotenv"

	"go-venusa-api/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.RunConsumer(); err != nil {
		log.Fatal(err)
	}
}
