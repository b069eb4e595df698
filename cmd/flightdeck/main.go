package main

import (
	"log"

	"github.com/skyfold/flightdeck/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("flightdeck failed to start: %v", err)
	}
}
