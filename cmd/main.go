package main

import (
	"log"

	"habit-reminder/internal/app"

	// Zone rules ship with the binary so every host resolves zones identically
	_ "time/tzdata"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}
