package main

import (
	"log"

	"github.com/joho/godotenv"

	"podium/internal/app"
)

// @title           Podium Speakers API
// @version         1.0
// @description     Speaker-bureau back office: bookings, deals, projects and financial sync.
// @BasePath        /
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	app.Run()
}
