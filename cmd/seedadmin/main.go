package main

import (
	"log"

	"spectra-api/config"

	"auth"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDatabase()

	if err := auth.EnsureAdmin(config.DB); err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}
}
