package main

import (
	"log"

	"chat-space-be/internal/config"
	"chat-space-be/internal/model"
	"chat-space-be/pkg/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	log.Println("Running migrations...")
	err = db.AutoMigrate(
		&model.Profile{},
		&model.Chat{},
		&model.ChatParticipant{},
		&model.Message{},
	)
	if err != nil {
		log.Panicf("Migration failed: %v", err)
	}
	log.Println("Migrations applied")
}
