package main

import (
	"log"
	"time"

	"chat-space-be/internal/config"
	"chat-space-be/internal/model"
	"chat-space-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds an admin account and a small demo dataset: two regular users, one
// personal chat between them, and a starter group chat. Re-running is safe,
// existing emails are skipped.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	admin := seedUser(db, "Admin", "admin@chatspace.local", "admin123", "admin")
	alice := seedUser(db, "Alice Carter", "alice@chatspace.local", "password", "user")
	bob := seedUser(db, "Bob Nguyen", "bob@chatspace.local", "password", "user")

	seedChat(db, nil, "personal", []uuid.UUID{alice, bob})

	groupName := "General"
	seedChat(db, &groupName, "group", []uuid.UUID{admin, alice, bob})

	color.Green("✅ Seeding complete")
}

func seedUser(db *gorm.DB, fullName, email, password, role string) uuid.UUID {
	var existing model.Profile
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		color.Yellow("• %s already exists, skipping", email)
		return existing.Id
	}
	if err != gorm.ErrRecordNotFound {
		log.Panicf("Failed to check for %s: %v", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Panicf("Failed to hash password: %v", err)
	}
	hashStr := string(hash)

	profile := model.Profile{
		Id:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: &hashStr,
		Role:         role,
		Status:       "offline",
		LastSeen:     time.Now(),
	}
	if err := db.Create(&profile).Error; err != nil {
		log.Panicf("Failed to create %s: %v", email, err)
	}

	color.Cyan("• created %s (%s)", email, role)
	return profile.Id
}

func seedChat(db *gorm.DB, name *string, chatType string, members []uuid.UUID) {
	chat := model.Chat{
		Id:   uuid.New(),
		Name: name,
		Type: chatType,
	}
	if err := db.Create(&chat).Error; err != nil {
		log.Panicf("Failed to create chat: %v", err)
	}

	for _, member := range members {
		participant := model.ChatParticipant{
			Id:     uuid.New(),
			ChatId: chat.Id,
			UserId: member,
		}
		if err := db.Create(&participant).Error; err != nil {
			log.Panicf("Failed to add participant: %v", err)
		}
	}

	label := chatType
	if name != nil {
		label = *name
	}
	color.Cyan("• created %s chat with %d members", label, len(members))
}
