// file: internals/seeds/users/seed_users.go
package user

import (
	"encoding/json"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studenthub_backend/internals/features/users/users/model"
)

type UserSeed struct {
	UserName string  `json:"user_name"`
	Email    string  `json:"email"`
	FullName *string `json:"full_name"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

func SeedUsersFromJSON(db *gorm.DB, filePath string) {
	log.Println("📥 Reading user seed file:", filePath)

	file, err := os.ReadFile(filePath)
	if err != nil {
		log.Fatalf("❌ Failed to read JSON file: %v", err)
	}

	var inputs []UserSeed
	if err := json.Unmarshal(file, &inputs); err != nil {
		log.Fatalf("❌ Failed to decode JSON: %v", err)
	}

	for _, data := range inputs {
		var existing model.UserModel
		if err := db.Where("user_email = ?", data.Email).First(&existing).Error; err == nil {
			log.Printf("ℹ️ User with email '%s' already exists, skipped.", data.Email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("❌ Failed to hash password for '%s': %v", data.Email, err)
			continue
		}

		newUser := model.UserModel{
			UserName:         data.UserName,
			UserEmail:        data.Email,
			UserFullName:     data.FullName,
			UserPasswordHash: string(hash),
			UserRole:         data.Role,
			UserIsActive:     true,
		}
		if err := db.Create(&newUser).Error; err != nil {
			log.Printf("❌ Failed to insert user '%s': %v", data.Email, err)
			continue
		}
		log.Printf("✅ User '%s' (%s) inserted.", data.UserName, data.Role)
	}
}
