package seeders

import (
	"log"

	"alwafi_go/database"
	"alwafi_go/models"
	"alwafi_go/utils"
)

// SeedAll runs all seeders
func SeedAll() {
	log.Println("Starting database seeding...")

	SeedDevAccounts()

	log.Println("Database seeding completed successfully!")
}

// SeedDevAccounts creates the dev superuser and a sample admin if no
// accounts exist yet. Passwords must be rotated after first login.
func SeedDevAccounts() {
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Users already seeded, skipping...")
		return
	}

	accounts := []struct {
		username  string
		password  string
		email     string
		nameAr    string
		role      string
		firstName string
		lastName  string
	}{
		{username: "dev", password: "dev123456", email: "dev@alwafi.local", role: models.RoleDev, firstName: "Dev", lastName: "Superuser"},
		{username: "admin", password: "admin123456", email: "admin@alwafi.local", role: models.RoleAdmin, firstName: "Portal", lastName: "Admin"},
	}

	for _, a := range accounts {
		hashed, err := utils.HashPassword(a.password)
		if err != nil {
			log.Printf("Error hashing password for %s: %v", a.username, err)
			continue
		}

		user := models.User{
			Username:  a.username,
			Password:  hashed,
			Email:     a.email,
			FirstName: a.firstName,
			LastName:  a.lastName,
			Status:    "active",
		}
		if err := user.SetBag(models.AttributeBag{Role: a.role}); err != nil {
			log.Printf("Error encoding attributes for %s: %v", a.username, err)
			continue
		}

		if err := database.DB.Create(&user).Error; err != nil {
			log.Printf("Error seeding user %s: %v", a.username, err)
		}
	}

	log.Println("Dev accounts seeded successfully")
}
