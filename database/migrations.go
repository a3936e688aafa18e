package database

import (
	"log"

	"gratuity/models"

	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Page{},
		&models.BlogPost{},
		&models.Location{},
		&models.MenuConfig{},
		&models.Widget{},
		&models.SiteSettings{},
	)

	if err != nil {
		log.Printf("Error running migrations: %v", err)
		return err
	}

	log.Println("Migrations completed successfully")
	return nil
}
