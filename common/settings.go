package common

import (
	"log"
	"os"

	"gratuity/models"

	"gorm.io/gorm"
)

// DefaultSettings are used whenever the settings row is missing or the
// store is unreachable, so pages always render.
func DefaultSettings() models.SiteSettings {
	baseURL := os.Getenv("DOMAIN")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return models.SiteSettings{
		SiteName:       "Gratuity Calculator UAE",
		Tagline:        "End of service gratuity, calculated right",
		BaseURL:        baseURL,
		DefaultOGImage: "/public/img/og-default.png",
	}
}

// LoadSettings returns the singleton settings row, falling back to
// DefaultSettings on absence or store failure.
func LoadSettings(db *gorm.DB) models.SiteSettings {
	var settings models.SiteSettings
	if err := db.First(&settings).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Error loading site settings: %v", err)
		}
		return DefaultSettings()
	}
	if settings.BaseURL == "" {
		settings.BaseURL = DefaultSettings().BaseURL
	}
	return settings
}
