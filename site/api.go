package site

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"gratuity/cache"
	"gratuity/menus"
)

// apiMenus serves the active menu config for a slot as JSON.
func (s *SiteModule) apiMenus(c *gin.Context) {
	location := c.Query("location")
	if location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location parameter is required"})
		return
	}

	menu, err := s.menus.ActiveMenuByLocation(location)
	if err != nil {
		if errors.Is(err, menus.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no active menu for location"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load menu"})
		return
	}

	c.JSON(http.StatusOK, menu)
}

// apiRevalidate purges the cached render of one path. Guarded by a shared
// secret so crawlers can't thrash the cache.
func (s *SiteModule) apiRevalidate(c *gin.Context) {
	secret := os.Getenv("REVALIDATE_SECRET")
	if secret == "" || c.Query("secret") != secret {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret"})
		return
	}

	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path parameter is required"})
		return
	}

	if err := cache.ClearCache(path); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revalidate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revalidated": true,
		"now":         time.Now().UnixMilli(),
	})
}

// apiRates serves the cached AED exchange rate table.
func (s *SiteModule) apiRates(c *gin.Context) {
	c.JSON(http.StatusOK, s.rates.Get())
}
