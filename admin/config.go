package admin

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gratuity/cache"
	"gratuity/models"
)

// ----- menus -----

func (a *AdminModule) listMenus(c *gin.Context) {
	var menus []models.MenuConfig
	if err := a.db.Order("location ASC, updated_at DESC").Find(&menus).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to load menus",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_menus.html", gin.H{
		"menus":     menus,
		"locations": models.ValidMenuLocations,
	})
}

type menuPayload struct {
	ID       uint              `json:"id"`
	Name     string            `json:"name"`
	Location string            `json:"location"`
	Items    []models.MenuItem `json:"items"`
	IsActive bool              `json:"isActive"`
}

// saveMenu creates or updates a menu from a JSON body. Activating a menu
// deactivates every other menu in the same slot so each slot has at most
// one active menu.
func (a *AdminModule) saveMenu(c *gin.Context) {
	var payload menuPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu payload"})
		return
	}

	if !models.IsValidMenuLocation(payload.Location) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown menu location"})
		return
	}

	menu := models.MenuConfig{
		ID:        payload.ID,
		Name:      payload.Name,
		Location:  payload.Location,
		Items:     payload.Items,
		IsActive:  payload.IsActive,
		UpdatedAt: time.Now(),
	}

	if err := a.db.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menu"})
		return
	}

	if menu.IsActive {
		if err := a.deactivateSiblings(menu); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slot"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

func (a *AdminModule) deactivateSiblings(menu models.MenuConfig) error {
	return a.db.Model(&models.MenuConfig{}).
		Where("location = ? AND id != ?", menu.Location, menu.ID).
		Update("is_active", false).Error
}

func (a *AdminModule) activateMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var menu models.MenuConfig
	if err := a.db.First(&menu, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	menu.IsActive = true
	menu.UpdatedAt = time.Now()
	if err := a.db.Save(&menu).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to activate menu"})
		return
	}

	if err := a.deactivateSiblings(menu); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

func (a *AdminModule) deleteMenu(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := a.db.Delete(&models.MenuConfig{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu deleted"})
}

// ----- widgets -----

func (a *AdminModule) listWidgets(c *gin.Context) {
	var widgets []models.Widget
	if err := a.db.Order("sort_order ASC").Find(&widgets).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to load widgets",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_widgets.html", gin.H{"widgets": widgets})
}

type widgetPayload struct {
	ID       uint           `json:"id"`
	Type     string         `json:"type"`
	Title    string         `json:"title"`
	Config   map[string]any `json:"config"`
	Order    int            `json:"order"`
	IsActive bool           `json:"isActive"`
}

func (a *AdminModule) saveWidget(c *gin.Context) {
	var payload widgetPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid widget payload"})
		return
	}

	widget := models.Widget{
		ID:       payload.ID,
		Type:     payload.Type,
		Title:    payload.Title,
		Config:   payload.Config,
		Order:    payload.Order,
		IsActive: payload.IsActive,
	}

	if err := a.db.Save(&widget).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save widget"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"widget": widget})
}

// reorderWidgets takes an ordered list of widget IDs and rewrites their
// sort positions to match.
func (a *AdminModule) reorderWidgets(c *gin.Context) {
	var payload struct {
		IDs []uint `json:"ids"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reorder payload"})
		return
	}

	for position, id := range payload.IDs {
		if err := a.db.Model(&models.Widget{}).
			Where("id = ?", id).
			Update("sort_order", position).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder widgets"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Widgets reordered"})
}

func (a *AdminModule) deleteWidget(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := a.db.Delete(&models.Widget{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete widget"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Widget not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Widget deleted"})
}

// ----- site settings -----

func (a *AdminModule) settingsPage(c *gin.Context) {
	var settings models.SiteSettings
	a.db.First(&settings)

	c.HTML(http.StatusOK, "admin_settings.html", gin.H{"settings": settings})
}

func (a *AdminModule) updateSettings(c *gin.Context) {
	var settings models.SiteSettings
	a.db.First(&settings)

	settings.SiteName = c.PostForm("siteName")
	settings.Tagline = c.PostForm("tagline")
	settings.BaseURL = c.PostForm("baseUrl")
	settings.DefaultOGImage = c.PostForm("defaultOgImage")
	settings.ContactEmail = c.PostForm("contactEmail")

	if err := a.db.Save(&settings).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to save settings",
		})
		return
	}

	// settings affect every rendered page
	if err := cache.ClearAll(); err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Settings saved but cache purge failed",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/settings")
}
