package menus

import (
	"errors"
	"fmt"
	"sort"

	"gratuity/models"

	"gorm.io/gorm"
)

// ErrNotFound means no active menu targets the requested slot.
var ErrNotFound = errors.New("menu not found")

type MenuModule struct {
	db *gorm.DB
}

func NewMenuModule(db *gorm.DB) *MenuModule {
	return &MenuModule{db: db}
}

// ActiveMenuByLocation returns the active menu for a slot. When several
// menus are active for the same slot the first match wins; the admin
// deactivates siblings on activation, so duplicates only appear through
// direct data edits.
func (m *MenuModule) ActiveMenuByLocation(location string) (*models.MenuConfig, error) {
	var menu models.MenuConfig
	err := m.db.Where("location = ? AND is_active = ?", location, true).First(&menu).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("menus: loading menu for %s: %w", location, err)
	}
	return &menu, nil
}

// ActiveWidgets returns active widgets in ascending order. The sort is
// stable; tie order between equal orders is implementation-defined.
func (m *MenuModule) ActiveWidgets() ([]models.Widget, error) {
	var widgets []models.Widget
	if err := m.db.Where("is_active = ?", true).Find(&widgets).Error; err != nil {
		return nil, fmt.Errorf("menus: loading widgets: %w", err)
	}
	sort.SliceStable(widgets, func(i, j int) bool {
		return widgets[i].Order < widgets[j].Order
	})
	return widgets, nil
}

// FlattenURLs walks a menu item tree depth-first and collects every URL.
// Used by the sitemap to pick up menu-only routes.
func FlattenURLs(items []models.MenuItem) []string {
	var urls []string
	for _, item := range items {
		if item.URL != "" {
			urls = append(urls, item.URL)
		}
		urls = append(urls, FlattenURLs(item.Children)...)
	}
	return urls
}
