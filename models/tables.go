package models

import (
	"encoding/json"
	"time"
)

// Content status values. Anything that is not "published" is invisible on
// the public site.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// Location types. Non-emirate types require a parent emirate slug.
const (
	LocationEmirate  = "emirate"
	LocationArea     = "area"
	LocationFreeZone = "free-zone"
	LocationLandmark = "landmark"
)

// Menu placement slots.
const (
	MenuLocationHeader        = "header"
	MenuLocationFooterColumn1 = "footer_column_1"
	MenuLocationFooterColumn2 = "footer_column_2"
	MenuLocationFooterColumn3 = "footer_column_3"
	MenuLocationFooterColumn4 = "footer_column_4"
	MenuLocationFooterBottom  = "footer_bottom"
	MenuLocationMobile        = "mobile"
	MenuLocationSidebar       = "sidebar"
)

// ValidMenuLocations contains every slot a menu can target.
var ValidMenuLocations = []string{
	MenuLocationHeader,
	MenuLocationFooterColumn1,
	MenuLocationFooterColumn2,
	MenuLocationFooterColumn3,
	MenuLocationFooterColumn4,
	MenuLocationFooterBottom,
	MenuLocationMobile,
	MenuLocationSidebar,
}

// IsValidMenuLocation checks whether a slot name is one of the fixed slots.
func IsValidMenuLocation(location string) bool {
	for _, l := range ValidMenuLocations {
		if l == location {
			return true
		}
	}
	return false
}

// Menu item types.
const (
	MenuItemLink     = "link"
	MenuItemDropdown = "dropdown"
	MenuItemMegaMenu = "mega_menu"
	MenuItemButton   = "button"
	MenuItemAction   = "action"
)

// Widget types.
const (
	WidgetCalculator  = "calculator"
	WidgetRecentPosts = "recent_posts"
	WidgetCTABanner   = "cta_banner"
	WidgetLinkList    = "link_list"
	WidgetNewsletter  = "newsletter"
	WidgetCustomHTML  = "custom_html"
)

type User struct {
	ID           int    `gorm:"primary_key;autoIncrement" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"` // json:"-" prevents password from being exposed in API
}

// SEOData is the per-content SEO sub-record, stored as a JSON column.
// RobotsIndex/RobotsFollow are pointers so "unset" can default to true.
type SEOData struct {
	MetaTitle         string   `json:"metaTitle,omitempty"`
	MetaDescription   string   `json:"metaDescription,omitempty"`
	FocusKeyword      string   `json:"focusKeyword,omitempty"`
	SecondaryKeywords []string `json:"secondaryKeywords,omitempty"`
	CanonicalURL      string   `json:"canonicalUrl,omitempty"`
	RobotsIndex       *bool    `json:"robotsIndex,omitempty"`
	RobotsFollow      *bool    `json:"robotsFollow,omitempty"`
	SEOScore          int      `json:"seoScore,omitempty"` // stored, not acted on yet
}

// SocialData holds Open Graph / Twitter overrides.
type SocialData struct {
	OGTitle            string `json:"ogTitle,omitempty"`
	OGDescription      string `json:"ogDescription,omitempty"`
	OGImage            string `json:"ogImage,omitempty"`
	TwitterTitle       string `json:"twitterTitle,omitempty"`
	TwitterDescription string `json:"twitterDescription,omitempty"`
	TwitterImage       string `json:"twitterImage,omitempty"`
}

// Block is one unit of page content. Data stays raw JSON so unknown block
// types survive an admin round trip untouched.
type Block struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type Page struct {
	ID        uint       `gorm:"primary_key"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Slug      string     `gorm:"unique;not null;index" json:"slug"`
	Title     string     `gorm:"not null" json:"title"`
	Status    string     `gorm:"not null;default:'draft';index" json:"status"`
	Content   string     `gorm:"type:text" json:"content"` // legacy raw HTML body, used when Blocks is empty
	Blocks    []Block    `gorm:"serializer:json;type:text" json:"blocks,omitempty"`
	SEO       SEOData    `gorm:"serializer:json;type:text" json:"seo"`
	Social    SocialData `gorm:"serializer:json;type:text" json:"social"`
}

type BlogPost struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Slug      string    `gorm:"unique;not null;index" json:"slug"`
	Title     string    `gorm:"not null" json:"title"`
	Status    string    `gorm:"not null;default:'draft';index" json:"status"`
	Content   string    `gorm:"type:text" json:"content"` // markdown
	SEO       SEOData   `gorm:"serializer:json;type:text" json:"seo"`
}

type Location struct {
	ID        uint      `gorm:"primary_key"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Slug      string    `gorm:"not null;index" json:"slug"`
	Name      string    `gorm:"not null" json:"name"`
	Type      string    `gorm:"not null;index" json:"type"`
	Emirate   string    `gorm:"index" json:"emirate"` // parent emirate slug, empty for emirates themselves
	Image     string    `json:"image,omitempty"`
	Status    string    `gorm:"not null;default:'draft';index" json:"status"`
	Blocks    []Block   `gorm:"serializer:json;type:text" json:"blocks,omitempty"`
	SEO       SEOData   `gorm:"serializer:json;type:text" json:"seo"`
}

// PublicPath is the page's public URL path.
func (p Page) PublicPath() string {
	return "/" + p.Slug
}

// PublicPath is the post's public URL path.
func (p BlogPost) PublicPath() string {
	return "/blog/" + p.Slug
}

// PublicPath builds the location's public URL path by type: emirates sit
// at the root, areas under their emirate, free zones and landmarks under
// a type segment.
func (l Location) PublicPath() string {
	switch l.Type {
	case LocationEmirate:
		return "/" + l.Slug
	case LocationFreeZone:
		return "/" + l.Emirate + "/free-zones/" + l.Slug
	case LocationLandmark:
		return "/" + l.Emirate + "/landmarks/" + l.Slug
	default:
		return "/" + l.Emirate + "/" + l.Slug
	}
}

// MenuItem is a navigation entry. Children are inline values, so the tree
// is acyclic by construction.
type MenuItem struct {
	ID              string     `json:"id"`
	Label           string     `json:"label"`
	URL             string     `json:"url,omitempty"` // expected for link/button items
	Type            string     `json:"type"`
	Target          string     `json:"target,omitempty"`
	Children        []MenuItem `json:"children,omitempty"` // meaningful for dropdown/mega_menu
	MegaMenuContext string     `json:"megaMenuContext,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	Badge           string     `json:"badge,omitempty"`
	BadgeColor      string     `json:"badgeColor,omitempty"`
	ActionType      string     `json:"actionType,omitempty"`
}

type MenuConfig struct {
	ID        uint       `gorm:"primary_key" json:"id"`
	Name      string     `gorm:"not null" json:"name"`
	Location  string     `gorm:"not null;index" json:"location"`
	Items     []MenuItem `gorm:"serializer:json;type:text" json:"items"`
	IsActive  bool       `gorm:"default:false;index" json:"isActive"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type Widget struct {
	ID       uint           `gorm:"primary_key" json:"id"`
	Type     string         `gorm:"not null" json:"type"`
	Title    string         `json:"title,omitempty"`
	Config   map[string]any `gorm:"serializer:json;type:text" json:"config,omitempty"`
	Order    int            `gorm:"column:sort_order;default:0" json:"order"`
	IsActive bool           `gorm:"default:false;index" json:"isActive"`
}

// SiteSettings is a singleton row; the first record wins and hardcoded
// defaults apply when none exists.
type SiteSettings struct {
	ID             uint   `gorm:"primary_key" json:"id"`
	SiteName       string `json:"siteName"`
	Tagline        string `json:"tagline,omitempty"`
	BaseURL        string `json:"baseUrl"`
	DefaultOGImage string `json:"defaultOgImage,omitempty"`
	ContactEmail   string `json:"contactEmail,omitempty"`
}
