package analytics

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PageView is one recorded visit to a public page.
type PageView struct {
	ID        uint      `gorm:"primary_key;autoIncrement"`
	Path      string    `gorm:"not null;index"`
	Kind      string    `gorm:"index"` // page, location, blog, home
	CookieID  string    `gorm:"not null;index"`
	IP        string    `gorm:"not null"`
	Language  *string   // nullable
	Browser   *string   // nullable
	CreatedAt time.Time `gorm:"index"`
}

// AnalyticsModule tracks public page views in a separate database.
type AnalyticsModule struct {
	db *gorm.DB
}

// NewAnalyticsModule returns nil when no analytics DB is configured;
// tracking calls on a nil module are no-ops.
func NewAnalyticsModule(db *gorm.DB) *AnalyticsModule {
	if db == nil {
		log.Println("Analytics DB is nil, analytics will be disabled")
		return nil
	}

	if err := db.AutoMigrate(&PageView{}); err != nil {
		log.Printf("Error migrating page_views table: %v", err)
		return nil
	}

	log.Println("Analytics module initialized successfully")
	return &AnalyticsModule{db: db}
}

// TrackView records a page view. Repeat views of the same path by the
// same visitor within 30 minutes are dropped so refreshes don't inflate
// counts. The insert runs asynchronously off the request path.
func (a *AnalyticsModule) TrackView(c *gin.Context, path, kind string) {
	if a == nil || a.db == nil {
		return
	}

	cookieID := a.getOrCreateCookieID(c)

	thirtyMinutesAgo := time.Now().Add(-30 * time.Minute)
	var recent PageView
	err := a.db.Where("cookie_id = ? AND path = ? AND created_at > ?",
		cookieID, path, thirtyMinutesAgo).First(&recent).Error
	if err == nil {
		return
	}

	view := PageView{
		Path:      path,
		Kind:      kind,
		CookieID:  cookieID,
		IP:        c.ClientIP(),
		Language:  extractLanguage(c),
		Browser:   extractBrowser(c.Request.UserAgent()),
		CreatedAt: time.Now(),
	}

	go func() {
		if err := a.db.Create(&view).Error; err != nil {
			log.Printf("Error saving analytics event: %v", err)
		}
	}()
}

func (a *AnalyticsModule) getOrCreateCookieID(c *gin.Context) string {
	const cookieName = "gratuity_visitor_id"

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "unknown"
	}
	id := hex.EncodeToString(buf)

	c.SetCookie(cookieName, id, 86400*365, "/", "", false, true)
	return id
}

func extractBrowser(userAgent string) *string {
	ua := strings.ToLower(userAgent)
	var browser string
	switch {
	case strings.Contains(ua, "edg/"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	default:
		return nil
	}
	return &browser
}

func extractLanguage(c *gin.Context) *string {
	accept := c.GetHeader("Accept-Language")
	if accept == "" {
		return nil
	}
	lang := strings.TrimSpace(strings.Split(strings.Split(accept, ",")[0], ";")[0])
	if lang == "" {
		return nil
	}
	return &lang
}

// DayCount is a per-day view total.
type DayCount struct {
	Date  string
	Count int64
}

// GetViewsByDay returns per-day totals for the last N days, oldest first.
func (a *AnalyticsModule) GetViewsByDay(days int) []DayCount {
	if a == nil || a.db == nil {
		return nil
	}

	since := time.Now().AddDate(0, 0, -days)
	var counts []DayCount
	err := a.db.Model(&PageView{}).
		Select("date(created_at) as date, count(*) as count").
		Where("created_at > ?", since).
		Group("date(created_at)").
		Order("date ASC").
		Scan(&counts).Error
	if err != nil {
		log.Printf("Error loading views by day: %v", err)
		return nil
	}
	return counts
}

// PathCount is a per-path view total.
type PathCount struct {
	Path  string
	Count int64
}

// GetTopPaths returns the most viewed paths over the last N days.
func (a *AnalyticsModule) GetTopPaths(days, limit int) []PathCount {
	if a == nil || a.db == nil {
		return nil
	}

	since := time.Now().AddDate(0, 0, -days)
	var counts []PathCount
	err := a.db.Model(&PageView{}).
		Select("path, count(*) as count").
		Where("created_at > ?", since).
		Group("path").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		log.Printf("Error loading top paths: %v", err)
		return nil
	}
	return counts
}
