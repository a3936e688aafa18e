package site

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gratuity/common"
	"gratuity/menus"
	"gratuity/models"
)

type sitemapEntry struct {
	loc        string
	lastMod    string
	changeFreq string
	priority   string
}

var staticRoutes = []sitemapEntry{
	{loc: "/", changeFreq: "weekly", priority: "1.0"},
	{loc: "/blog", changeFreq: "daily", priority: "0.8"},
}

// buildSitemapEntries merges static and dynamic routes. URLs never repeat:
// when a dynamic entry collides with a static one, the dynamic entry wins.
func (s *SiteModule) buildSitemapEntries() []sitemapEntry {
	entries := make([]sitemapEntry, 0, len(staticRoutes))
	index := make(map[string]int)

	add := func(entry sitemapEntry) {
		if i, seen := index[entry.loc]; seen {
			entries[i] = entry
			return
		}
		index[entry.loc] = len(entries)
		entries = append(entries, entry)
	}

	for _, entry := range staticRoutes {
		add(entry)
	}

	pages, err := s.store.PublishedPages()
	if err != nil {
		log.Printf("sitemap: skipping pages: %v", err)
	}
	for _, page := range pages {
		add(sitemapEntry{
			loc:        page.PublicPath(),
			lastMod:    page.UpdatedAt.Format(time.RFC3339),
			changeFreq: "monthly",
			priority:   "0.7",
		})
	}

	posts, err := s.store.PublishedBlogPosts()
	if err != nil {
		log.Printf("sitemap: skipping blog posts: %v", err)
	}
	for _, post := range posts {
		add(sitemapEntry{
			loc:        post.PublicPath(),
			lastMod:    post.UpdatedAt.Format(time.RFC3339),
			changeFreq: "monthly",
			priority:   "0.6",
		})
	}

	locations, err := s.store.PublishedLocations()
	if err != nil {
		log.Printf("sitemap: skipping locations: %v", err)
	}
	for _, location := range locations {
		add(sitemapEntry{
			loc:        location.PublicPath(),
			lastMod:    location.UpdatedAt.Format(time.RFC3339),
			changeFreq: "weekly",
			priority:   "0.7",
		})
	}

	// menu-only internal routes, so nothing reachable from navigation is
	// missing from the sitemap
	for _, slot := range models.ValidMenuLocations {
		menu, err := s.menus.ActiveMenuByLocation(slot)
		if err != nil {
			continue
		}
		for _, url := range menus.FlattenURLs(menu.Items) {
			if !strings.HasPrefix(url, "/") || strings.ContainsAny(url, "#?") {
				continue
			}
			// content entries keep their richer metadata
			if _, seen := index[url]; seen {
				continue
			}
			add(sitemapEntry{
				loc:        url,
				changeFreq: "monthly",
				priority:   "0.5",
			})
		}
	}

	return entries
}

func (s *SiteModule) sitemap(c *gin.Context) {
	settings := common.LoadSettings(s.db)
	domain := strings.TrimSuffix(settings.BaseURL, "/")

	var sitemap strings.Builder
	sitemap.WriteString(`<?xml version="1.0" encoding="UTF-8"?>`)
	sitemap.WriteString("\n")
	sitemap.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	sitemap.WriteString("\n")

	for _, entry := range s.buildSitemapEntries() {
		sitemap.WriteString("  <url>\n")
		sitemap.WriteString("    <loc>" + domain + entry.loc + "</loc>\n")
		if entry.lastMod != "" {
			sitemap.WriteString("    <lastmod>" + entry.lastMod + "</lastmod>\n")
		}
		sitemap.WriteString("    <changefreq>" + entry.changeFreq + "</changefreq>\n")
		sitemap.WriteString("    <priority>" + entry.priority + "</priority>\n")
		sitemap.WriteString("  </url>\n")
	}

	sitemap.WriteString("</urlset>\n")

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, sitemap.String())
}

func (s *SiteModule) robots(c *gin.Context) {
	settings := common.LoadSettings(s.db)
	domain := strings.TrimSuffix(settings.BaseURL, "/")

	var robots strings.Builder
	robots.WriteString("User-agent: *\n")
	robots.WriteString("Disallow: /admin\n")
	robots.WriteString("Disallow: /api/\n")
	robots.WriteString("Allow: /\n")
	robots.WriteString("\n")
	robots.WriteString("Sitemap: " + domain + "/sitemap.xml\n")

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, robots.String())
}
