package site

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gratuity/analytics"
	"gratuity/blocks"
	"gratuity/common"
	"gratuity/content"
	"gratuity/menus"
	"gratuity/models"
	"gratuity/rates"
	"gratuity/seo"
)

type SiteModule struct {
	db        *gorm.DB
	store     content.Store
	menus     *menus.MenuModule
	analytics *analytics.AnalyticsModule
	rates     *rates.Cache
}

func NewSiteModule(db *gorm.DB, analyticsModule *analytics.AnalyticsModule, rateCache *rates.Cache) *SiteModule {
	return &SiteModule{
		db:        db,
		store:     content.NewStore(db),
		menus:     menus.NewMenuModule(db),
		analytics: analyticsModule,
		rates:     rateCache,
	}
}

func (s *SiteModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/", s.home)
	router.GET("/blog", s.blogIndex)
	router.GET("/blog/:slug", s.blogPost)
	router.GET("/sitemap.xml", s.sitemap)
	router.GET("/robots.txt", s.robots)

	router.GET("/api/menus", s.apiMenus)
	router.GET("/api/revalidate", s.apiRevalidate)
	router.GET("/api/rates", s.apiRates)

	// every unmatched GET is a slug path for the content resolver
	router.NoRoute(s.renderContent)
}

// navContext fetches the menus and widgets every page needs. Failures
// degrade to empty navigation so the page still renders.
func (s *SiteModule) navContext() gin.H {
	nav := gin.H{}

	if header, err := s.menus.ActiveMenuByLocation(models.MenuLocationHeader); err == nil {
		nav["headerMenu"] = header
	}
	if footer, err := s.menus.ActiveMenuByLocation(models.MenuLocationFooterColumn1); err == nil {
		nav["footerMenu"] = footer
	}
	if widgets, err := s.menus.ActiveWidgets(); err == nil {
		nav["widgets"] = widgets
	}

	return nav
}

func (s *SiteModule) home(c *gin.Context) {
	settings := common.LoadSettings(s.db)

	data := s.navContext()
	data["settings"] = settings
	data["title"] = settings.SiteName
	data["tagline"] = settings.Tagline
	data["rates"] = s.rates.Get()

	s.analytics.TrackView(c, "/", "home")

	c.HTML(http.StatusOK, "site_home.html", data)
}

func (s *SiteModule) renderContent(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Status(http.StatusNotFound)
		return
	}

	settings := common.LoadSettings(s.db)
	segments := content.SplitPath(c.Request.URL.Path)

	resolver := content.NewResolver(s.store)
	envelope, err := resolver.Resolve(segments)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.renderNotFound(c, settings)
			return
		}
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"settings": settings,
			"error":    "Something went wrong loading this page",
		})
		return
	}

	meta := seo.BuildMeta(envelope, segments, settings)
	schemas := seo.BuildSchemas(envelope, segments, meta, settings)
	structuredData, err := seo.CombineSchemas(schemas)
	if err != nil {
		structuredData = ""
	}
	breadcrumbs := seo.BuildBreadcrumbs(envelope, segments, settings.BaseURL)

	fragments := blocks.RenderAll(envelope.Blocks())

	data := s.navContext()
	data["settings"] = settings
	data["meta"] = meta
	data["structuredData"] = structuredData
	data["breadcrumbs"] = breadcrumbs
	data["contentType"] = string(envelope.Kind)
	data["title"] = envelope.Title()
	data["fragments"] = fragments

	// legacy path: content authored before the block model renders as
	// raw HTML under a bare heading
	if len(fragments) == 0 && envelope.Kind == content.KindPage {
		data["legacyContent"] = template.HTML(envelope.Page.Content)
	}

	s.analytics.TrackView(c, c.Request.URL.Path, string(envelope.Kind))

	c.HTML(http.StatusOK, "site_page.html", data)
}

func (s *SiteModule) renderNotFound(c *gin.Context, settings models.SiteSettings) {
	c.HTML(http.StatusNotFound, "site_404.html", gin.H{
		"settings": settings,
		"title":    "Page not found",
	})
}

func (s *SiteModule) blogIndex(c *gin.Context) {
	settings := common.LoadSettings(s.db)

	posts, err := s.store.PublishedBlogPosts()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"settings": settings,
			"error":    "Something went wrong loading the blog",
		})
		return
	}

	data := s.navContext()
	data["settings"] = settings
	data["title"] = "Blog"
	data["posts"] = posts

	s.analytics.TrackView(c, "/blog", "blog")

	c.HTML(http.StatusOK, "site_blog_index.html", data)
}

func (s *SiteModule) blogPost(c *gin.Context) {
	settings := common.LoadSettings(s.db)
	slug := c.Param("slug")

	post, err := s.store.PublishedBlogPostBySlug(slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			s.renderNotFound(c, settings)
			return
		}
		c.HTML(http.StatusInternalServerError, "site_error.html", gin.H{
			"settings": settings,
			"error":    "Something went wrong loading this post",
		})
		return
	}

	data := s.navContext()
	data["settings"] = settings
	data["title"] = post.Title
	data["post"] = post
	data["contentHTML"] = template.HTML(blocks.RenderMarkdown(post.Content))

	s.analytics.TrackView(c, "/blog/"+slug, "blog")

	c.HTML(http.StatusOK, "site_blog_post.html", data)
}
