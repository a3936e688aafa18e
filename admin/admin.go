package admin

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"gratuity/analytics"
	"gratuity/models"
)

type AdminModule struct {
	db        *gorm.DB
	analytics *analytics.AnalyticsModule
}

func NewAdminModule(db *gorm.DB, analyticsModule *analytics.AnalyticsModule) *AdminModule {
	return &AdminModule{
		db:        db,
		analytics: analyticsModule,
	}
}

func (a *AdminModule) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", a.loginPage)
	router.POST("/login", a.loginPost)
	router.GET("/admin/logout", a.logout)

	adminGroup := router.Group("/admin")
	adminGroup.Use(a.requireAuth)
	{
		adminGroup.GET("/", a.dashboard)

		adminGroup.GET("/pages", a.listPages)
		adminGroup.GET("/page/new", a.newPage)
		adminGroup.POST("/page/save", a.savePage)
		adminGroup.GET("/page/:id", a.editPage)
		adminGroup.POST("/page/:id", a.updatePage)
		adminGroup.DELETE("/page/:id", a.deletePage)

		adminGroup.GET("/posts", a.listPosts)
		adminGroup.GET("/post/new", a.newPost)
		adminGroup.POST("/post/save", a.savePost)
		adminGroup.GET("/post/:id", a.editPost)
		adminGroup.POST("/post/:id", a.updatePost)
		adminGroup.DELETE("/post/:id", a.deletePost)

		adminGroup.GET("/locations", a.listLocations)
		adminGroup.GET("/location/new", a.newLocation)
		adminGroup.POST("/location/save", a.saveLocation)
		adminGroup.GET("/location/:id", a.editLocation)
		adminGroup.POST("/location/:id", a.updateLocation)
		adminGroup.DELETE("/location/:id", a.deleteLocation)

		adminGroup.GET("/menus", a.listMenus)
		adminGroup.POST("/menu/save", a.saveMenu)
		adminGroup.POST("/menu/:id/activate", a.activateMenu)
		adminGroup.DELETE("/menu/:id", a.deleteMenu)

		adminGroup.GET("/widgets", a.listWidgets)
		adminGroup.POST("/widget/save", a.saveWidget)
		adminGroup.POST("/widgets/reorder", a.reorderWidgets)
		adminGroup.DELETE("/widget/:id", a.deleteWidget)

		adminGroup.GET("/settings", a.settingsPage)
		adminGroup.POST("/settings", a.updateSettings)
	}
}

func (a *AdminModule) requireAuth(c *gin.Context) {
	session := sessions.Default(c)
	userID := session.Get("user_id")

	if userID == nil {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}

	c.Set("user_id", userID)
	c.Next()
}

func (a *AdminModule) dashboard(c *gin.Context) {
	var pageCount, postCount, locationCount int64
	a.db.Model(&models.Page{}).Count(&pageCount)
	a.db.Model(&models.BlogPost{}).Count(&postCount)
	a.db.Model(&models.Location{}).Count(&locationCount)

	data := gin.H{
		"pageCount":        pageCount,
		"postCount":        postCount,
		"locationCount":    locationCount,
		"analyticsEnabled": a.analytics != nil,
	}

	if a.analytics != nil {
		data["viewsByDay"] = a.analytics.GetViewsByDay(15)
		data["topPaths"] = a.analytics.GetTopPaths(30, 10)
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", data)
}
