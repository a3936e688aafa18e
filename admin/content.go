package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gratuity/cache"
	"gratuity/models"
)

// parseSEOForm reads the shared SEO form fields.
func parseSEOForm(c *gin.Context) models.SEOData {
	seo := models.SEOData{
		MetaTitle:       c.PostForm("metaTitle"),
		MetaDescription: c.PostForm("metaDescription"),
		FocusKeyword:    c.PostForm("focusKeyword"),
		CanonicalURL:    c.PostForm("canonicalUrl"),
	}

	if keywords := c.PostForm("secondaryKeywords"); keywords != "" {
		for _, keyword := range strings.Split(keywords, ",") {
			if keyword = strings.TrimSpace(keyword); keyword != "" {
				seo.SecondaryKeywords = append(seo.SecondaryKeywords, keyword)
			}
		}
	}

	if c.PostForm("robotsNoindex") == "1" {
		noIndex := false
		seo.RobotsIndex = &noIndex
	}
	if c.PostForm("robotsNofollow") == "1" {
		noFollow := false
		seo.RobotsFollow = &noFollow
	}

	return seo
}

// parseBlocksForm decodes the blocks JSON textarea. Invalid JSON keeps
// the previous blocks rather than silently wiping content.
func parseBlocksForm(c *gin.Context, previous []models.Block) []models.Block {
	raw := c.PostForm("blocks")
	if raw == "" {
		return nil
	}

	var parsed []models.Block
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		log.Printf("admin: ignoring invalid blocks JSON: %v", err)
		return previous
	}
	return parsed
}

func statusFromAction(action, current string) string {
	switch action {
	case "publish":
		return models.StatusPublished
	case "unpublish", "save_draft":
		return models.StatusDraft
	}
	if current == "" {
		return models.StatusDraft
	}
	return current
}

func purgeCache(path string) {
	if err := cache.ClearCache(path); err != nil {
		log.Printf("admin: failed to purge cache for %s: %v", path, err)
	}
}

// ----- pages -----

func (a *AdminModule) listPages(c *gin.Context) {
	var pages []models.Page
	if err := a.db.Order("updated_at DESC").Find(&pages).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to load pages",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_list_pages.html", gin.H{"pages": pages})
}

func (a *AdminModule) newPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_edit_page.html", gin.H{"page": models.Page{}})
}

func (a *AdminModule) savePage(c *gin.Context) {
	title := c.PostForm("title")
	slug := c.PostForm("slug")
	if slug == "" {
		slug = generateSlug(title)
	}

	page := models.Page{
		Slug:      slug,
		Title:     title,
		Status:    statusFromAction(c.PostForm("action"), ""),
		Content:   c.PostForm("content"),
		Blocks:    parseBlocksForm(c, nil),
		SEO:       parseSEOForm(c),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := a.db.Create(&page).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to create page",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/pages")
}

func (a *AdminModule) editPage(c *gin.Context) {
	var page models.Page
	if err := a.db.First(&page, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Page not found"})
		return
	}

	blocksJSON, _ := json.MarshalIndent(page.Blocks, "", "  ")

	c.HTML(http.StatusOK, "admin_edit_page.html", gin.H{
		"page":       page,
		"blocksJSON": string(blocksJSON),
	})
}

func (a *AdminModule) updatePage(c *gin.Context) {
	var page models.Page
	if err := a.db.First(&page, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Page not found"})
		return
	}

	page.Title = c.PostForm("title")
	if slug := c.PostForm("slug"); slug != "" {
		page.Slug = slug
	}
	page.Content = c.PostForm("content")
	page.Blocks = parseBlocksForm(c, page.Blocks)
	page.SEO = parseSEOForm(c)
	page.Social = models.SocialData{
		OGTitle:       c.PostForm("ogTitle"),
		OGDescription: c.PostForm("ogDescription"),
		OGImage:       c.PostForm("ogImage"),
	}
	page.Status = statusFromAction(c.PostForm("action"), page.Status)
	page.UpdatedAt = time.Now()

	if err := a.db.Save(&page).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to update page",
		})
		return
	}

	purgeCache(page.PublicPath())

	c.Redirect(http.StatusFound, "/admin/pages")
}

func (a *AdminModule) deletePage(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var page models.Page
	if err := a.db.First(&page, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	if err := a.db.Delete(&page).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page"})
		return
	}

	purgeCache(page.PublicPath())

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted"})
}

// ----- blog posts -----

func (a *AdminModule) listPosts(c *gin.Context) {
	var posts []models.BlogPost
	if err := a.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to load posts",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_list_posts.html", gin.H{"posts": posts})
}

func (a *AdminModule) newPost(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_edit_post.html", gin.H{"post": models.BlogPost{}})
}

func (a *AdminModule) savePost(c *gin.Context) {
	title := c.PostForm("title")
	slug := c.PostForm("slug")
	if slug == "" {
		slug = generateSlug(title)
	}

	post := models.BlogPost{
		Slug:      slug,
		Title:     title,
		Status:    statusFromAction(c.PostForm("action"), ""),
		Content:   c.PostForm("content"),
		SEO:       parseSEOForm(c),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := a.db.Create(&post).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to create post",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/posts")
}

func (a *AdminModule) editPost(c *gin.Context) {
	var post models.BlogPost
	if err := a.db.First(&post, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Post not found"})
		return
	}

	c.HTML(http.StatusOK, "admin_edit_post.html", gin.H{"post": post})
}

func (a *AdminModule) updatePost(c *gin.Context) {
	var post models.BlogPost
	if err := a.db.First(&post, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Post not found"})
		return
	}

	post.Title = c.PostForm("title")
	if slug := c.PostForm("slug"); slug != "" {
		post.Slug = slug
	}
	post.Content = c.PostForm("content")
	post.SEO = parseSEOForm(c)
	post.Status = statusFromAction(c.PostForm("action"), post.Status)
	post.UpdatedAt = time.Now()

	if err := a.db.Save(&post).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to update post",
		})
		return
	}

	purgeCache(post.PublicPath())

	c.Redirect(http.StatusFound, "/admin/posts")
}

func (a *AdminModule) deletePost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var post models.BlogPost
	if err := a.db.First(&post, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := a.db.Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	purgeCache(post.PublicPath())

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

// ----- locations -----

func (a *AdminModule) listLocations(c *gin.Context) {
	var locations []models.Location
	if err := a.db.Order("type ASC, slug ASC").Find(&locations).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to load locations",
		})
		return
	}

	c.HTML(http.StatusOK, "admin_list_locations.html", gin.H{"locations": locations})
}

func (a *AdminModule) newLocation(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_edit_location.html", gin.H{"location": models.Location{}})
}

func validateLocationForm(locType, emirate string) string {
	switch locType {
	case models.LocationEmirate:
		return ""
	case models.LocationArea, models.LocationFreeZone, models.LocationLandmark:
		if emirate == "" {
			return "Non-emirate locations need a parent emirate"
		}
		return ""
	}
	return "Unknown location type"
}

func (a *AdminModule) saveLocation(c *gin.Context) {
	name := c.PostForm("name")
	slug := c.PostForm("slug")
	if slug == "" {
		slug = generateSlug(name)
	}
	locType := c.PostForm("type")
	emirate := c.PostForm("emirate")

	if msg := validateLocationForm(locType, emirate); msg != "" {
		c.HTML(http.StatusBadRequest, "admin_edit_location.html", gin.H{
			"error":    msg,
			"location": models.Location{Name: name, Slug: slug, Type: locType, Emirate: emirate},
		})
		return
	}

	location := models.Location{
		Slug:      slug,
		Name:      name,
		Type:      locType,
		Emirate:   emirate,
		Image:     c.PostForm("image"),
		Status:    statusFromAction(c.PostForm("action"), ""),
		Blocks:    parseBlocksForm(c, nil),
		SEO:       parseSEOForm(c),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := a.db.Create(&location).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to create location",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin/locations")
}

func (a *AdminModule) editLocation(c *gin.Context) {
	var location models.Location
	if err := a.db.First(&location, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Location not found"})
		return
	}

	blocksJSON, _ := json.MarshalIndent(location.Blocks, "", "  ")

	c.HTML(http.StatusOK, "admin_edit_location.html", gin.H{
		"location":   location,
		"blocksJSON": string(blocksJSON),
	})
}

func (a *AdminModule) updateLocation(c *gin.Context) {
	var location models.Location
	if err := a.db.First(&location, c.Param("id")).Error; err != nil {
		c.HTML(http.StatusNotFound, "admin_error.html", gin.H{"error": "Location not found"})
		return
	}

	locType := c.PostForm("type")
	emirate := c.PostForm("emirate")
	if msg := validateLocationForm(locType, emirate); msg != "" {
		c.HTML(http.StatusBadRequest, "admin_edit_location.html", gin.H{
			"error":    msg,
			"location": location,
		})
		return
	}

	location.Name = c.PostForm("name")
	if slug := c.PostForm("slug"); slug != "" {
		location.Slug = slug
	}
	location.Type = locType
	location.Emirate = emirate
	location.Image = c.PostForm("image")
	location.Blocks = parseBlocksForm(c, location.Blocks)
	location.SEO = parseSEOForm(c)
	location.Status = statusFromAction(c.PostForm("action"), location.Status)
	location.UpdatedAt = time.Now()

	if err := a.db.Save(&location).Error; err != nil {
		c.HTML(http.StatusInternalServerError, "admin_error.html", gin.H{
			"error": "Failed to update location",
		})
		return
	}

	purgeCache(location.PublicPath())

	c.Redirect(http.StatusFound, "/admin/locations")
}

func (a *AdminModule) deleteLocation(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	var location models.Location
	if err := a.db.First(&location, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}

	if err := a.db.Delete(&location).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete location"})
		return
	}

	purgeCache(location.PublicPath())

	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}
