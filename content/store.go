package content

import (
	"errors"
	"fmt"

	"gratuity/models"

	"gorm.io/gorm"
)

// ErrNotFound means the content simply does not exist (or is unpublished).
// Any other error from the store is a transient failure and must be
// handled differently by callers: absence degrades to a 404, failure to a 500.
var ErrNotFound = errors.New("content not found")

// Store is the read interface the resolver and sitemap depend on.
type Store interface {
	PublishedPageBySlug(slug string) (*models.Page, error)
	PublishedLocationBySlug(slug string) (*models.Location, error)
	PublishedLocationInEmirate(emirate, slug string) (*models.Location, error)
	PublishedBlogPostBySlug(slug string) (*models.BlogPost, error)
	PublishedPages() ([]models.Page, error)
	PublishedBlogPosts() ([]models.BlogPost, error)
	PublishedLocations() ([]models.Location, error)
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm connection in the Store interface.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func wrapLookup(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return fmt.Errorf("store: loading %s: %w", what, err)
}

func (s *gormStore) PublishedPageBySlug(slug string) (*models.Page, error) {
	var page models.Page
	if err := s.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&page).Error; err != nil {
		return nil, wrapLookup(err, "page")
	}
	return &page, nil
}

func (s *gormStore) PublishedLocationBySlug(slug string) (*models.Location, error) {
	var location models.Location
	if err := s.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&location).Error; err != nil {
		return nil, wrapLookup(err, "location")
	}
	return &location, nil
}

func (s *gormStore) PublishedLocationInEmirate(emirate, slug string) (*models.Location, error) {
	var location models.Location
	if err := s.db.Where("emirate = ? AND slug = ? AND status = ?", emirate, slug, models.StatusPublished).
		First(&location).Error; err != nil {
		return nil, wrapLookup(err, "location")
	}
	return &location, nil
}

func (s *gormStore) PublishedBlogPostBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.Where("slug = ? AND status = ?", slug, models.StatusPublished).
		First(&post).Error; err != nil {
		return nil, wrapLookup(err, "blog post")
	}
	return &post, nil
}

func (s *gormStore) PublishedPages() ([]models.Page, error) {
	var pages []models.Page
	if err := s.db.Where("status = ?", models.StatusPublished).
		Order("slug ASC").Find(&pages).Error; err != nil {
		return nil, fmt.Errorf("store: listing pages: %w", err)
	}
	return pages, nil
}

func (s *gormStore) PublishedBlogPosts() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.db.Where("status = ?", models.StatusPublished).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("store: listing blog posts: %w", err)
	}
	return posts, nil
}

func (s *gormStore) PublishedLocations() ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.Where("status = ?", models.StatusPublished).
		Order("slug ASC").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("store: listing locations: %w", err)
	}
	return locations, nil
}
