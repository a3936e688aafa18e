package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gratuity/models"
)

func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	db.AutoMigrate(&models.Page{}, &models.Location{}, &models.BlogPost{})
	return db
}

func createTestPage(db *gorm.DB, slug, title, status string) *models.Page {
	page := &models.Page{
		Slug:   slug,
		Title:  title,
		Status: status,
	}
	db.Create(page)
	return page
}

func createTestLocation(db *gorm.DB, slug, name, locType, emirate, status string) *models.Location {
	location := &models.Location{
		Slug:    slug,
		Name:    name,
		Type:    locType,
		Emirate: emirate,
		Status:  status,
	}
	db.Create(location)
	return location
}

func TestResolve_PublishedPage(t *testing.T) {
	db := setupTestDB()
	createTestPage(db, "how-gratuity-works", "How Gratuity Works", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"how-gratuity-works"})

	assert.NoError(t, err)
	assert.Equal(t, KindPage, envelope.Kind)
	assert.Equal(t, "How Gratuity Works", envelope.Page.Title)
	assert.Nil(t, envelope.Location)
}

func TestResolve_ScopedLocation(t *testing.T) {
	db := setupTestDB()
	createTestLocation(db, "marina", "Dubai Marina", models.LocationArea, "dubai", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"dubai", "marina"})

	assert.NoError(t, err)
	assert.Equal(t, KindLocation, envelope.Kind)
	assert.Equal(t, "Dubai Marina", envelope.Location.Name)
	assert.Equal(t, "dubai", envelope.Location.Emirate)
}

func TestResolve_SingleSegmentLocation(t *testing.T) {
	db := setupTestDB()
	createTestLocation(db, "dubai", "Dubai", models.LocationEmirate, "", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"dubai"})

	assert.NoError(t, err)
	assert.Equal(t, KindLocation, envelope.Kind)
	assert.Equal(t, "Dubai", envelope.Location.Name)
}

func TestResolve_PageBeatsLocation(t *testing.T) {
	db := setupTestDB()
	createTestPage(db, "dubai", "Dubai Landing Page", models.StatusPublished)
	createTestLocation(db, "dubai", "Dubai", models.LocationEmirate, "", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"dubai"})

	assert.NoError(t, err)
	assert.Equal(t, KindPage, envelope.Kind)
	assert.Equal(t, "Dubai Landing Page", envelope.Page.Title)
}

func TestResolve_DraftPageNotResolvable(t *testing.T) {
	db := setupTestDB()
	createTestPage(db, "coming-soon", "Coming Soon", models.StatusDraft)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"coming-soon"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, envelope)
}

func TestResolve_DraftLocationNotResolvable(t *testing.T) {
	db := setupTestDB()
	createTestLocation(db, "jlt", "Jumeirah Lake Towers", models.LocationArea, "dubai", models.StatusDraft)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"dubai", "jlt"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, envelope)
}

func TestResolve_NotFound(t *testing.T) {
	db := setupTestDB()

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"does-not-exist"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, envelope)
}

func TestResolve_EmptyPath(t *testing.T) {
	db := setupTestDB()

	resolver := NewResolver(NewStore(db))
	_, err := resolver.Resolve(nil)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_WrongEmirateScope(t *testing.T) {
	db := setupTestDB()
	createTestLocation(db, "marina", "Dubai Marina", models.LocationArea, "dubai", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"sharjah", "marina"})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, envelope)
}

type countingStore struct {
	Store
	pageLookups int
}

func (c *countingStore) PublishedPageBySlug(slug string) (*models.Page, error) {
	c.pageLookups++
	return c.Store.PublishedPageBySlug(slug)
}

func TestResolve_MemoizesWithinRender(t *testing.T) {
	db := setupTestDB()
	createTestPage(db, "faq", "FAQ", models.StatusPublished)

	store := &countingStore{Store: NewStore(db)}
	resolver := NewResolver(store)

	first, err := resolver.Resolve([]string{"faq"})
	assert.NoError(t, err)
	second, err := resolver.Resolve([]string{"faq"})
	assert.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, store.pageLookups)
}

func TestResolve_MemoizesNotFound(t *testing.T) {
	db := setupTestDB()

	store := &countingStore{Store: NewStore(db)}
	resolver := NewResolver(store)

	_, err := resolver.Resolve([]string{"ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = resolver.Resolve([]string{"ghost"})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 1, store.pageLookups)
}

func TestSplitPath(t *testing.T) {
	assert.Equal(t, []string{"dubai", "marina"}, SplitPath("/dubai/marina/"))
	assert.Equal(t, []string{"dubai"}, SplitPath("dubai"))
	assert.Nil(t, SplitPath("/"))
}

func TestEnvelopeAccessors(t *testing.T) {
	db := setupTestDB()
	createTestLocation(db, "dubai", "Dubai", models.LocationEmirate, "", models.StatusPublished)

	resolver := NewResolver(NewStore(db))
	envelope, err := resolver.Resolve([]string{"dubai"})

	assert.NoError(t, err)
	assert.Equal(t, "Dubai", envelope.Title())
	assert.Empty(t, envelope.Blocks())
}
