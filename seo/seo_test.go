package seo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"gratuity/content"
	"gratuity/models"
)

var testSettings = models.SiteSettings{
	SiteName:       "Gratuity Calculator UAE",
	BaseURL:        "https://gratuity.example",
	DefaultOGImage: "/public/img/og-default.png",
}

func locationEnvelope(location *models.Location) *content.Envelope {
	return &content.Envelope{Kind: content.KindLocation, Location: location}
}

func pageEnvelope(page *models.Page) *content.Envelope {
	return &content.Envelope{Kind: content.KindPage, Page: page}
}

func TestHumanizeSlug(t *testing.T) {
	assert.Equal(t, "Dubai Marina", HumanizeSlug("dubai-marina"))
	assert.Equal(t, "Abu Dhabi", HumanizeSlug("abu-dhabi"))
	assert.Equal(t, "Dubai", HumanizeSlug("dubai"))
}

func TestBuildMeta_LocationTitleFallback(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Dubai Marina", Type: models.LocationArea})

	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	assert.Equal(t, "Dubai Marina Gratuity Calculator 2026", meta.Title)
}

func TestBuildMeta_ExplicitMetaTitleWins(t *testing.T) {
	envelope := locationEnvelope(&models.Location{
		Name: "Dubai Marina",
		SEO:  models.SEOData{MetaTitle: "Custom Title"},
	})

	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	assert.Equal(t, "Custom Title", meta.Title)
}

func TestBuildMeta_PageTitleFallback(t *testing.T) {
	envelope := pageEnvelope(&models.Page{Title: "How Gratuity Works"})

	meta := BuildMeta(envelope, []string{"how-gratuity-works"}, testSettings)

	assert.Equal(t, "How Gratuity Works", meta.Title)
	assert.Empty(t, meta.Description) // no fallback for descriptions
}

func TestBuildMeta_LocationGeneratedKeywords(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Dubai Marina"})

	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	assert.Len(t, meta.Keywords, 4)
	for _, keyword := range meta.Keywords {
		assert.Contains(t, keyword, "Dubai Marina")
	}
}

func TestBuildMeta_SecondaryKeywordsWin(t *testing.T) {
	envelope := locationEnvelope(&models.Location{
		Name: "Dubai Marina",
		SEO:  models.SEOData{SecondaryKeywords: []string{"custom keyword"}},
	})

	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	assert.Equal(t, []string{"custom keyword"}, meta.Keywords)
}

func TestBuildMeta_CanonicalComputed(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Dubai Marina"})

	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	assert.Equal(t, "https://gratuity.example/dubai/marina", meta.Canonical)
}

func TestBuildMeta_CanonicalExplicit(t *testing.T) {
	envelope := pageEnvelope(&models.Page{
		Title: "FAQ",
		SEO:   models.SEOData{CanonicalURL: "https://gratuity.example/faq-canonical"},
	})

	meta := BuildMeta(envelope, []string{"faq"}, testSettings)

	assert.Equal(t, "https://gratuity.example/faq-canonical", meta.Canonical)
}

func TestBuildMeta_RobotsDefaults(t *testing.T) {
	envelope := pageEnvelope(&models.Page{Title: "FAQ"})

	meta := BuildMeta(envelope, []string{"faq"}, testSettings)

	assert.True(t, meta.RobotsIndex)
	assert.True(t, meta.RobotsFollow)
	assert.Equal(t, "index, follow", meta.RobotsContent())
}

func TestBuildMeta_RobotsExplicit(t *testing.T) {
	noIndex := false
	envelope := pageEnvelope(&models.Page{
		Title: "Thanks",
		SEO:   models.SEOData{RobotsIndex: &noIndex},
	})

	meta := BuildMeta(envelope, []string{"thanks"}, testSettings)

	assert.False(t, meta.RobotsIndex)
	assert.Equal(t, "noindex, follow", meta.RobotsContent())
}

func TestBuildMeta_SocialFallbackChain(t *testing.T) {
	envelope := pageEnvelope(&models.Page{
		Title:  "FAQ",
		SEO:    models.SEOData{MetaDescription: "All gratuity questions answered."},
		Social: models.SocialData{OGTitle: "Custom OG Title"},
	})

	meta := BuildMeta(envelope, []string{"faq"}, testSettings)

	assert.Equal(t, "Custom OG Title", meta.OGTitle)
	assert.Equal(t, "All gratuity questions answered.", meta.OGDescription)
	assert.Equal(t, "/public/img/og-default.png", meta.OGImage)
	assert.Equal(t, "Custom OG Title", meta.TwitterTitle)
	assert.Equal(t, meta.OGImage, meta.TwitterImage)
}

func TestBuildBreadcrumbs_IntermediateLabelsFromSlug(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "JLT"})

	crumbs := BuildBreadcrumbs(envelope, []string{"dubai-marina", "jlt"}, testSettings.BaseURL)

	assert.Len(t, crumbs, 3)
	assert.Equal(t, "Home", crumbs[0].Label)
	assert.Equal(t, "https://gratuity.example/", crumbs[0].URL)
	assert.Equal(t, "Dubai Marina", crumbs[1].Label)
	assert.Equal(t, "https://gratuity.example/dubai-marina", crumbs[1].URL)
	assert.Equal(t, "JLT", crumbs[2].Label) // authoritative display name, not slug-derived
	assert.Equal(t, "https://gratuity.example/dubai-marina/jlt", crumbs[2].URL)
}

func TestBuildSchemas_BreadcrumbAlwaysPresent(t *testing.T) {
	envelope := pageEnvelope(&models.Page{Title: "FAQ"})
	meta := BuildMeta(envelope, []string{"faq"}, testSettings)

	schemas := BuildSchemas(envelope, []string{"faq"}, meta, testSettings)

	assert.Len(t, schemas, 1)
	assert.Equal(t, "BreadcrumbList", schemas[0]["@type"])
}

func TestBuildSchemas_LocationGetsPlaceSchema(t *testing.T) {
	envelope := locationEnvelope(&models.Location{
		Name: "Dubai Marina",
		Type: models.LocationArea,
	})
	meta := BuildMeta(envelope, []string{"dubai", "marina"}, testSettings)

	schemas := BuildSchemas(envelope, []string{"dubai", "marina"}, meta, testSettings)

	assert.Len(t, schemas, 2)
	place := schemas[1]
	assert.Equal(t, "Place", place["@type"])
	assert.Equal(t, "Dubai Marina", place["name"])
	contained := place["containedInPlace"].(map[string]any)
	assert.Equal(t, "Dubai", contained["name"])
}

func TestBuildSchemas_SingleSegmentLocationHasNoParent(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Dubai", Type: models.LocationEmirate})
	meta := BuildMeta(envelope, []string{"dubai"}, testSettings)

	schemas := BuildSchemas(envelope, []string{"dubai"}, meta, testSettings)

	place := schemas[1]
	_, hasParent := place["containedInPlace"]
	assert.False(t, hasParent)
}

func TestBuildSchemas_FAQSchemaWhenFAQBlocksPresent(t *testing.T) {
	faqData, _ := json.Marshal(map[string]any{
		"items": []map[string]string{{"question": "Q", "answer": "A"}},
	})
	envelope := pageEnvelope(&models.Page{
		Title:  "FAQ",
		Blocks: []models.Block{{Type: "faq", Data: faqData}},
	})
	meta := BuildMeta(envelope, []string{"faq"}, testSettings)

	schemas := BuildSchemas(envelope, []string{"faq"}, meta, testSettings)

	assert.Len(t, schemas, 2)
	assert.Equal(t, "FAQPage", schemas[1]["@type"])
}

func TestCombineSchemas_SingleGraphPayload(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Dubai"})
	meta := BuildMeta(envelope, []string{"dubai"}, testSettings)
	schemas := BuildSchemas(envelope, []string{"dubai"}, meta, testSettings)

	combined, err := CombineSchemas(schemas)

	assert.NoError(t, err)

	var decoded map[string]any
	assert.NoError(t, json.Unmarshal([]byte(combined), &decoded))
	assert.Equal(t, "https://schema.org", decoded["@context"])
	assert.Len(t, decoded["@graph"], 2)
}

func TestLocationSchema_GeneratedDescriptionFallback(t *testing.T) {
	envelope := locationEnvelope(&models.Location{Name: "Sharjah", Type: models.LocationEmirate})
	meta := BuildMeta(envelope, []string{"sharjah"}, testSettings)

	schemas := BuildSchemas(envelope, []string{"sharjah"}, meta, testSettings)

	place := schemas[1]
	assert.Equal(t, "Calculate your end of service gratuity in Sharjah.", place["description"])
}
