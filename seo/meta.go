package seo

import (
	"strings"

	"gratuity/content"
	"gratuity/models"
)

// Meta is everything the <head> needs for one page.
type Meta struct {
	Title              string
	Description        string
	Keywords           []string
	Canonical          string
	RobotsIndex        bool
	RobotsFollow       bool
	OGTitle            string
	OGDescription      string
	OGImage            string
	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string
}

// RobotsContent renders the robots meta value ("index, follow" etc).
func (m Meta) RobotsContent() string {
	index := "index"
	if !m.RobotsIndex {
		index = "noindex"
	}
	follow := "follow"
	if !m.RobotsFollow {
		follow = "nofollow"
	}
	return index + ", " + follow
}

// KeywordsContent renders the keywords meta value.
func (m Meta) KeywordsContent() string {
	return strings.Join(m.Keywords, ", ")
}

// BuildMeta derives head metadata from content fields. Per field the first
// non-empty value wins: explicit SEO sub-record, then a computed default,
// then site defaults.
func BuildMeta(envelope *content.Envelope, segments []string, settings models.SiteSettings) Meta {
	seo := envelope.SEO()
	meta := Meta{
		Title:        seo.MetaTitle,
		Description:  seo.MetaDescription,
		Keywords:     seo.SecondaryKeywords,
		Canonical:    seo.CanonicalURL,
		RobotsIndex:  true,
		RobotsFollow: true,
	}

	if meta.Title == "" {
		switch envelope.Kind {
		case content.KindLocation:
			meta.Title = envelope.Location.Name + " Gratuity Calculator 2026"
		case content.KindPage:
			meta.Title = envelope.Page.Title
		}
	}

	if len(meta.Keywords) == 0 && envelope.Kind == content.KindLocation {
		meta.Keywords = locationKeywords(envelope.Location.Name)
	}

	if meta.Canonical == "" {
		meta.Canonical = strings.TrimSuffix(settings.BaseURL, "/") + "/" + strings.Join(segments, "/")
	}

	if seo.RobotsIndex != nil {
		meta.RobotsIndex = *seo.RobotsIndex
	}
	if seo.RobotsFollow != nil {
		meta.RobotsFollow = *seo.RobotsFollow
	}

	var social models.SocialData
	if envelope.Kind == content.KindPage {
		social = envelope.Page.Social
	}

	meta.OGTitle = firstNonEmpty(social.OGTitle, meta.Title)
	meta.OGDescription = firstNonEmpty(social.OGDescription, meta.Description)
	meta.OGImage = firstNonEmpty(social.OGImage, settings.DefaultOGImage)
	meta.TwitterTitle = firstNonEmpty(social.TwitterTitle, meta.OGTitle)
	meta.TwitterDescription = firstNonEmpty(social.TwitterDescription, meta.OGDescription)
	meta.TwitterImage = firstNonEmpty(social.TwitterImage, meta.OGImage)

	return meta
}

func locationKeywords(name string) []string {
	return []string{
		"gratuity calculator " + name,
		name + " gratuity calculation",
		"end of service gratuity " + name,
		"UAE gratuity calculator " + name,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// HumanizeSlug derives a display label from a slug: split on hyphens,
// capitalize each word. "dubai-marina" -> "Dubai Marina".
func HumanizeSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
