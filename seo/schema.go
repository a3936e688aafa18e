package seo

import (
	"encoding/json"
	"html/template"
	"strings"

	"gratuity/blocks"
	"gratuity/content"
	"gratuity/models"
)

// Crumb is one breadcrumb trail entry.
type Crumb struct {
	Label string
	URL   string
}

// BuildBreadcrumbs assembles the trail for a path. It always starts at
// Home; intermediate labels are slug-derived, the final label is the
// content's authoritative display name.
func BuildBreadcrumbs(envelope *content.Envelope, segments []string, baseURL string) []Crumb {
	base := strings.TrimSuffix(baseURL, "/")
	crumbs := []Crumb{{Label: "Home", URL: base + "/"}}

	for i := 0; i < len(segments)-1; i++ {
		crumbs = append(crumbs, Crumb{
			Label: HumanizeSlug(segments[i]),
			URL:   base + "/" + strings.Join(segments[:i+1], "/"),
		})
	}

	if len(segments) > 0 {
		crumbs = append(crumbs, Crumb{
			Label: envelope.Title(),
			URL:   base + "/" + strings.Join(segments, "/"),
		})
	}

	return crumbs
}

// BuildSchemas assembles every JSON-LD object for the page: breadcrumbs
// always, a Place schema for locations, a FAQPage schema when the content
// carries FAQ items.
func BuildSchemas(envelope *content.Envelope, segments []string, meta Meta, settings models.SiteSettings) []map[string]any {
	schemas := []map[string]any{
		breadcrumbSchema(BuildBreadcrumbs(envelope, segments, settings.BaseURL)),
	}

	if envelope.Kind == content.KindLocation {
		schemas = append(schemas, locationSchema(envelope.Location, segments, meta))
	}

	if items := blocks.FAQItems(envelope.Blocks()); len(items) > 0 {
		schemas = append(schemas, faqSchema(items))
	}

	return schemas
}

// CombineSchemas merges the schema objects into one @graph payload and
// serializes it for a single <script type="application/ld+json"> embed.
func CombineSchemas(schemas []map[string]any) (template.JS, error) {
	payload := map[string]any{
		"@context": "https://schema.org",
		"@graph":   schemas,
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return template.JS(raw), nil
}

func breadcrumbSchema(crumbs []Crumb) map[string]any {
	items := make([]map[string]any, len(crumbs))
	for i, crumb := range crumbs {
		items[i] = map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     crumb.Label,
			"item":     crumb.URL,
		}
	}
	return map[string]any{
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	}
}

func locationSchema(location *models.Location, segments []string, meta Meta) map[string]any {
	description := meta.Description
	if description == "" {
		description = "Calculate your end of service gratuity in " + location.Name + "."
	}

	schema := map[string]any{
		"@type":          "Place",
		"name":           location.Name,
		"description":    description,
		"additionalType": location.Type,
	}
	if location.Image != "" {
		schema["image"] = location.Image
	}
	if len(segments) > 1 {
		// second-to-last segment is assumed to be the parent location
		schema["containedInPlace"] = map[string]any{
			"@type": "Place",
			"name":  HumanizeSlug(segments[len(segments)-2]),
		}
	}
	return schema
}

func faqSchema(items []blocks.FAQItem) map[string]any {
	entities := make([]map[string]any, len(items))
	for i, item := range items {
		entities[i] = map[string]any{
			"@type": "Question",
			"name":  item.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  item.Answer,
			},
		}
	}
	return map[string]any{
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}
