package blocks

import (
	"encoding/json"

	"gratuity/models"
)

// Known block type tags. Anything else is skipped by the renderer so
// newer admin payloads don't break older renderers.
const (
	TypeHero       = "hero"
	TypeCalculator = "calculator"
	TypeRichText   = "rich-text"
	TypeFAQ        = "faq"
	TypeCTA        = "cta"
	TypeTable      = "table"
	TypeCards      = "cards"
)

type HeroData struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Breadcrumb []string `json:"breadcrumb,omitempty"`
}

type CalculatorData struct {
	Heading        string `json:"heading,omitempty"`
	DefaultEmirate string `json:"defaultEmirate,omitempty"`
}

type RichTextData struct {
	Markdown string `json:"markdown,omitempty"`
	HTML     string `json:"html,omitempty"` // pre-rendered, used when Markdown is empty
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQData struct {
	Title string    `json:"title,omitempty"`
	Items []FAQItem `json:"items"`
}

type CTAData struct {
	Title       string `json:"title"`
	Text        string `json:"text,omitempty"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	ButtonURL   string `json:"buttonUrl,omitempty"`
}

type TableData struct {
	Caption string     `json:"caption,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type Card struct {
	Title string `json:"title"`
	Text  string `json:"text,omitempty"`
	Icon  string `json:"icon,omitempty"`
	URL   string `json:"url,omitempty"`
}

type CardsData struct {
	Title string `json:"title,omitempty"`
	Cards []Card `json:"cards"`
}

// FAQItems collects the items of every faq block, in order. The SEO
// assembler uses this to decide whether a FAQPage schema is emitted.
func FAQItems(bs []models.Block) []FAQItem {
	var items []FAQItem
	for _, b := range bs {
		if b.Type != TypeFAQ {
			continue
		}
		var data FAQData
		if err := json.Unmarshal(b.Data, &data); err != nil {
			continue
		}
		items = append(items, data.Items...)
	}
	return items
}
