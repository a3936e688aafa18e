package blocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"

	"gratuity/models"
)

// markdown renderer configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

// RenderMarkdown converts markdown to HTML, returning the input unchanged
// on conversion errors so the page never breaks.
func RenderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		return content
	}
	return buf.String()
}

// RenderAll renders each block to an HTML fragment, preserving input order.
// Unknown block types and malformed payloads are skipped, not errors.
// Blocks are stateless: no fragment depends on its siblings.
func RenderAll(bs []models.Block) []template.HTML {
	var fragments []template.HTML
	for _, b := range bs {
		if fragment, ok := Render(b); ok {
			fragments = append(fragments, fragment)
		}
	}
	return fragments
}

// Render renders a single block. The second return is false when the block
// type is unknown or its payload cannot be decoded.
func Render(b models.Block) (template.HTML, bool) {
	switch b.Type {
	case TypeHero:
		var data HeroData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderHero(data), true
	case TypeCalculator:
		var data CalculatorData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderCalculator(data), true
	case TypeRichText:
		var data RichTextData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderRichText(data), true
	case TypeFAQ:
		var data FAQData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderFAQ(data), true
	case TypeCTA:
		var data CTAData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderCTA(data), true
	case TypeTable:
		var data TableData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderTable(data), true
	case TypeCards:
		var data CardsData
		if json.Unmarshal(b.Data, &data) != nil {
			return "", false
		}
		return renderCards(data), true
	}
	return "", false
}

func esc(s string) string {
	return template.HTMLEscapeString(s)
}

func renderHero(data HeroData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<section class="hero">`)
	if len(data.Breadcrumb) > 0 {
		sb.WriteString(`<nav class="breadcrumb">`)
		for i, crumb := range data.Breadcrumb {
			if i > 0 {
				sb.WriteString(`<span class="sep">/</span>`)
			}
			sb.WriteString(`<span>` + esc(crumb) + `</span>`)
		}
		sb.WriteString(`</nav>`)
	}
	sb.WriteString(`<h1>` + esc(data.Title) + `</h1>`)
	if data.Subtitle != "" {
		sb.WriteString(`<p class="subtitle">` + esc(data.Subtitle) + `</p>`)
	}
	sb.WriteString(`</section>`)
	return template.HTML(sb.String())
}

func renderCalculator(data CalculatorData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<section class="calculator">`)
	if data.Heading != "" {
		sb.WriteString(`<h2>` + esc(data.Heading) + `</h2>`)
	}
	sb.WriteString(fmt.Sprintf(`<div id="gratuity-calculator" data-emirate="%s"></div>`, esc(data.DefaultEmirate)))
	sb.WriteString(`</section>`)
	return template.HTML(sb.String())
}

func renderRichText(data RichTextData) template.HTML {
	if data.Markdown != "" {
		return template.HTML(`<div class="rich-text">` + RenderMarkdown(data.Markdown) + `</div>`)
	}
	return template.HTML(`<div class="rich-text">` + data.HTML + `</div>`)
}

func renderFAQ(data FAQData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<section class="faq">`)
	if data.Title != "" {
		sb.WriteString(`<h2>` + esc(data.Title) + `</h2>`)
	}
	for _, item := range data.Items {
		sb.WriteString(`<details><summary>` + esc(item.Question) + `</summary>`)
		sb.WriteString(`<div>` + RenderMarkdown(item.Answer) + `</div></details>`)
	}
	sb.WriteString(`</section>`)
	return template.HTML(sb.String())
}

func renderCTA(data CTAData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<section class="cta"><h2>` + esc(data.Title) + `</h2>`)
	if data.Text != "" {
		sb.WriteString(`<p>` + esc(data.Text) + `</p>`)
	}
	if data.ButtonLabel != "" && data.ButtonURL != "" {
		sb.WriteString(`<a class="button" href="` + esc(data.ButtonURL) + `">` + esc(data.ButtonLabel) + `</a>`)
	}
	sb.WriteString(`</section>`)
	return template.HTML(sb.String())
}

func renderTable(data TableData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<table>`)
	if data.Caption != "" {
		sb.WriteString(`<caption>` + esc(data.Caption) + `</caption>`)
	}
	if len(data.Headers) > 0 {
		sb.WriteString(`<thead><tr>`)
		for _, h := range data.Headers {
			sb.WriteString(`<th>` + esc(h) + `</th>`)
		}
		sb.WriteString(`</tr></thead>`)
	}
	sb.WriteString(`<tbody>`)
	for _, row := range data.Rows {
		sb.WriteString(`<tr>`)
		for _, cell := range row {
			sb.WriteString(`<td>` + esc(cell) + `</td>`)
		}
		sb.WriteString(`</tr>`)
	}
	sb.WriteString(`</tbody></table>`)
	return template.HTML(sb.String())
}

func renderCards(data CardsData) template.HTML {
	var sb strings.Builder
	sb.WriteString(`<section class="cards">`)
	if data.Title != "" {
		sb.WriteString(`<h2>` + esc(data.Title) + `</h2>`)
	}
	sb.WriteString(`<div class="card-grid">`)
	for _, card := range data.Cards {
		sb.WriteString(`<div class="card">`)
		if card.Icon != "" {
			sb.WriteString(`<span class="icon">` + esc(card.Icon) + `</span>`)
		}
		if card.URL != "" {
			sb.WriteString(`<a href="` + esc(card.URL) + `"><h3>` + esc(card.Title) + `</h3></a>`)
		} else {
			sb.WriteString(`<h3>` + esc(card.Title) + `</h3>`)
		}
		if card.Text != "" {
			sb.WriteString(`<p>` + esc(card.Text) + `</p>`)
		}
		sb.WriteString(`</div>`)
	}
	sb.WriteString(`</div></section>`)
	return template.HTML(sb.String())
}
