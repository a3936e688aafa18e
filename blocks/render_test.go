package blocks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"gratuity/models"
)

func block(t *testing.T, blockType string, data any) models.Block {
	t.Helper()
	raw, err := json.Marshal(data)
	assert.NoError(t, err)
	return models.Block{Type: blockType, Data: raw}
}

func TestRenderAll_PreservesOrder(t *testing.T) {
	bs := []models.Block{
		block(t, TypeHero, HeroData{Title: "Gratuity in Dubai"}),
		block(t, TypeCTA, CTAData{Title: "Calculate now"}),
	}

	fragments := RenderAll(bs)

	assert.Len(t, fragments, 2)
	assert.Contains(t, string(fragments[0]), "<h1>Gratuity in Dubai</h1>")
	assert.Contains(t, string(fragments[1]), "Calculate now")
}

func TestRenderAll_SkipsUnknownTypes(t *testing.T) {
	bs := []models.Block{
		block(t, TypeHero, HeroData{Title: "Known"}),
		{Type: "video-embed", Data: json.RawMessage(`{"url":"x"}`)},
	}

	fragments := RenderAll(bs)

	assert.Len(t, fragments, 1)
	assert.Contains(t, string(fragments[0]), "Known")
}

func TestRenderAll_SkipsMalformedPayload(t *testing.T) {
	bs := []models.Block{
		{Type: TypeHero, Data: json.RawMessage(`not json`)},
	}

	assert.Empty(t, RenderAll(bs))
}

func TestRender_Hero_EscapesAndBreadcrumb(t *testing.T) {
	fragment, ok := Render(block(t, TypeHero, HeroData{
		Title:      "A <b>title</b>",
		Breadcrumb: []string{"Home", "Dubai"},
	}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), "A &lt;b&gt;title&lt;/b&gt;")
	assert.Contains(t, string(fragment), `<nav class="breadcrumb">`)
	assert.Contains(t, string(fragment), "Dubai")
}

func TestRender_RichText_Markdown(t *testing.T) {
	fragment, ok := Render(block(t, TypeRichText, RichTextData{Markdown: "## Rules\n\nSome **bold** text."}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), "<h2>Rules</h2>")
	assert.Contains(t, string(fragment), "<strong>bold</strong>")
}

func TestRender_RichText_FallsBackToHTML(t *testing.T) {
	fragment, ok := Render(block(t, TypeRichText, RichTextData{HTML: "<p>already html</p>"}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), "<p>already html</p>")
}

func TestRender_FAQ(t *testing.T) {
	fragment, ok := Render(block(t, TypeFAQ, FAQData{
		Items: []FAQItem{{Question: "Am I eligible?", Answer: "After one year of service."}},
	}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), "<summary>Am I eligible?</summary>")
	assert.Contains(t, string(fragment), "After one year of service.")
}

func TestRender_Table(t *testing.T) {
	fragment, ok := Render(block(t, TypeTable, TableData{
		Headers: []string{"Years", "Days per year"},
		Rows:    [][]string{{"1-5", "21"}, {"5+", "30"}},
	}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), "<th>Years</th>")
	assert.Contains(t, string(fragment), "<td>21</td>")
	assert.Contains(t, string(fragment), "<td>30</td>")
}

func TestRender_Calculator(t *testing.T) {
	fragment, ok := Render(block(t, TypeCalculator, CalculatorData{DefaultEmirate: "dubai"}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), `id="gratuity-calculator"`)
	assert.Contains(t, string(fragment), `data-emirate="dubai"`)
}

func TestRender_Cards(t *testing.T) {
	fragment, ok := Render(block(t, TypeCards, CardsData{
		Cards: []Card{{Title: "Dubai Marina", URL: "/dubai/marina"}},
	}))

	assert.True(t, ok)
	assert.Contains(t, string(fragment), `<a href="/dubai/marina">`)
}

func TestFAQItems_CollectsAcrossBlocks(t *testing.T) {
	bs := []models.Block{
		block(t, TypeFAQ, FAQData{Items: []FAQItem{{Question: "Q1", Answer: "A1"}}}),
		block(t, TypeHero, HeroData{Title: "between"}),
		block(t, TypeFAQ, FAQData{Items: []FAQItem{{Question: "Q2", Answer: "A2"}}}),
	}

	items := FAQItems(bs)

	assert.Len(t, items, 2)
	assert.Equal(t, "Q1", items[0].Question)
	assert.Equal(t, "Q2", items[1].Question)
}

func TestFAQItems_EmptyWhenNoFAQBlocks(t *testing.T) {
	bs := []models.Block{block(t, TypeHero, HeroData{Title: "x"})}

	assert.Empty(t, FAQItems(bs))
}

func TestRenderMarkdown_Headers(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Header 1", "<h1>Header 1</h1>"},
		{"## Header 2", "<h2>Header 2</h2>"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := RenderMarkdown(tt.input)
			assert.Contains(t, result, tt.expected)
		})
	}
}

func TestRenderMarkdown_GFMTable(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |"
	result := RenderMarkdown(input)

	assert.Contains(t, result, "<table>")
	assert.Contains(t, result, "<td>1</td>")
}
