// Package goquery extracts visible text from HTML pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/amontero/boletin"
)

// Ensure Extractor implements boletin.TextExtractor at compile time.
var _ boletin.TextExtractor = (*Extractor)(nil)

// Extractor implements boletin.TextExtractor using goquery.
type Extractor struct{}

// ExtractText returns the visible text of an HTML page, normalized with
// boletin.CleanText. Script, style, and other non-rendered elements are
// dropped; block-level elements become line breaks so paragraphs stay
// separated.
func (e *Extractor) ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", boletin.Errorf(boletin.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find("script, style, noscript, template, iframe").Remove()

	var sb strings.Builder
	// The parser always synthesizes a body element, even for fragments.
	flatten(&sb, doc.Find("body"))

	return boletin.CleanText(sb.String()), nil
}

// blockTags are elements whose end forces a line break in the flattened text.
var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "div": true, "dd": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "header": true, "hr": true, "li": true,
	"main": true, "nav": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// flatten writes the text content of sel, appending a newline after
// each block-level element.
func flatten(sb *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, child *goquery.Selection) {
		name := goquery.NodeName(child)
		if name == "#text" {
			sb.WriteString(child.Text())
			return
		}
		flatten(sb, child)
		if blockTags[name] {
			sb.WriteString("\n")
		}
	})
}
