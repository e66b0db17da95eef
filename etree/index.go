package etree

import (
	"sort"

	"github.com/amontero/boletin"
	"github.com/beevik/etree"
)

// Ensure IndexParser implements boletin.IndexParser at compile time.
var _ boletin.IndexParser = (*IndexParser)(nil)

// IndexParser extracts article identifiers from a day's publication
// index XML. It makes no assumption about where in the schema the
// identifiers live: every attribute value and every piece of text
// content, at any depth, is scanned for the identifier pattern.
type IndexParser struct{}

// NewIndexParser creates a new IndexParser.
func NewIndexParser() *IndexParser {
	return &IndexParser{}
}

// ExtractArticleIDs returns the deduplicated set of article IDs found
// anywhere in the markup, sorted for deterministic output.
func (p *IndexParser) ExtractArticleIDs(markup string) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return nil, boletin.Errorf(boletin.EINVALID, "unparsable index markup: %v", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, boletin.Errorf(boletin.EINVALID, "index markup has no root element")
	}

	seen := make(map[string]bool)
	scanElement(root, seen)

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// scanElement records every identifier occurrence in el's attributes
// and text content, then recurses into child elements.
func scanElement(el *etree.Element, seen map[string]bool) {
	for _, attr := range el.Attr {
		for _, id := range boletin.ArticleIDPattern.FindAllString(attr.Value, -1) {
			seen[id] = true
		}
	}
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			for _, id := range boletin.ArticleIDPattern.FindAllString(t.Data, -1) {
				seen[id] = true
			}
		case *etree.Element:
			scanElement(t, seen)
		}
	}
}
