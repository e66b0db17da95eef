// Package etree provides XML parsing for gazette markup: article
// identifier extraction from the daily publication index and structured
// parsing of individual article documents.
package etree

import (
	"strings"

	"github.com/beevik/etree"
)

// findFirst returns the first element with the given tag, searching el
// and its descendants depth-first.
func findFirst(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	if el.Tag == tag {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := findFirst(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// flatText concatenates all character data under el, separating sibling
// elements with newlines so paragraph structure survives normalization.
func flatText(el *etree.Element) string {
	if el == nil {
		return ""
	}
	var b strings.Builder
	writeFlatText(&b, el)
	return b.String()
}

func writeFlatText(b *strings.Builder, el *etree.Element) {
	for _, token := range el.Child {
		switch t := token.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			writeFlatText(b, t)
			b.WriteString("\n")
		}
	}
}

// elementText returns the trimmed flattened text of the first element
// with the given tag under root, or "" if absent.
func elementText(root *etree.Element, tag string) string {
	return strings.TrimSpace(flatText(findFirst(root, tag)))
}

// itemTexts collects the trimmed text of every itemTag element under
// the first listTag element below root. Missing lists and empty items
// yield an empty, non-nil slice.
func itemTexts(root *etree.Element, listTag, itemTag string) []string {
	items := []string{}
	list := findFirst(root, listTag)
	if list == nil {
		return items
	}
	for _, el := range collectByTag(list, itemTag) {
		if text := strings.TrimSpace(flatText(el)); text != "" {
			items = append(items, text)
		}
	}
	return items
}

// collectByTag returns every descendant of el with the given tag, in
// document order.
func collectByTag(el *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, collectByTag(child, tag)...)
	}
	return out
}
