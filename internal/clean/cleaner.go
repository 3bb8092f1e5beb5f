// Package clean strips non-textual markup from fetched HTML.
package clean

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// strippedTags are removed in full, descendants included, before the
// visible text is extracted.
var strippedTags = []string{"style", "script", "img", "path"}

// HTMLCleaner extracts the plain text of an HTML document.
type HTMLCleaner struct{}

// New creates an HTMLCleaner.
func New() *HTMLCleaner {
	return &HTMLCleaner{}
}

// Clean parses the document, drops every style, script, image and
// vector-path element, and returns the remaining concatenated text.
// No whitespace normalization is applied.
func (c *HTMLCleaner) Clean(html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	for _, tag := range strippedTags {
		doc.Find(tag).Remove()
	}

	return doc.Text(), nil
}
