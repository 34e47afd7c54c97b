// Package rulesheet scrapes a rules-reference HTML page into role/district
// name/description rows. cmd/gen_rulesheet runs it and prints the rows for
// comparison with internal/catalogue's built-in text; nothing is generated
// into the catalogue, which does not import this package.
package rulesheet

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one row scraped from the reference page: a card name paired
// with its rules text, cleaned of the page's own formatting.
type Entry struct {
	Name        string
	Description string
}

var whitespace = regexp.MustCompile(`\s+`)

// Parse reads the bundled rules-reference HTML and returns one Entry per
// row found in its role and district tables. Rows are recognized by the
// "card-name" / "card-text" classes the reference page uses for both
// tables, so a single pass covers roles and districts alike.
func Parse(htmlContent string) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("parse rules page: %w", err)
	}

	var entries []Entry
	doc.Find("tr").Each(func(i int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(".card-name").First().Text())
		text := strings.TrimSpace(row.Find(".card-text").First().Text())
		if name == "" || text == "" {
			return
		}
		text = whitespace.ReplaceAllString(text, " ")
		entries = append(entries, Entry{Name: name, Description: text})
	})

	if len(entries) == 0 {
		return nil, fmt.Errorf("no card rows found in rules page")
	}
	return entries, nil
}
