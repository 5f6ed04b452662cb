// Package textutil cleans free text typed into dashboard forms.
package textutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// PlainText drops any markup pasted from a rich-text editor and collapses
// whitespace. Input without '<' skips the HTML parser.
func PlainText(s string) string {
	if !strings.Contains(s, "<") {
		return CleanText(s)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return CleanText(s)
	}
	doc.Find("script, style").Remove()
	return CleanText(doc.Text())
}

// CleanList trims every entry and drops blanks and case-insensitive
// duplicates, keeping the first spelling.
func CleanList(xs []string) []string {
	seen := map[string]bool{}
	ys := []string{}
	for _, x := range xs {
		x = CleanText(x)
		if x == "" {
			continue
		}
		key := strings.ToLower(x)
		if seen[key] {
			continue
		}
		seen[key] = true
		ys = append(ys, x)
	}
	return ys
}
