package utils

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripMarkup reduces an HTML fragment such as "Unit 4<br/>Retail Park" to
// its text, joining block breaks with a single space. Plain text is returned
// unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	doc.Find("br").ReplaceWithHtml(" ")

	return strings.Join(strings.Fields(doc.Text()), " ")
}
