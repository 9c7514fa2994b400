package demand

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const salesSelector = "span.estimated_sales_per_mo"

var digits = regexp.MustCompile(`\d+`) //nolint:gochecknoglobals

// ParseMonthlySales reads the first integer of the estimated sales element.
// Thousands separators are ignored.
func ParseMonthlySales(page []byte) (int, bool) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return 0, false
	}

	node := doc.Find(salesSelector).First()
	if node.Length() == 0 {
		return 0, false
	}

	text := strings.ReplaceAll(strings.TrimSpace(node.Text()), ",", "")

	match := digits.FindString(text)
	if match == "" {
		return 0, false
	}

	sales, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}

	return sales, true
}
