package cricinfo

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/cricbase/cricbase-data/internal/frame"
)

// extractTable pulls the result table out of a Statsguru print page.
// The engine always renders the data as the third table on the page;
// anything else means the HTML changed underneath us. An exhausted
// query renders a single-cell placeholder table, which comes back as
// (nil, nil) so the caller can stop paginating.
func extractTable(body []byte) (*frame.Frame, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse response HTML: %w", err)
	}

	tables := doc.Find("table")
	if tables.Length() < 3 {
		return nil, fmt.Errorf("unexpected HTML structure: found %d tables, want at least 3", tables.Length())
	}
	table := tables.Eq(2)

	var headers []string
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		name := strings.TrimSpace(th.Text())
		// Spacer columns have blank headers; they need distinct names
		// so the frame can carry them until cleaning drops them.
		if name == "" {
			name = fmt.Sprintf("unnamed_%d", i)
		}
		headers = append(headers, name)
	})

	var rows [][]string
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		var cells []string
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(td.Text()))
		})
		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	})

	// End of pagination: a 1x1 table with no header.
	if len(headers) == 0 && len(rows) == 1 && len(rows[0]) == 1 {
		return nil, nil
	}
	if len(headers) == 0 {
		return nil, fmt.Errorf("unexpected HTML structure: result table has no header row")
	}

	columns := make([][]string, len(headers))
	for _, row := range rows {
		// Statsguru interleaves full-width note rows; only rows that
		// match the header width carry data.
		if len(row) != len(headers) {
			continue
		}
		for j, cell := range row {
			columns[j] = append(columns[j], cell)
		}
	}

	if len(columns[0]) == 0 {
		return nil, nil
	}

	out := frame.New()
	for j, name := range headers {
		out.Set(name, frame.NewStrings(columns[j]))
	}
	return out, nil
}
