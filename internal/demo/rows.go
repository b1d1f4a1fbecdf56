package demo

import (
	"fmt"

	"github.com/muesli/reflow/truncate"

	"github.com/HamStudy/vscroll/internal/components/style"
)

// item is the demo's placeholder content: a single row of a long
// synthetic feed, with a size that can vary to exercise resize-driven
// jump compensation.
type item struct {
	Title string
	Body  string
}

// generateItems builds a synthetic feed of n items with an
// occasionally multi-line body, so some rows measure taller than the
// configured default item size.
func generateItems(n int) []item {
	items := make([]item, n)
	for i := 0; i < n; i++ {
		body := fmt.Sprintf("entry body text for row %d", i)
		if i%7 == 0 {
			body = fmt.Sprintf("entry body text for row %d\nwith a wrapped second line", i)
		}
		items[i] = item{
			Title: fmt.Sprintf("Row %d", i),
			Body:  body,
		}
	}
	return items
}

// renderRow draws a single item row clipped to width, styled by
// selection state and by whether the row's size is still an estimate.
func renderRow(it item, width int, selected, unmeasured bool, styles *style.Manager) string {
	line := it.Title + "  " + it.Body
	line = truncate.StringWithTail(line, uint(width), "…")

	if unmeasured {
		return styles.UnmeasuredCell(width).Render(line)
	}
	return styles.RowCell(width, selected).Render(line)
}
