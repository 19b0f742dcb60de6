// Package shoppinglist renders the shopping-cart aggregation as the
// plain-text document served by the download endpoint.
package shoppinglist

import (
	"fmt"
	"strings"
	"time"

	"github.com/iceadmin/foodgram/internal/database"
)

const (
	// Filename is the attachment name of the exported document.
	Filename = "shopping_list.txt"

	footer = "Сформировано на сайте www.iceadmin.ru, проект Foodgram"

	dateLayout = "2006-01-02"
)

// Render formats the aggregated groups as a newline-delimited document:
// a dated header naming the user, one "{name}({unit}) — {total}" line per
// group, and a static footer.
func Render(username string, now time.Time, items []database.GroceriesItem) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s, Ваш список покупок на %s\n\n\n", username, now.Format(dateLayout))
	for _, item := range items {
		fmt.Fprintf(&b, "%s(%s) — %d\n", item.Name, item.MeasurementUnit, item.Total)
	}
	b.WriteString("\n\n\n" + footer)

	return b.String()
}
