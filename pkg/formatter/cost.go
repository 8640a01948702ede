package formatter

import (
	"fmt"
	"io"

	"github.com/younsl/last24h/internal/models"
)

// FormatAmount renders a cost with four decimal places, e.g. $1.2500
func FormatAmount(amount float64) string {
	return fmt.Sprintf("$%.4f", amount)
}

// FormatCostLine renders one service line without indentation, e.g. "StorageY: $1.2500"
func FormatCostLine(item models.CostLineItem) string {
	return fmt.Sprintf("%s: %s", item.Service, FormatAmount(item.Amount))
}

// PrintCostHeading prints the cost section heading
func PrintCostHeading(w io.Writer) {
	fmt.Fprintln(w, "\n📊 AWS COSTS in last 24h:")
}

// PrintCostLine prints a single cost item as a list entry
func PrintCostLine(w io.Writer, item models.CostLineItem) {
	fmt.Fprintf(w, "  - %s\n", FormatCostLine(item))
}
