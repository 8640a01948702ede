package formatter

import (
	"fmt"
	"io"
	"strings"
)

// NoneSentinel is printed in place of an empty identifier list
const NoneSentinel = "None"

// PrintBanner prints the report title
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, "🔎 AWS 24h Resource & Cost Summary\n\n")
}

// FormatIdentifiers joins identifiers in input order, or returns NoneSentinel if there are none
func FormatIdentifiers(ids []string) string {
	if len(ids) == 0 {
		return NoneSentinel
	}
	return strings.Join(ids, ", ")
}
