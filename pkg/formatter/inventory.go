package formatter

import (
	"fmt"
	"io"
)

// PrintInventoryHeading prints the resource section heading
func PrintInventoryHeading(w io.Writer) {
	fmt.Fprintln(w, "\n🖥️ CURRENTLY RUNNING RESOURCES:")
}

// PrintInventoryLine prints one category line, e.g. "  - S3 Buckets: None"
func PrintInventoryLine(w io.Writer, label string, ids []string) {
	fmt.Fprintf(w, "  - %s: %s\n", label, FormatIdentifiers(ids))
}
