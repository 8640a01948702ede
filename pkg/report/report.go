package report

import (
	"context"
	"io"

	"github.com/younsl/last24h/pkg/formatter"
)

// Reporter prints one section of the summary
type Reporter interface {
	Report(ctx context.Context, w io.Writer) error
}

// Run prints the banner followed by each section in order.
// The first error is returned as is and no later section is produced.
func Run(ctx context.Context, w io.Writer, sections ...Reporter) error {
	formatter.PrintBanner(w)

	for _, section := range sections {
		if err := section.Report(ctx, w); err != nil {
			return err
		}
	}

	return nil
}
