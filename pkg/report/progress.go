package report

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

// Progress shows a spinner while an API call is in flight and logs how it went.
// A nil or disabled Progress only logs.
type Progress struct {
	Enabled bool
	Writer  *os.File // spinner output, normally os.Stderr; the spinner only draws when it is a terminal
	Logger  logrus.FieldLogger
}

// CompletionMessage is the line left behind by the spinner once a query succeeds
func CompletionMessage(label string, count int, elapsed time.Duration) string {
	return fmt.Sprintf("✓ [%s items found] %s - Completed in %.2f seconds\n",
		humanize.Comma(int64(count)), label, elapsed.Seconds())
}

// track runs fn under a spinner labelled with what is being queried.
// fn returns the number of items it fetched.
func (p *Progress) track(label string, fn func() (int, error)) error {
	logger := p.logger().WithField("query", label)
	logger.Debug("querying")

	var s *spinner.Spinner
	if p != nil && p.Enabled && p.Writer != nil {
		s = spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriterFile(p.Writer))
		s.Suffix = fmt.Sprintf(" Querying %s ...", label)
		s.Start()
	}

	start := time.Now()
	count, err := fn()
	elapsed := time.Since(start)

	// Stop before the caller prints so the spinner never interleaves with report lines
	if s != nil {
		if err == nil {
			s.FinalMSG = CompletionMessage(label, count, elapsed)
		}
		s.Stop()
	}

	if err != nil {
		logger.WithError(err).Debug("query failed")
		return err
	}

	logger.WithField("took", elapsed.Round(time.Millisecond)).
		Debugf("fetched %s items", humanize.Comma(int64(count)))
	return nil
}

func (p *Progress) logger() logrus.FieldLogger {
	if p == nil || p.Logger == nil {
		return logrus.StandardLogger()
	}
	return p.Logger
}
