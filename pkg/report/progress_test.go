package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionMessage(t *testing.T) {
	msg := CompletionMessage("S3 Buckets", 1234, 1500*time.Millisecond)
	assert.Equal(t, "✓ [1,234 items found] S3 Buckets - Completed in 1.50 seconds\n", msg)

	assert.Equal(t, "✓ [0 items found] RDS Clusters - Completed in 0.00 seconds\n",
		CompletionMessage("RDS Clusters", 0, 0))
}

func TestProgressSkipsSpinnerWhenWriterIsNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "stderr.log"))
	require.NoError(t, err)
	defer f.Close()

	p := &Progress{Enabled: true, Writer: f}

	require.NoError(t, p.track("S3 Buckets", func() (int, error) { return 2, nil }))

	failed := errors.New("AccessDenied")
	assert.ErrorIs(t, p.track("Lambda Functions", func() (int, error) { return 0, failed }), failed)

	written, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Empty(t, written)
}

func TestNilProgressRunsQuery(t *testing.T) {
	var p *Progress
	called := false

	require.NoError(t, p.track("DynamoDB Tables", func() (int, error) {
		called = true
		return 0, nil
	}))
	assert.True(t, called)
}
