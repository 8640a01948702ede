package formatter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younsl/last24h/internal/models"
)

func TestFormatAmount(t *testing.T) {
	tests := map[float64]string{
		1.25:       "$1.2500",
		0.00006:    "$0.0001",
		12345.6789: "$12345.6789",
		0.1:        "$0.1000",
	}

	for amount, want := range tests {
		assert.Equal(t, want, FormatAmount(amount))
	}
}

func TestFormatCostLine(t *testing.T) {
	line := FormatCostLine(models.CostLineItem{Service: "StorageY", Amount: 1.25, Unit: "USD"})
	assert.Equal(t, "StorageY: $1.2500", line)
}

func TestFormatIdentifiers(t *testing.T) {
	assert.Equal(t, "None", FormatIdentifiers(nil))
	assert.Equal(t, "None", FormatIdentifiers([]string{}))
	assert.Equal(t, "i-1", FormatIdentifiers([]string{"i-1"}))
	assert.Equal(t, "b, a", FormatIdentifiers([]string{"b", "a"}))
}

func TestPrintInventoryLine(t *testing.T) {
	var out bytes.Buffer
	PrintInventoryLine(&out, "S3 Buckets", nil)
	PrintInventoryLine(&out, "EC2 Running Instances", []string{"i-1"})

	assert.Equal(t, "  - S3 Buckets: None\n  - EC2 Running Instances: i-1\n", out.String())
}
