package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bcrcell/bcr-erp/pkg/currency"
)

func TestFormatIDR(t *testing.T) {
	assert.Equal(t, "Rp 0", currency.FormatIDR(0))
	assert.Equal(t, "Rp 83.250", currency.FormatIDR(83250))
	assert.Equal(t, "Rp 2.500.000", currency.FormatIDR(2500000))
	assert.Equal(t, "Rp -500.000", currency.FormatIDR(-500000))
}
