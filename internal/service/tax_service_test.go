package service

import (
	"testing"

	"taxpal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTaxSingle(t *testing.T) {
	taxable, tax := EstimateTax(100000, 20000, 5000, 3000, 2000, models.FilingSingle)
	assert.InDelta(t, 70000, taxable, 0.001)
	assert.InDelta(t, 70000*0.22, tax, 0.001)
}

func TestEstimateTaxMarried(t *testing.T) {
	taxable, tax := EstimateTax(100000, 0, 0, 0, 0, models.FilingMarried)
	assert.InDelta(t, 100000, taxable, 0.001)
	assert.InDelta(t, 18000, tax, 0.001)
}

func TestEstimateTaxClampsAtZero(t *testing.T) {
	taxable, tax := EstimateTax(10000, 20000, 0, 0, 0, models.FilingSingle)
	assert.InDelta(t, -10000, taxable, 0.001)
	assert.Equal(t, float64(0), tax)
}

func TestEstimateTaxUnknownFilingUsesSingleRate(t *testing.T) {
	_, tax := EstimateTax(1000, 0, 0, 0, 0, models.FilingStatus("head_of_household"))
	assert.InDelta(t, 220, tax, 0.001)
}
