package inventory_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain/inventory"
)

func TestProjectStockout_EjemploBase(t *testing.T) {
	// 60 unidades en 30 días → 2/día; 4 en stock → 2 días.
	p := inventory.ProjectStockout(4, -60)

	assert.True(t, p.HasDemand())
	assert.Equal(t, int64(60), p.TotalConsumed)
	assert.True(t, p.AvgDailyConsumption.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, p.DaysUntilStockout)
	assert.Equal(t, int64(2), *p.DaysUntilStockout)
}

func TestProjectStockout_SinDemanda(t *testing.T) {
	p := inventory.ProjectStockout(5, 0)

	assert.False(t, p.HasDemand())
	assert.Nil(t, p.DaysUntilStockout, "sin consumo no hay horizonte")
}

func TestProjectStockout_RedondeaHaciaAbajo(t *testing.T) {
	cases := []struct {
		name     string
		stock    int64
		outflow  int64
		expected int64
	}{
		{"fraccion", 10, -7, 42},       // 10 / (7/30) = 42.85
		{"exacto", 7, -70, 3},          // 7 / (70/30) = 3 exacto
		{"stock cero", 0, -15, 0},      // ya agotado
		{"menos de un dia", 1, -90, 0}, // 1 / 3 = 0.33
		{"consumo bajo", 3, -1, 90},
		{"cociente flotante bajo 30", 23, -23, 29}, // 23 / 0.7666… = 29.999…
		{"cociente flotante bajo 15", 31, -62, 14}, // 31 / 2.0666… = 14.999…
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := inventory.ProjectStockout(tc.stock, tc.outflow)
			require.NotNil(t, p.DaysUntilStockout)
			assert.Equal(t, tc.expected, *p.DaysUntilStockout)
		})
	}
}

func TestProjectStockout_SumaPositivaNoEsDemanda(t *testing.T) {
	// Un agregado positivo no debería llegar nunca; se trata como ausencia de consumo.
	p := inventory.ProjectStockout(5, 12)

	assert.False(t, p.HasDemand())
	assert.Nil(t, p.DaysUntilStockout)
}

func TestWindowStart_TreintaDias(t *testing.T) {
	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), inventory.WindowStart(now))
}
