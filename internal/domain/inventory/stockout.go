package inventory

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// LookbackDays ventana fija (en días) de historial usada para medir el consumo reciente.
// También es el denominador del consumo promedio diario, haya o no movimientos en cada día.
const LookbackDays = 30

var lookbackDays = decimal.NewFromInt(LookbackDays)

// WindowStart devuelve el inicio de la ventana de consumo para el instante de evaluación now.
func WindowStart(now time.Time) time.Time {
	return now.Add(-LookbackDays * 24 * time.Hour)
}

// StockoutProjection resultado de proyectar el agotamiento de un producto en una bodega.
type StockoutProjection struct {
	TotalConsumed       int64           // unidades consumidas en la ventana (>= 0 si el log es consistente)
	AvgDailyConsumption decimal.Decimal // TotalConsumed / LookbackDays
	DaysUntilStockout   *int64          // nil cuando no hay consumo promedio positivo
}

// HasDemand informa si hubo salidas en la ventana. Sin demanda la alerta no es accionable.
func (p StockoutProjection) HasDemand() bool {
	return p.TotalConsumed > 0
}

// ProjectStockout calcula velocidad y horizonte de agotamiento (servicio de dominio).
// outflowSum es la suma (no positiva) de quantity_change < 0 dentro de la ventana.
// DaysUntilStockout = floor(currentStock / (consumido / LookbackDays)) en punto flotante.
func ProjectStockout(currentStock, outflowSum int64) StockoutProjection {
	consumed := -outflowSum
	p := StockoutProjection{
		TotalConsumed:       consumed,
		AvgDailyConsumption: decimal.NewFromInt(consumed).Div(lookbackDays),
	}
	if !p.AvgDailyConsumption.GreaterThan(decimal.Zero) {
		return p
	}
	avg := float64(consumed) / LookbackDays
	days := int64(math.Floor(float64(currentStock) / avg))
	p.DaysUntilStockout = &days
	return p
}
