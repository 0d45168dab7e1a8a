package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// ParsePrice interpreta un precio crudo en base 10 y lo cuantiza.
// Falla con ErrInvalidInput si el texto no es un decimal válido.
func ParsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return QuantizePrice(price)
}

// QuantizePrice lleva un precio a punto fijo con exactamente 2 decimales
// usando redondeo banquero (round-half-to-even), la propiedad que evita el
// sesgo acumulado de redondear siempre hacia arriba. Rechaza negativos.
// El valor nunca pasa por float binario: decimal de extremo a extremo.
func QuantizePrice(price decimal.Decimal) (decimal.Decimal, error) {
	if price.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return price.RoundBank(2), nil
}
