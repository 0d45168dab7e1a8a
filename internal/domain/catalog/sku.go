// Package catalog contiene las reglas puras del catálogo de productos:
// normalización de SKU y cuantización de precios. Sin efectos secundarios,
// sin acceso al store.
package catalog

import (
	"strings"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// NormalizeSKU normaliza un SKU para comparación de unicidad: recorta
// espacios al inicio/fin y pasa a mayúsculas. Dos SKUs que solo difieren en
// mayúsculas o espacios son la misma identidad. El valor normalizado es el
// que se persiste, no solo el que se compara.
func NormalizeSKU(raw string) (string, error) {
	sku := strings.ToUpper(strings.TrimSpace(raw))
	if sku == "" {
		return "", domain.ErrInvalidInput
	}
	return sku, nil
}
