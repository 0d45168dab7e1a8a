package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/catalog"
)

// TestNormalizeSKU_MismaIdentidad verifica que SKUs que solo difieren en
// mayúsculas o espacios normalizan al mismo valor (la clave de unicidad).
func TestNormalizeSKU_MismaIdentidad(t *testing.T) {
	variantes := []string{"abc-123", "ABC-123", "  abc-123  ", "\tAbC-123\n"}

	base, err := catalog.NormalizeSKU(variantes[0])
	require.NoError(t, err)

	for _, v := range variantes[1:] {
		got, err := catalog.NormalizeSKU(v)
		require.NoError(t, err)
		assert.Equal(t, base, got, "la variante %q debe normalizar igual que %q", v, variantes[0])
	}
	assert.Equal(t, "ABC-123", base)
}

// TestNormalizeSKU_Idempotente: normalizar dos veces produce el mismo valor.
func TestNormalizeSKU_Idempotente(t *testing.T) {
	once, err := catalog.NormalizeSKU(" wid-9 ")
	require.NoError(t, err)
	twice, err := catalog.NormalizeSKU(once)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

// TestNormalizeSKU_VacioEsInvalido: vacío o solo espacios → ErrInvalidInput.
func TestNormalizeSKU_VacioEsInvalido(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := catalog.NormalizeSKU(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "raw=%q", raw)
	}
}
