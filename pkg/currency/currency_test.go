package currency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nutallis/nutallis-api/pkg/currency"
)

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		name  string
		cents int64
		want  string
	}{
		{"zero", 0, "R$ 0,00"},
		{"dez reais", 1000, "R$ 10,00"},
		{"com centavos", 8091, "R$ 80,91"},
		{"centavo unico", 5, "R$ 0,05"},
		{"nove centavos", 9, "R$ 0,09"},
		{"milhar", 4589000, "R$ 45.890,00"},
		{"milhao", 123456789, "R$ 1.234.567,89"},
		{"negativo", -250, "-R$ 2,50"},
		{"tres digitos sem ponto", 99999, "R$ 999,99"},
		{"quatro digitos com ponto", 100000, "R$ 1.000,00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, currency.FormatBRL(tc.cents))
		})
	}
}

// A saída deve ter sempre exatamente dois dígitos decimais, qualquer que seja o valor.
func TestFormatBRL_SempreDoisDecimais(t *testing.T) {
	for _, cents := range []int64{0, 1, 10, 99, 100, 101, 999, 1000, 10001, 999999} {
		s := currency.FormatBRL(cents)
		assert.Regexp(t, `^R\$ [0-9.]+,[0-9]{2}$`, s, "valor %d", cents)
	}
}
