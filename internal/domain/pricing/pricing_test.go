package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutallis/nutallis-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Vetores exatos do motor de preço. Se alguém alterar a política de
// arredondamento, a proporção por grama ou a resolução de faixa, estes testes
// quebram antes de qualquer cliente ver um centavo errado.
// ──────────────────────────────────────────────────────────────────────────────

func TestRateFor_LimitesDasFaixas(t *testing.T) {
	table := pricing.DefaultTable()

	cases := []struct {
		name   string
		weight int64
		want   string
	}{
		{"abaixo da menor faixa", 99, "0"},
		{"exatamente na menor faixa", 100, "0"},
		{"entre 100 e 250", 249, "0"},
		{"preset 250g", 250, "0"},
		{"um grama antes de 500", 499, "0"},
		{"preset 500g", 500, "0.05"},
		{"um grama antes de 1kg", 999, "0.05"},
		{"preset 1kg", 1000, "0.1"},
		{"acima da maior faixa herda a ultima taxa", 5000, "0.1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.want)
			require.NoError(t, err)
			got := table.RateFor(tc.weight)
			assert.True(t, want.Equal(got), "peso %dg: esperado %s, obtido %s", tc.weight, want, got)
		})
	}
}

func TestRateFor_EntradaInvalidaRecebeTaxaZero(t *testing.T) {
	table := pricing.DefaultTable()
	assert.True(t, table.RateFor(0).IsZero())
	assert.True(t, table.RateFor(-250).IsZero())
}

// Cenário da loja: castanha a R$ 89,90/kg.
func TestPriceCents_VetoresExatos(t *testing.T) {
	table := pricing.DefaultTable()

	cases := []struct {
		name           string
		pricePerKg     int64
		weight         int64
		want           int64
	}{
		// 8990 * 250 / 1000 = 2247.5 -> meio para cima -> 2248, faixa sem desconto
		{"250g sem desconto arredonda meio centavo", 8990, 250, 2248},
		// 8990 * 1000 / 1000 = 8990; 10% de desconto -> 8091
		{"1kg com 10 por cento", 8990, 1000, 8091},
		// 8990 * 500 / 1000 = 4495; 5% -> 4270.25 -> 4270
		{"500g com 5 por cento", 8990, 500, 4270},
		{"100g preco base", 8990, 100, 899},
		{"peso minimo de 1g", 8990, 1, 9},
		{"preco zero", 0, 1000, 0},
		{"peso zero", 8990, 0, 0},
		{"peso negativo", 8990, -100, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, table.PriceCents(tc.pricePerKg, tc.weight))
		})
	}
}

// Chamar duas vezes com a mesma entrada devolve sempre o mesmo inteiro (sem drift).
func TestPriceCents_Deterministico(t *testing.T) {
	table := pricing.DefaultTable()
	for i := 0; i < 100; i++ {
		assert.EqualValues(t, 2248, table.PriceCents(8990, 250))
		assert.EqualValues(t, 8091, table.PriceCents(8990, 1000))
	}
}

// Dentro de uma mesma faixa o preço é não decrescente no peso.
func TestPriceCents_MonotonoDentroDaFaixa(t *testing.T) {
	table := pricing.DefaultTable()
	prev := int64(-1)
	for w := int64(500); w < 1000; w += 7 {
		p := table.PriceCents(8990, w)
		assert.GreaterOrEqual(t, p, prev, "peso %dg", w)
		prev = p
	}
}

// Ao cruzar para uma faixa mais rica o desconto pode superar o acréscimo de
// base: 999g custa mais do que 1000g com a tabela padrão. Os dois subcasos
// ficam documentados com valores literais.
func TestPriceCents_CruzamentoDeFaixa(t *testing.T) {
	table := pricing.DefaultTable()

	// 999g: base 8981.01, 5% -> 8531.9595 -> 8532
	assert.EqualValues(t, 8532, table.PriceCents(8990, 999))
	// 1000g: base 8990, 10% -> 8091 — mais barato que 999g
	assert.EqualValues(t, 8091, table.PriceCents(8990, 1000))

	// Com uma tabela de taxa única a monotonicidade vale globalmente.
	flat := pricing.Table{{MinWeightGrams: 100, Rate: decimal.Zero}}
	assert.EqualValues(t, 8981, flat.PriceCents(8990, 999))
	assert.EqualValues(t, 8990, flat.PriceCents(8990, 1000))
}

func TestValidate(t *testing.T) {
	require.NoError(t, pricing.DefaultTable().Validate())

	fora := pricing.Table{
		{MinWeightGrams: 500, Rate: decimal.Zero},
		{MinWeightGrams: 100, Rate: decimal.Zero},
	}
	assert.Error(t, fora.Validate())

	taxaCheia := pricing.Table{{MinWeightGrams: 100, Rate: decimal.NewFromInt(1)}}
	assert.Error(t, taxaCheia.Validate())

	negativa := pricing.Table{{MinWeightGrams: 100, Rate: decimal.NewFromFloat(-0.1)}}
	assert.Error(t, negativa.Validate())

	pesoZero := pricing.Table{{MinWeightGrams: 0, Rate: decimal.Zero}}
	assert.Error(t, pesoZero.Validate())
}
