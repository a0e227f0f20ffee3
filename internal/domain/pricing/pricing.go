// Package pricing implementa o motor de preço dinâmico por peso com desconto
// progressivo por faixa (serviço de dominio, funções puras).
//
// O preço de catálogo é sempre em centavos inteiros por quilo. O preço final de
// uma seleção de peso é proporcional ao peso em gramas, com o desconto da faixa
// aplicado e um único arredondamento no passo final:
//
//	final = round(precoKgCentavos * pesoGramas / 1000 * (1 - taxa))
//
// Arredondamento: meio para cima (half away from zero, via decimal.Round).
// Como preços nunca são negativos, equivale a half-up. Determinístico: a mesma
// entrada produz sempre o mesmo centavo.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Tier é uma faixa de desconto: a partir de MinWeightGrams (inclusive) aplica-se Rate.
type Tier struct {
	MinWeightGrams int64
	Rate           decimal.Decimal // fração em [0,1), ex. 0.10 = 10%
}

// Table é a tabela ordenada de faixas de desconto, crescente por peso mínimo.
type Table []Tier

var gramsPerKg = decimal.NewFromInt(1000)

// DefaultTable devolve as faixas usadas na loja: os presets do seletor de peso.
// Abaixo de 500g não há desconto; 500g dá 5% e 1kg ou mais dá 10%.
func DefaultTable() Table {
	return Table{
		{MinWeightGrams: 100, Rate: decimal.Zero},
		{MinWeightGrams: 250, Rate: decimal.Zero},
		{MinWeightGrams: 500, Rate: decimal.NewFromFloat(0.05)},
		{MinWeightGrams: 1000, Rate: decimal.NewFromFloat(0.10)},
	}
}

// Validate verifica que a tabela é estritamente crescente em peso e que toda
// taxa está em [0,1).
func (t Table) Validate() error {
	one := decimal.NewFromInt(1)
	var prev int64
	for i, tier := range t {
		if tier.MinWeightGrams <= 0 {
			return fmt.Errorf("pricing: faixa %d com peso mínimo não positivo (%d)", i, tier.MinWeightGrams)
		}
		if i > 0 && tier.MinWeightGrams <= prev {
			return fmt.Errorf("pricing: faixas fora de ordem em %dg", tier.MinWeightGrams)
		}
		if tier.Rate.IsNegative() || tier.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("pricing: taxa fora de [0,1) na faixa de %dg", tier.MinWeightGrams)
		}
		prev = tier.MinWeightGrams
	}
	return nil
}

// RateFor resolve a taxa de desconto para o peso pedido: a faixa de maior peso
// mínimo que não excede o peso. Pesos abaixo da menor faixa (ou não positivos)
// recebem taxa zero; pesos acima da maior faixa herdam a última taxa.
func (t Table) RateFor(weightGrams int64) decimal.Decimal {
	rate := decimal.Zero
	if weightGrams <= 0 {
		return rate
	}
	for _, tier := range t {
		if weightGrams < tier.MinWeightGrams {
			break
		}
		rate = tier.Rate
	}
	return rate
}

// PriceCents calcula o preço final em centavos para um preço por quilo e um
// peso em gramas, com o desconto da faixa correspondente já aplicado.
//
// Preço por quilo zero resulta em zero; entradas não positivas de peso também.
// O resultado nunca é negativo.
func (t Table) PriceCents(pricePerKgCents, weightGrams int64) int64 {
	if pricePerKgCents <= 0 || weightGrams <= 0 {
		return 0
	}
	base := decimal.NewFromInt(pricePerKgCents).
		Mul(decimal.NewFromInt(weightGrams)).
		Div(gramsPerKg)
	factor := decimal.NewFromInt(1).Sub(t.RateFor(weightGrams))
	return base.Mul(factor).Round(0).IntPart()
}
