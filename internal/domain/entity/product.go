package entity

import "time"

// Product representa um produto do catálogo (castanhas, mixes, sementes).
// Todo preço é em centavos inteiros por quilo; o estoque é controlado em gramas.
// ReorderPointGrams nulo significa ponto de pedido dinâmico, calculado a partir
// do consumo recente (ver analytics.ReorderUseCase).
type Product struct {
	ID                string
	Name              string
	Slug              string
	Description       string
	CategoryID        string
	PricePerKgCents   int64  // preço canônico de venda por kg
	CostPerKgCents    *int64 // custo opcional, usado só em relatórios
	StockGrams        int64
	ReorderPointGrams *int64
	ImageURL          string
	Active            bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
