package dto

// FinanceBoxDTO total acumulado de uma caixinha financeira.
type FinanceBoxDTO struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	AmountCents int64  `json:"amount_cents"`
	Amount      string `json:"amount"` // formatado em BRL
}

// ReorderSignalDTO sinal de reposição de um produto.
type ReorderSignalDTO struct {
	ProductID             string `json:"product_id"`
	Name                  string `json:"name"`
	StockGrams            int64  `json:"stock_grams"`
	TotalSoldGrams        int64  `json:"total_sold_grams"`
	RecommendedPointGrams int64  `json:"recommended_point_grams"`
	EffectivePointGrams   int64  `json:"effective_point_grams"`
	ExplicitPoint         bool   `json:"explicit_point"` // true se veio do cadastro
	LowStock              bool   `json:"low_stock"`
}

// DashboardSummaryDTO visão geral do painel admin: caixinhas + alertas de estoque.
type DashboardSummaryDTO struct {
	Boxes      []FinanceBoxDTO    `json:"boxes"`
	LowStock   []ReorderSignalDTO `json:"low_stock"`
	WindowDays int                `json:"window_days"`
}
