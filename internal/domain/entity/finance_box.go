package entity

import "time"

// FinanceBox é uma "caixinha" financeira: um balde fixo onde entradas são
// acumuladas (vendas, impostos, fornecedores...). O conjunto de caixinhas é
// definido em código; o banco guarda apenas os lançamentos.
type FinanceBox struct {
	Key   string
	Label string
}

// FinanceEntry é um lançamento numa caixinha.
type FinanceEntry struct {
	ID          string
	BoxKey      string
	AmountCents int64
	Reference   string // ex. id do pedido que originou o lançamento
	CreatedAt   time.Time
}

// Caixinhas conhecidas, na ordem de exibição do painel.
func FinanceBoxes() []FinanceBox {
	return []FinanceBox{
		{Key: "vendas", Label: "Vendas"},
		{Key: "impostos", Label: "Impostos"},
		{Key: "fornecedores", Label: "Fornecedores"},
		{Key: "marketing", Label: "Marketing"},
		{Key: "lucro", Label: "Lucro"},
	}
}
