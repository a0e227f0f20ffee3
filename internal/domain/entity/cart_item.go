package entity

import "time"

// CartItem é uma linha do carrinho. O par (peso, preço por kg) é congelado no
// momento do "adicionar ao carrinho": mudanças posteriores no catálogo não
// afetam linhas já criadas. A linha é imutável; alterar peso exige remover e
// adicionar de novo. Adições repetidas do mesmo produto criam linhas distintas.
type CartItem struct {
	ID              string
	UserID          string
	ProductID       string
	Name            string
	ImageURL        string
	CategoryName    string
	PricePerKgCents int64 // snapshot do catálogo no momento da adição
	WeightGrams     int64 // peso travado na adição
	CreatedAt       time.Time
}
