package entity

import "time"

// Category agrupa produtos na vitrine (ex. "Castanhas", "Mixes Funcionais").
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	SortOrder   int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
