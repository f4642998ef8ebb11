package entity

import "time"

// ItemCategory clasificación principal de un artículo del inventario.
type ItemCategory string

// Valores del enum. Los literales coinciden con los datos históricos exportados
// por la aplicación web original, por eso "Quran Book" lleva espacio.
const (
	CategorySonorisation ItemCategory = "Sonorisation"
	CategoryQuranBook    ItemCategory = "Quran Book"
	CategoryOther        ItemCategory = "Other"
)

// Valid indica si el valor pertenece al enum.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategorySonorisation, CategoryQuranBook, CategoryOther:
		return true
	}
	return false
}

// ArabicLabel devuelve la etiqueta de presentación en árabe.
// Switch exhaustivo sobre el enum; el default cubre valores deserializados corruptos.
func (c ItemCategory) ArabicLabel() string {
	switch c {
	case CategorySonorisation:
		return "صوتيات"
	case CategoryQuranBook:
		return "مصاحف"
	case CategoryOther:
		return "أخرى"
	default:
		return string(c)
	}
}

// DefaultSubsection valor usado cuando un artículo no declara subsección.
const DefaultSubsection = "General"

// InventoryItem representa un artículo del inventario de la asociación
// (equipo de sonido, mushaf, material educativo...).
// ID es inmutable y único dentro de la colección; LastUpdated se refresca en
// cada alta, edición o salida de stock.
type InventoryItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Category      ItemCategory `json:"category"`
	Subsection    string       `json:"subsection"` // ej: "Microphones", "Cables", "Mushaf"
	Quantity      int          `json:"quantity"`
	Location      string       `json:"location"`
	Description   string       `json:"description"`
	MinStockLevel int          `json:"minStockLevel"` // umbral de alerta de stock bajo
	LastUpdated   time.Time    `json:"lastUpdated"`
}

// SubsectionOrDefault devuelve la subsección, o DefaultSubsection si está vacía.
func (i InventoryItem) SubsectionOrDefault() string {
	if i.Subsection == "" {
		return DefaultSubsection
	}
	return i.Subsection
}

// IsLowStock indica si el artículo está en o por debajo de su umbral mínimo.
// La igualdad cuenta como stock bajo (quantity == minStockLevel dispara la alerta).
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.MinStockLevel
}
