package dto

import "github.com/ayoubkh/noorinv-api/internal/domain/entity"

// ItemRequest alta o edición de un artículo. El ID y el timestamp los asigna
// el servidor; en la edición el ID viene en la ruta.
type ItemRequest struct {
	Name          string `json:"name"`
	Category      string `json:"category"` // "Sonorisation" | "Quran Book" | "Other"
	Subsection    string `json:"subsection"`
	Quantity      int    `json:"quantity"`
	Location      string `json:"location"`
	Description   string `json:"description"`
	MinStockLevel int    `json:"minStockLevel"`
}

// ListItemsQuery parámetros de la vista filtrada/ordenada de la tabla.
type ListItemsQuery struct {
	Category   string `query:"category"`
	Search     string `query:"search"`
	Subsection string `query:"subsection"`
	SortKey    string `query:"sort_key"` // name | quantity | location
	SortDir    string `query:"sort_dir"` // asc | desc
}

// ListItemsResponse listado visible más metadatos.
type ListItemsResponse struct {
	Total int                    `json:"total"`
	Items []entity.InventoryItem `json:"items"`
}

// SubsectionsResponse valores de subsección presentes en el alcance,
// con la opción sintética "All" al frente.
type SubsectionsResponse struct {
	Subsections []string `json:"subsections"`
}

// StockOutRequest registra una salida de stock de un artículo.
type StockOutRequest struct {
	Quantity    int    `json:"quantity"`
	Destination string `json:"destination"`
}
