package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// seedItems datos iniciales del inventario cuando el almacén está vacío
// (primer arranque). Son los mismos artículos de ejemplo con los que la
// asociación arrancó el sistema.
func seedItems() []entity.InventoryItem {
	now := time.Now()
	seed := []entity.InventoryItem{
		{Name: "Shure SM58", Category: entity.CategorySonorisation, Subsection: "Microphones", Quantity: 4, Location: "Main Hall", Description: "Standard vocal mic", MinStockLevel: 2},
		{Name: "XLR Cable 10m", Category: entity.CategorySonorisation, Subsection: "Cables", Quantity: 12, Location: "Storage Room B", Description: "Balanced audio cables", MinStockLevel: 5},
		{Name: "Mushaf Madinah (Large)", Category: entity.CategoryQuranBook, Subsection: "Mushaf", Quantity: 45, Location: "Shelf A1-A3", Description: "Blue cover standard print", MinStockLevel: 10},
		{Name: "Yamaha MG10XU", Category: entity.CategorySonorisation, Subsection: "Mixers", Quantity: 1, Location: "Control Booth", Description: "Mixing console", MinStockLevel: 1},
		{Name: "Juz Amma Pamphlet", Category: entity.CategoryQuranBook, Subsection: "Education", Quantity: 100, Location: "Entrance Rack", Description: "For students", MinStockLevel: 20},
	}
	for i := range seed {
		seed[i].ID = uuid.New().String()
		seed[i].LastUpdated = now
	}
	return seed
}
