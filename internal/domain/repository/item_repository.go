package repository

import "github.com/ayoubkh/noorinv-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para InventoryItem (DIP).
//
// La colección es ordenada (los más recientes primero). La unicidad del ID la
// garantiza el caller (UUID fresco en el alta); el repositorio no la verifica.
type ItemRepository interface {
	// List devuelve la colección completa en orden de almacenamiento.
	List() []entity.InventoryItem
	// GetByID devuelve (nil, nil) si el artículo no existe.
	GetByID(id string) (*entity.InventoryItem, error)
	// Create inserta al frente de la colección (orden de visualización: más reciente primero).
	Create(item *entity.InventoryItem) error
	// Update reemplaza el artículo con el mismo ID conservando su posición; no-op si no existe.
	Update(item *entity.InventoryItem) error
	// Delete elimina el artículo con ese ID; no-op si no existe. No toca el libro de salidas.
	Delete(id string) error
}
