package repository

import "github.com/ayoubkh/noorinv-api/internal/domain/entity"

// OutputRepository define el puerto del libro de salidas de stock.
// Append-only: no existe operación de edición ni de borrado (sin deshacer).
type OutputRepository interface {
	// List devuelve el libro completo, los más recientes primero.
	List() []entity.OutputRecord
	// Append inserta al frente del libro.
	Append(record *entity.OutputRecord) error
}
