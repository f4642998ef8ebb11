package inventory

import (
	"context"

	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
)

// TxRunner ejecuta una función bajo el bloqueo de escritura del estado de la
// aplicación, pasando repositorios atados a esa sección crítica. Garantiza que
// las dos mutaciones de una salida de stock (alta en el libro + decremento del
// artículo) se observen juntas o ninguna desde cualquier lector.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		outputs repository.OutputRepository,
	) error) error
}
