// Package inventory contiene el caso de uso transaccional de salida de stock.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
)

// StockOutUseCase registra salidas de inventario de forma transaccional:
// crea el registro histórico en el libro de salidas y decrementa el stock del
// artículo de origen en una sola sección crítica.
type StockOutUseCase struct {
	txRunner TxRunner
	now      func() time.Time
}

// NewStockOutUseCase construye el caso de uso.
func NewStockOutUseCase(txRunner TxRunner) *StockOutUseCase {
	return &StockOutUseCase{txRunner: txRunner, now: time.Now}
}

// StockOut retira quantity unidades del artículo itemID hacia destination.
//
// Reglas:
//   - artículo inexistente → domain.ErrNotFound, sin registro ni mutación
//   - quantity < 1 o destination vacío → domain.ErrInvalidInput
//   - quantity > stock disponible → domain.ErrInsufficientStock
//
// El límite superior se valida aquí como invariante duro: el modelo de datos
// nunca admite cantidades negativas aunque el formulario del cliente falle.
// Devuelve el registro creado.
func (uc *StockOutUseCase) StockOut(ctx context.Context, itemID string, quantity int, destination string) (*entity.OutputRecord, error) {
	if itemID == "" || destination == "" || quantity < 1 {
		return nil, domain.ErrInvalidInput
	}

	var record *entity.OutputRecord
	err := uc.txRunner.Run(ctx, func(items repository.ItemRepository, outputs repository.OutputRepository) error {
		item, err := items.GetByID(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if quantity > item.Quantity {
			return domain.ErrInsufficientStock
		}

		now := uc.now()
		record = &entity.OutputRecord{
			ID:          uuid.New().String(),
			ItemID:      item.ID,
			ItemName:    item.Name,
			Category:    item.Category,
			Subsection:  item.SubsectionOrDefault(),
			Quantity:    quantity,
			Destination: destination,
			Date:        now,
		}
		if err := outputs.Append(record); err != nil {
			return err
		}

		item.Quantity -= quantity
		item.LastUpdated = now
		return items.Update(item)
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}
