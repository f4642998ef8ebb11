// Package analytics contiene el caso de uso del dashboard: agregación del
// stock actual y del histórico de salidas en estadísticas por categoría y
// subsección.
package analytics

import (
	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del dashboard.
//
// Todo se deriva con las funciones puras de domain/inventory sobre las dos
// colecciones en memoria; no hay estado propio y es seguro recalcular en cada
// petición.
type DashboardUseCase struct {
	items   repository.ItemRepository
	outputs repository.OutputRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(items repository.ItemRepository, outputs repository.OutputRepository) *DashboardUseCase {
	return &DashboardUseCase{items: items, outputs: outputs}
}

// categories recorre el enum completo; el switch exhaustivo de ArabicLabel
// garantiza una etiqueta por cada valor.
var categories = []entity.ItemCategory{
	entity.CategorySonorisation,
	entity.CategoryQuranBook,
	entity.CategoryOther,
}

// GetSummary construye el DashboardSummaryDTO: alerta de stock bajo, total de
// activos por categoría ("jamás almacenado") y distribución por subsección de
// las dos pestañas principales.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	items := uc.items.List()
	outputs := uc.outputs.List()

	low := inventory.LowStock(items)

	totals := make([]dto.CategoryTotalDTO, 0, len(categories))
	for _, cat := range categories {
		totals = append(totals, dto.CategoryTotalDTO{
			Category:    cat,
			ArabicLabel: cat.ArabicLabel(),
			TotalAssets: inventory.TotalAssets(items, outputs, cat),
		})
	}

	return &dto.DashboardSummaryDTO{
		CurrentStock:             inventory.CurrentStock(items),
		LowStock:                 low,
		LowStockCount:            len(low),
		Categories:               totals,
		SonorisationDistribution: inventory.SubsectionDistribution(items, outputs, entity.CategorySonorisation),
		QuranDistribution:        inventory.SubsectionDistribution(items, outputs, entity.CategoryQuranBook),
	}
}
