package dto

import (
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
)

// CategoryTotalDTO total de activos ("jamás almacenado": stock actual + distribuido)
// de una categoría, con su etiqueta de presentación.
type CategoryTotalDTO struct {
	Category    entity.ItemCategory `json:"category"`
	ArabicLabel string              `json:"arabic_label"`
	TotalAssets int                 `json:"total_assets"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	// Suma de cantidades actuales de todo el inventario (cifra de la barra lateral).
	CurrentStock int `json:"current_stock"`

	// Artículos en o por debajo de su umbral mínimo, en orden de almacenamiento.
	LowStock      []entity.InventoryItem `json:"low_stock"`
	LowStockCount int                    `json:"low_stock_count"`

	// Totales por categoría, uno por cada valor del enum.
	Categories []CategoryTotalDTO `json:"categories"`

	// Distribución por subsección (stock actual + salidas) de las dos pestañas.
	SonorisationDistribution []inventory.SubsectionShare `json:"sonorisation_distribution"`
	QuranDistribution        []inventory.SubsectionShare `json:"quran_distribution"`
}
