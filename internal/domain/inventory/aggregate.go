// Package inventory contiene los servicios puros de dominio del inventario:
// agregación para el dashboard y filtrado/ordenación para las tablas.
// Ninguna función muta sus entradas; es seguro recalcular en cada lectura.
package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// LowStock devuelve los artículos en o por debajo de su umbral mínimo,
// en orden de almacenamiento. La igualdad cuenta como stock bajo.
func LowStock(items []entity.InventoryItem) []entity.InventoryItem {
	var low []entity.InventoryItem
	for _, it := range items {
		if it.IsLowStock() {
			low = append(low, it)
		}
	}
	return low
}

// CurrentStock suma las cantidades actuales de toda la colección
// (la cifra "Total Assets" de la barra lateral).
func CurrentStock(items []entity.InventoryItem) int {
	total := 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalAssets devuelve el total "jamás almacenado" de una categoría:
// stock actual más todo lo ya distribuido (libro de salidas). La medida
// nunca decrece: una salida mueve cantidad del primer sumando al segundo.
func TotalAssets(items []entity.InventoryItem, outputs []entity.OutputRecord, cat entity.ItemCategory) int {
	total := 0
	for _, it := range items {
		if it.Category == cat {
			total += it.Quantity
		}
	}
	for _, out := range outputs {
		if out.Category == cat {
			total += out.Quantity
		}
	}
	return total
}

// SubsectionShare cantidad acumulada y porcentaje de una subsección dentro
// de la distribución de su categoría.
type SubsectionShare struct {
	Subsection string `json:"subsection"`
	Quantity   int    `json:"quantity"`
	Percent    int    `json:"percent"` // round(cantidad / total * 100); 0 si el total es 0
}

// SubsectionDistribution construye la distribución por subsección de una
// categoría sobre el total de activos: primero acumula el stock actual bajo la
// subsección de cada artículo y después suma encima las cantidades del libro
// de salidas (instantáneas históricas). Subsección vacía acumula bajo
// entity.DefaultSubsection.
//
// Resultado ordenado por cantidad descendente; empates por nombre ascendente
// para que la salida sea determinista.
func SubsectionDistribution(items []entity.InventoryItem, outputs []entity.OutputRecord, cat entity.ItemCategory) []SubsectionShare {
	acc := map[string]int{}
	for _, it := range items {
		if it.Category == cat {
			acc[it.SubsectionOrDefault()] += it.Quantity
		}
	}
	for _, out := range outputs {
		if out.Category != cat {
			continue
		}
		sub := out.Subsection
		if sub == "" {
			sub = entity.DefaultSubsection
		}
		acc[sub] += out.Quantity
	}

	shares := make([]SubsectionShare, 0, len(acc))
	total := 0
	for sub, qty := range acc {
		shares = append(shares, SubsectionShare{Subsection: sub, Quantity: qty})
		total += qty
	}
	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Quantity != shares[j].Quantity {
			return shares[i].Quantity > shares[j].Quantity
		}
		return shares[i].Subsection < shares[j].Subsection
	})

	// Porcentajes sobre el total; con total 0 todas las filas quedan en 0%
	// (la tabla debe renderizar sin error de división).
	if total > 0 {
		totalDec := decimal.NewFromInt(int64(total))
		for i := range shares {
			shares[i].Percent = int(decimal.NewFromInt(int64(shares[i].Quantity)).
				Div(totalDec).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
		}
	}
	return shares
}
