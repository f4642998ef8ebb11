package inventory_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
)

func item(id, name string, cat entity.ItemCategory, sub string, qty, min int) entity.InventoryItem {
	return entity.InventoryItem{
		ID: id, Name: name, Category: cat, Subsection: sub,
		Quantity: qty, MinStockLevel: min, LastUpdated: time.Now(),
	}
}

func output(itemID string, cat entity.ItemCategory, sub string, qty int) entity.OutputRecord {
	return entity.OutputRecord{
		ID: "out-" + itemID, ItemID: itemID, Category: cat, Subsection: sub,
		Quantity: qty, Destination: "Main Hall", Date: time.Now(),
	}
}

// El límite cuenta como stock bajo: quantity == minStockLevel dispara la alerta.
func TestLowStock_LimiteIncluido(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2),
		item("b", "XLR Cable 10m", entity.CategorySonorisation, "Cables", 1, 1),
		item("c", "Mushaf Madinah", entity.CategoryQuranBook, "Mushaf", 0, 5),
	}

	low := inventory.LowStock(items)

	require.Len(t, low, 2, "solo b (1<=1) y c (0<=5) están en stock bajo")
	assert.Equal(t, "b", low[0].ID, "el orden de almacenamiento se conserva")
	assert.Equal(t, "c", low[1].ID)
}

func TestLowStock_Vacio(t *testing.T) {
	assert.Empty(t, inventory.LowStock(nil))
}

// Total de activos = stock actual + todo lo ya distribuido de la categoría.
func TestTotalAssets_SumaActualMasSalidas(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2),
		item("b", "Mushaf Madinah", entity.CategoryQuranBook, "Mushaf", 45, 10),
	}
	outputs := []entity.OutputRecord{
		output("a", entity.CategorySonorisation, "Microphones", 2),
		output("b", entity.CategoryQuranBook, "Mushaf", 5),
	}

	assert.Equal(t, 6, inventory.TotalAssets(items, outputs, entity.CategorySonorisation))
	assert.Equal(t, 50, inventory.TotalAssets(items, outputs, entity.CategoryQuranBook))
	assert.Equal(t, 0, inventory.TotalAssets(items, outputs, entity.CategoryOther))
}

// Una salida mueve cantidad del stock actual al histórico: el total no decrece.
func TestTotalAssets_InvarianteTrasSalida(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2),
	}
	before := inventory.TotalAssets(items, nil, entity.CategorySonorisation)

	items[0].Quantity -= 3
	outputs := []entity.OutputRecord{output("a", entity.CategorySonorisation, "Microphones", 3)}
	after := inventory.TotalAssets(items, outputs, entity.CategorySonorisation)

	assert.Equal(t, before, after, "el total 'jamás almacenado' no cambia con una salida")
}

func TestSubsectionDistribution_CombinaStockYSalidas(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2),
		item("b", "XLR Cable 10m", entity.CategorySonorisation, "Cables", 12, 5),
		item("c", "Mushaf Madinah", entity.CategoryQuranBook, "Mushaf", 45, 10),
	}
	outputs := []entity.OutputRecord{
		output("a", entity.CategorySonorisation, "Microphones", 6),
		output("x", entity.CategorySonorisation, "", 3), // subsección vacía → General
	}

	dist := inventory.SubsectionDistribution(items, outputs, entity.CategorySonorisation)

	require.Len(t, dist, 3)
	// Ordenado por cantidad descendente: Cables 12, Microphones 4+6=10, General 3
	assert.Equal(t, inventory.SubsectionShare{Subsection: "Cables", Quantity: 12, Percent: 48}, dist[0])
	assert.Equal(t, inventory.SubsectionShare{Subsection: "Microphones", Quantity: 10, Percent: 40}, dist[1])
	assert.Equal(t, inventory.SubsectionShare{Subsection: "General", Quantity: 3, Percent: 12}, dist[2])

	// La suma de la distribución es stock actual + salidas de la categoría
	sum := 0
	for _, s := range dist {
		sum += s.Quantity
	}
	assert.Equal(t, 16+9, sum)
}

// La suma de porcentajes debe dar 100 (± redondeo) cuando el total es positivo.
func TestSubsectionDistribution_PorcentajesSuman100(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "A", entity.CategoryQuranBook, "Mushaf", 1, 0),
		item("b", "B", entity.CategoryQuranBook, "Education", 1, 0),
		item("c", "C", entity.CategoryQuranBook, "Tafsir", 1, 0),
	}

	dist := inventory.SubsectionDistribution(items, nil, entity.CategoryQuranBook)

	sum := 0
	for _, s := range dist {
		sum += s.Percent
	}
	assert.InDelta(t, 100, sum, 1, "33+33+33 = 99, dentro del margen de redondeo")
}

// Con total 0 la tabla debe renderizar sin error de división: todas las filas a 0%.
func TestSubsectionDistribution_TotalCero(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "Agotado", entity.CategoryOther, "Misc", 0, 1),
	}

	dist := inventory.SubsectionDistribution(items, nil, entity.CategoryOther)

	require.Len(t, dist, 1)
	assert.Equal(t, 0, dist[0].Quantity)
	assert.Equal(t, 0, dist[0].Percent, "total 0 → 0%% en cada fila, sin división por cero")
}

func TestSubsectionDistribution_CategoriaSinDatos(t *testing.T) {
	dist := inventory.SubsectionDistribution(nil, nil, entity.CategorySonorisation)
	assert.Empty(t, dist)
}

func TestCurrentStock(t *testing.T) {
	items := []entity.InventoryItem{
		item("a", "A", entity.CategorySonorisation, "", 4, 0),
		item("b", "B", entity.CategoryQuranBook, "", 45, 0),
	}
	assert.Equal(t, 49, inventory.CurrentStock(items))
}

// Escenario de referencia completo: salida de stock y efecto en la alerta.
func TestEscenario_SalidaDisparaAlertaDeStockBajo(t *testing.T) {
	a := item("A", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2)
	b := item("B", "XLR Cable 10m", entity.CategorySonorisation, "Cables", 1, 1)

	low := inventory.LowStock([]entity.InventoryItem{a, b})
	require.Len(t, low, 1, "A: 4>2 excluido; B: 1<=1 incluido")
	assert.Equal(t, "B", low[0].ID)

	// Tras una salida de 2 unidades de A: quantity 2 == minStock 2 → alerta
	a.Quantity -= 2
	low = inventory.LowStock([]entity.InventoryItem{a, b})
	assert.Len(t, low, 2, "A entra en la alerta al quedar en su umbral")
}
