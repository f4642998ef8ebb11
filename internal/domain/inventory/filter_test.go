package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
)

func sampleItems() []entity.InventoryItem {
	return []entity.InventoryItem{
		item("1", "Shure SM58", entity.CategorySonorisation, "Microphones", 4, 2),
		item("2", "XLR Cable 10m", entity.CategorySonorisation, "Cables", 12, 5),
		item("3", "Mushaf Madinah (Large)", entity.CategoryQuranBook, "Mushaf", 45, 10),
		item("4", "Yamaha MG10XU", entity.CategorySonorisation, "Mixers", 1, 1),
		item("5", "Juz Amma Pamphlet", entity.CategoryQuranBook, "Education", 100, 20),
	}
}

func TestFilter_BloqueoDeCategoria(t *testing.T) {
	got := inventory.Filter(sampleItems(), inventory.FilterOptions{Category: entity.CategoryQuranBook})

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID, "el orden relativo se conserva")
	assert.Equal(t, "5", got[1].ID)
}

func TestFilter_BusquedaInsensibleANombreYUbicacion(t *testing.T) {
	items := sampleItems()
	items[0].Location = "Main Hall"

	byName := inventory.Filter(items, inventory.FilterOptions{Search: "shure"})
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	byLocation := inventory.Filter(items, inventory.FilterOptions{Search: "MAIN"})
	require.Len(t, byLocation, 1)
	assert.Equal(t, "1", byLocation[0].ID, "la búsqueda también cubre la ubicación")
}

func TestFilter_BusquedaArabe(t *testing.T) {
	items := sampleItems()
	items[2].Name = "مصحف المدينة"

	got := inventory.Filter(items, inventory.FilterOptions{Search: "مصحف"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilter_SubseccionExactaYAll(t *testing.T) {
	all := inventory.Filter(sampleItems(), inventory.FilterOptions{Subsection: inventory.AllSubsections})
	assert.Len(t, all, 5, "'All' desactiva el filtro de subsección")

	cables := inventory.Filter(sampleItems(), inventory.FilterOptions{Subsection: "Cables"})
	require.Len(t, cables, 1)
	assert.Equal(t, "2", cables[0].ID)
}

func TestFilter_PredicadosCombinados(t *testing.T) {
	got := inventory.Filter(sampleItems(), inventory.FilterOptions{
		Category:   entity.CategorySonorisation,
		Search:     "cable",
		Subsection: "Cables",
	})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestSort_PorCantidadAscYDesc(t *testing.T) {
	items := sampleItems()

	asc := inventory.Sort(items, inventory.SortByQuantity, inventory.SortAsc)
	desc := inventory.Sort(items, inventory.SortByQuantity, inventory.SortDesc)

	require.Len(t, asc, 5)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID,
			"sin empates, descendente es exactamente el inverso de ascendente")
	}
	assert.Equal(t, 1, asc[0].Quantity)
	assert.Equal(t, 100, asc[4].Quantity)
}

func TestSort_EstableEnEmpates(t *testing.T) {
	items := []entity.InventoryItem{
		item("first", "A", entity.CategoryOther, "", 7, 0),
		item("second", "B", entity.CategoryOther, "", 7, 0),
		item("third", "C", entity.CategoryOther, "", 3, 0),
	}

	got := inventory.Sort(items, inventory.SortByQuantity, inventory.SortAsc)

	require.Len(t, got, 3)
	assert.Equal(t, "third", got[0].ID)
	assert.Equal(t, "first", got[1].ID, "los empates conservan el orden de almacenamiento")
	assert.Equal(t, "second", got[2].ID)
}

func TestSort_NoMutaLaEntrada(t *testing.T) {
	items := sampleItems()
	_ = inventory.Sort(items, inventory.SortByName, inventory.SortDesc)
	assert.Equal(t, "1", items[0].ID, "Sort trabaja sobre una copia")
}

func TestSubsections_DistintasOrdenadasConAll(t *testing.T) {
	items := sampleItems()
	items = append(items, item("6", "Sin subsección", entity.CategorySonorisation, "", 1, 0))

	subs := inventory.Subsections(items, entity.CategorySonorisation)

	assert.Equal(t, []string{"All", "Cables", "General", "Microphones", "Mixers"}, subs)
}

func TestSubsections_SinBloqueoDeCategoria(t *testing.T) {
	subs := inventory.Subsections(sampleItems(), "")
	assert.Equal(t, []string{"All", "Cables", "Education", "Microphones", "Mixers", "Mushaf"}, subs)
}
