package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// Claves de ordenación de la tabla de inventario.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByQuantity SortKey = "quantity"
	SortByLocation SortKey = "location"
)

// Dirección de ordenación.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// AllSubsections valor del selector de subsección que desactiva ese filtro.
const AllSubsections = "All"

// FilterOptions parámetros de la vista filtrada de la tabla.
type FilterOptions struct {
	Category   entity.ItemCategory // vacío = sin bloqueo de categoría
	Search     string              // subcadena, insensible a mayúsculas, sobre nombre y ubicación
	Subsection string              // vacío o "All" = todas
}

// foldKey normaliza un texto para comparación insensible a mayúsculas.
// NFC unifica las formas compuestas (relevante para los nombres en árabe y
// los diacríticos latinos) y el case folding de Unicode cubre más que ToLower.
func foldKey(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// Filter devuelve los artículos que pasan el predicado de la tabla:
// categoría exacta (si está bloqueada) AND subcadena de búsqueda sobre
// nombre o ubicación AND subsección exacta (si el selector no es "All").
// El orden relativo de la colección se conserva.
func Filter(items []entity.InventoryItem, opts FilterOptions) []entity.InventoryItem {
	term := foldKey(strings.TrimSpace(opts.Search))

	var result []entity.InventoryItem
	for _, it := range items {
		if opts.Category != "" && it.Category != opts.Category {
			continue
		}
		if term != "" &&
			!strings.Contains(foldKey(it.Name), term) &&
			!strings.Contains(foldKey(it.Location), term) {
			continue
		}
		if opts.Subsection != "" && opts.Subsection != AllSubsections && it.Subsection != opts.Subsection {
			continue
		}
		result = append(result, it)
	}
	return result
}

// Sort devuelve una copia ordenada por la clave indicada. Orden natural del
// tipo (lexicográfico para cadenas, numérico para cantidad); los empates
// conservan el orden previo (ordenación estable).
func Sort(items []entity.InventoryItem, key SortKey, dir SortDirection) []entity.InventoryItem {
	sorted := make([]entity.InventoryItem, len(items))
	copy(sorted, items)

	less := func(a, b entity.InventoryItem) bool {
		switch key {
		case SortByQuantity:
			return a.Quantity < b.Quantity
		case SortByLocation:
			return a.Location < b.Location
		default: // SortByName
			return a.Name < b.Name
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if dir == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Subsections deriva los valores de subsección presentes en el alcance
// (bloqueado por categoría o completo), con vacío normalizado a "General",
// ordenados lexicográficamente y con la opción sintética "All" al frente.
func Subsections(items []entity.InventoryItem, category entity.ItemCategory) []string {
	seen := map[string]struct{}{}
	for _, it := range items {
		if category != "" && it.Category != category {
			continue
		}
		seen[it.SubsectionOrDefault()] = struct{}{}
	}
	subs := make([]string, 0, len(seen)+1)
	for s := range seen {
		subs = append(subs, s)
	}
	sort.Strings(subs)
	return append([]string{AllSubsections}, subs...)
}
