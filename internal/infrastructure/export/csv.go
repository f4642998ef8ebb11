// Package export genera los ficheros de descarga del inventario y del libro
// de salidas (CSV, XLSX, XML) con los mismos encabezados y nombres de archivo
// que producía la aplicación web original, para que las hojas de cálculo de la
// asociación sigan funcionando sin cambios.
package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// Encabezados fijos de los CSV. El orden importa: hay hojas de cálculo
// externas que importan estas columnas por posición.
var (
	inventoryCSVHeaders = []string{"ID", "Name", "Category", "Subsection", "Quantity", "Min Stock", "Location", "Description"}
	outputsCSVHeaders   = []string{"Date", "Item Name", "Category", "Subsection", "Quantity", "Destination", "ID"}
)

// outputDateLayout formato legible de la fecha en el CSV de salidas.
const outputDateLayout = "2006-01-02 15:04:05"

// InventoryFilename nombre de descarga del export de inventario con la fecha
// del día: inventory_export_2025-01-31.csv.
func InventoryFilename(ext string, now time.Time) string {
	return fmt.Sprintf("inventory_export_%s.%s", now.Format("2006-01-02"), ext)
}

// OutputsFilename nombre de descarga del export del libro de salidas.
func OutputsFilename(ext string, now time.Time) string {
	return fmt.Sprintf("stock_outputs_export_%s.%s", now.Format("2006-01-02"), ext)
}

// InventoryCSV serializa los artículos (ya filtrados y ordenados por el
// caller) al CSV de inventario. Los campos de texto libre van entrecomillados
// para sobrevivir a comas en nombres y descripciones.
func InventoryCSV(items []entity.InventoryItem) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(inventoryCSVHeaders, ","))
	for _, item := range items {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			item.ID,
			quote(item.Name),
			string(item.Category),
			item.Subsection,
			strconv.Itoa(item.Quantity),
			strconv.Itoa(item.MinStockLevel),
			quote(item.Location),
			quote(item.Description),
		}, ","))
	}
	return []byte(b.String())
}

// OutputsCSV serializa el libro de salidas completo, en el orden recibido
// (más reciente primero).
func OutputsCSV(outputs []entity.OutputRecord) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(outputsCSVHeaders, ","))
	for _, record := range outputs {
		b.WriteByte('\n')
		b.WriteString(strings.Join([]string{
			quote(record.Date.Format(outputDateLayout)),
			quote(record.ItemName),
			string(record.Category),
			record.Subsection,
			strconv.Itoa(record.Quantity),
			quote(record.Destination),
			record.ID,
		}, ","))
	}
	return []byte(b.String())
}

// quote entrecomilla un campo de texto libre, doblando las comillas internas.
func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}
