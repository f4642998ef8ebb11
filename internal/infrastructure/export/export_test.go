package export_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/export"
)

var exportDate = time.Date(2025, 1, 31, 14, 30, 0, 0, time.UTC)

func sampleItem() entity.InventoryItem {
	return entity.InventoryItem{
		ID:            "it-1",
		Name:          "XLR Cable, 10m",
		Category:      entity.CategorySonorisation,
		Subsection:    "Cables",
		Quantity:      12,
		Location:      "Storage Room B",
		Description:   "Balanced audio cables",
		MinStockLevel: 5,
		LastUpdated:   exportDate,
	}
}

func sampleOutput() entity.OutputRecord {
	return entity.OutputRecord{
		ID:          "out-1",
		ItemID:      "it-1",
		ItemName:    "XLR Cable, 10m",
		Category:    entity.CategorySonorisation,
		Subsection:  "Cables",
		Quantity:    3,
		Destination: "Friday event",
		Date:        exportDate,
	}
}

func TestInventoryCSV_EncabezadosYFormato(t *testing.T) {
	blob := export.InventoryCSV([]entity.InventoryItem{sampleItem()})

	lines := strings.Split(string(blob), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Category,Subsection,Quantity,Min Stock,Location,Description", lines[0])
	// Los campos de texto libre van entrecomillados: la coma del nombre no
	// debe partir la columna.
	assert.Equal(t, `it-1,"XLR Cable, 10m",Sonorisation,Cables,12,5,"Storage Room B","Balanced audio cables"`, lines[1])
}

func TestInventoryCSV_SinArticulosSoloEncabezados(t *testing.T) {
	blob := export.InventoryCSV(nil)
	assert.Equal(t, "ID,Name,Category,Subsection,Quantity,Min Stock,Location,Description", string(blob))
}

func TestInventoryCSV_ComillasInternasDobladas(t *testing.T) {
	item := sampleItem()
	item.Description = `Print "Madinah" edition`

	blob := export.InventoryCSV([]entity.InventoryItem{item})
	assert.Contains(t, string(blob), `"Print ""Madinah"" edition"`)
}

func TestOutputsCSV_EncabezadosYFormato(t *testing.T) {
	blob := export.OutputsCSV([]entity.OutputRecord{sampleOutput()})

	lines := strings.Split(string(blob), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Date,Item Name,Category,Subsection,Quantity,Destination,ID", lines[0])
	assert.Equal(t, `"2025-01-31 14:30:00","XLR Cable, 10m",Sonorisation,Cables,3,"Friday event",out-1`, lines[1])
}

func TestFilenames_LlevanLaFechaDelDia(t *testing.T) {
	assert.Equal(t, "inventory_export_2025-01-31.csv", export.InventoryFilename("csv", exportDate))
	assert.Equal(t, "inventory_export_2025-01-31.xlsx", export.InventoryFilename("xlsx", exportDate))
	assert.Equal(t, "stock_outputs_export_2025-01-31.xml", export.OutputsFilename("xml", exportDate))
}

func TestInventoryXML_EstructuraBasica(t *testing.T) {
	blob, err := export.InventoryXML([]entity.InventoryItem{sampleItem()}, exportDate)
	require.NoError(t, err)

	xml := string(blob)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, `<Inventory exportedAt="2025-01-31T14:30:00Z" count="1">`)
	assert.Contains(t, xml, `<Item id="it-1">`)
	assert.Contains(t, xml, "<Name>XLR Cable, 10m</Name>")
	assert.Contains(t, xml, "<Quantity>12</Quantity>")
}

func TestOutputsXML_EstructuraBasica(t *testing.T) {
	blob, err := export.OutputsXML([]entity.OutputRecord{sampleOutput()}, exportDate)
	require.NoError(t, err)

	xml := string(blob)
	assert.Contains(t, xml, `<StockOutputs exportedAt="2025-01-31T14:30:00Z" count="1">`)
	assert.Contains(t, xml, `<Output id="out-1">`)
	assert.Contains(t, xml, "<Destination>Friday event</Destination>")
}

func TestInventoryXLSX_SeGeneraSinError(t *testing.T) {
	blob, err := export.InventoryXLSX([]entity.InventoryItem{sampleItem()})
	require.NoError(t, err)
	assert.NotEmpty(t, blob)
	// Un XLSX es un zip: firma PK.
	assert.Equal(t, []byte{'P', 'K'}, blob[:2])
}

func TestOutputsXLSX_SeGeneraSinError(t *testing.T) {
	blob, err := export.OutputsXLSX([]entity.OutputRecord{sampleOutput()})
	require.NoError(t, err)
	assert.NotEmpty(t, blob)
	assert.Equal(t, []byte{'P', 'K'}, blob[:2])
}
