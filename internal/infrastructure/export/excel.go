package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// InventoryXLSX genera el libro XLSX del inventario, con las mismas columnas
// que el CSV más una de alerta de stock bajo.
func InventoryXLSX(items []entity.InventoryItem) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"ID", "Name", "Category", "Subsection", "Quantity", "Min Stock", "Location", "Description", "Low Stock"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: encabezado xlsx: %w", err)
	}

	row := 2
	for _, item := range items {
		excelRow := []interface{}{
			item.ID,
			item.Name,
			string(item.Category),
			item.SubsectionOrDefault(),
			item.Quantity,
			item.MinStockLevel,
			item.Location,
			item.Description,
			item.IsLowStock(),
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("export: celda xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("export: fila xlsx: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// OutputsXLSX genera el libro XLSX del histórico de salidas.
func OutputsXLSX(outputs []entity.OutputRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())

	header := []interface{}{"Date", "Item Name", "Category", "Subsection", "Quantity", "Destination", "ID"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("export: encabezado xlsx: %w", err)
	}

	row := 2
	for _, record := range outputs {
		excelRow := []interface{}{
			record.Date.Format(outputDateLayout),
			record.ItemName,
			string(record.Category),
			record.Subsection,
			record.Quantity,
			record.Destination,
			record.ID,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, fmt.Errorf("export: celda xlsx: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("export: fila xlsx: %w", err)
		}
		row++
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("export: escribir xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
