package export

import (
	"fmt"
	"strconv"
	"time"

	"github.com/beevik/etree"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// InventoryXML genera el export XML del inventario, pensado para los sistemas
// de archivo documental que solo aceptan XML.
func InventoryXML(items []entity.InventoryItem, now time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Inventory")
	root.CreateAttr("exportedAt", now.Format(time.RFC3339))
	root.CreateAttr("count", strconv.Itoa(len(items)))

	for _, item := range items {
		el := root.CreateElement("Item")
		el.CreateAttr("id", item.ID)
		el.CreateElement("Name").SetText(item.Name)
		el.CreateElement("Category").SetText(string(item.Category))
		el.CreateElement("Subsection").SetText(item.SubsectionOrDefault())
		el.CreateElement("Quantity").SetText(strconv.Itoa(item.Quantity))
		el.CreateElement("MinStock").SetText(strconv.Itoa(item.MinStockLevel))
		el.CreateElement("Location").SetText(item.Location)
		el.CreateElement("Description").SetText(item.Description)
		el.CreateElement("LastUpdated").SetText(item.LastUpdated.Format(time.RFC3339))
	}

	doc.Indent(2)
	blob, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xml: %w", err)
	}
	return blob, nil
}

// OutputsXML genera el export XML del libro de salidas.
func OutputsXML(outputs []entity.OutputRecord, now time.Time) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("StockOutputs")
	root.CreateAttr("exportedAt", now.Format(time.RFC3339))
	root.CreateAttr("count", strconv.Itoa(len(outputs)))

	for _, record := range outputs {
		el := root.CreateElement("Output")
		el.CreateAttr("id", record.ID)
		el.CreateElement("Date").SetText(record.Date.Format(time.RFC3339))
		el.CreateElement("ItemID").SetText(record.ItemID)
		el.CreateElement("ItemName").SetText(record.ItemName)
		el.CreateElement("Category").SetText(string(record.Category))
		el.CreateElement("Subsection").SetText(record.Subsection)
		el.CreateElement("Quantity").SetText(strconv.Itoa(record.Quantity))
		el.CreateElement("Destination").SetText(record.Destination)
	}

	doc.Indent(2)
	blob, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("export: escribir xml: %w", err)
	}
	return blob, nil
}
